package db

import (
	"context"
	"time"
	"university_voting_system/configs"

	"github.com/go-pg/migrations/v8"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

type queryLogger struct {
	logger *zap.SugaredLogger
}

func (d queryLogger) BeforeQuery(c context.Context, q *pg.QueryEvent) (context.Context, error) {
	query, err := q.FormattedQuery()
	if err != nil {
		return c, nil
	}

	d.logger.Debug(string(query))
	return c, nil
}

func (d queryLogger) AfterQuery(c context.Context, q *pg.QueryEvent) error {
	return nil
}

// StartDB connects, verifies the connection and brings the voting schema up
// to date. Both binaries call this at startup; neither is useful without the
// database, so an unreachable Postgres fails fast here.
func StartDB(config configs.DB, logger *zap.SugaredLogger) (*pg.DB, error) {
	options, err := pg.ParseURL(config.URL)
	if err != nil {
		logger.Errorw("failed to parse db url", "error", err)
		return nil, err
	}

	db := pg.Connect(options)
	db.AddQueryHook(queryLogger{logger})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = db.Ping(ctx); err != nil {
		logger.Errorw("failed to reach database", "error", err)
		return nil, err
	}

	if err = migrate(db, logger); err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(db *pg.DB, logger *zap.SugaredLogger) error {
	collection := migrations.NewCollection()

	if err := collection.DiscoverSQLMigrations("migrations"); err != nil {
		logger.Errorw("failed to discover migrations", "error", err)
		return err
	}

	if _, _, err := collection.Run(db, "init"); err != nil {
		logger.Errorw("failed to init migrations", "error", err)
		return err
	}

	oldVersion, newVersion, err := collection.Run(db, "up")
	if err != nil {
		logger.Errorw("failed to run migrations", "error", err)
		return err
	}

	if newVersion != oldVersion {
		logger.Infow("schema migrated", "from", oldVersion, "to", newVersion)
	} else {
		logger.Infow("schema up to date", "version", oldVersion)
	}

	return nil
}
