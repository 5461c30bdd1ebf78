package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const voteChannel = "vote_inserted"

// votePayload matches the json built by the votes insert trigger.
type votePayload struct {
	VoteID     uuid.UUID `json:"vote_id"`
	ElectionID uuid.UUID `json:"election_id"`
	CastAt     time.Time `json:"cast_at"`
}

// VoteListener bridges Postgres vote_inserted notifications into the hub.
// The trigger fires for every writer, so votes stored by other processes
// reach subscribers too.
type VoteListener struct {
	db     *pg.DB
	hub    *Hub
	logger *zap.SugaredLogger
}

func NewVoteListener(db *pg.DB, hub *Hub, logger *zap.SugaredLogger) *VoteListener {
	return &VoteListener{
		db:     db,
		hub:    hub,
		logger: logger,
	}
}

func (l *VoteListener) Run(ctx context.Context) {
	listener := l.db.Listen(ctx, voteChannel)
	defer listener.Close()

	l.logger.Infow("listening for vote notifications", "channel", voteChannel)

	channel := listener.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-channel:
			if !ok {
				return
			}
			l.handle(notification)
		}
	}
}

func (l *VoteListener) handle(notification pg.Notification) {
	var payload votePayload
	if err := json.Unmarshal([]byte(notification.Payload), &payload); err != nil {
		l.logger.Warnw("failed to decode vote notification",
			"payload", notification.Payload,
			"error", err)
		return
	}

	l.hub.Broadcast(Event{
		Type:       EventTypeVoteCast,
		ElectionID: payload.ElectionID,
		VoteID:     &payload.VoteID,
		CastAt:     &payload.CastAt,
	})
}
