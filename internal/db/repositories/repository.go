package repositories

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

type repository struct {
	db *pg.DB
}

// ErrUniqueViolation is returned by Create methods when the insert lost to
// an existing row. The schema's unique constraints are the source of truth
// for duplicates; callers translate this into their own conflict errors.
var ErrUniqueViolation = errors.New("unique constraint violation")

// uniqueViolation reports the Postgres unique_violation error class (23505).
func uniqueViolation(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == "23505"
}

// IsNoRows reports a lookup that matched nothing, so services do not have
// to know the driver's sentinel.
func IsNoRows(err error) bool {
	return errors.Is(err, pg.ErrNoRows)
}
