package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode is the emailed registration code. One live code per
// voter; re-issuing replaces it.
type VerificationCode struct {
	ID        uuid.UUID `json:"id" pg:",pk,type:uuid,default:gen_random_uuid()"`
	VoterID   uuid.UUID `json:"voter_id" pg:"type:uuid,notnull,unique"`
	Code      string    `json:"-" pg:",notnull"`
	ExpiresAt time.Time `json:"expires_at" pg:",notnull"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
}

func (c *VerificationCode) IsExpiredAt(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
