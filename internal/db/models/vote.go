package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote rows are append-only. The composite unique index on
// (voter_id, election_id) is what actually enforces one vote per voter;
// every pre-check elsewhere is advisory.
type Vote struct {
	ID            uuid.UUID `json:"id" pg:",pk,type:uuid,default:gen_random_uuid()"`
	VoterID       uuid.UUID `json:"voter_id" pg:"type:uuid,notnull,unique:voter_election"`
	ElectionID    uuid.UUID `json:"election_id" pg:"type:uuid,notnull,unique:voter_election"`
	CandidateID   uuid.UUID `json:"candidate_id" pg:"type:uuid,notnull"`
	WalletAddress string    `json:"wallet_address" pg:",notnull"`
	VoteHash      string    `json:"vote_hash" pg:",notnull"`
	CastAt        time.Time `json:"cast_at" pg:"default:now()"`
}
