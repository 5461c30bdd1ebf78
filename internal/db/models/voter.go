package models

import (
	"time"

	"github.com/google/uuid"
)

type Voter struct {
	ID            uuid.UUID `json:"id" pg:",pk,type:uuid,default:gen_random_uuid()"`
	FullName      string    `json:"full_name" pg:",notnull"`
	Email         string    `json:"email" pg:",notnull,unique"`
	Phone         string    `json:"phone"`
	StudentID     string    `json:"student_id" pg:",notnull,unique"`
	PasswordHash  string    `json:"-" pg:",notnull"`
	WalletAddress string    `json:"wallet_address"`
	IsVerified    bool      `json:"is_verified" pg:",notnull,use_zero,default:false"`
	VotingEnabled bool      `json:"voting_enabled" pg:",notnull,use_zero,default:true"`
	IsAdmin       bool      `json:"is_admin" pg:",notnull,use_zero,default:false"`
	CreatedAt     time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt     time.Time `json:"updated_at" pg:"default:now()"`
}

func (v *Voter) HasWallet() bool {
	return v.WalletAddress != ""
}
