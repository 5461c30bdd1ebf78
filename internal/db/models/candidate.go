package models

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID          uuid.UUID `json:"id" pg:",pk,type:uuid,default:gen_random_uuid()"`
	ElectionID  uuid.UUID `json:"election_id" pg:"type:uuid,notnull"`
	FullName    string    `json:"full_name" pg:",notnull"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	Course      string    `json:"course"`
	YearOfStudy int       `json:"year_of_study"`
	Manifesto   string    `json:"manifesto"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt   time.Time `json:"updated_at" pg:"default:now()"`
}
