package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ElectionStatus string

const (
	ElectionStatusUpcoming ElectionStatus = "upcoming"
	ElectionStatusActive   ElectionStatus = "active"
	ElectionStatusEnded    ElectionStatus = "ended"
)

func (s ElectionStatus) String() string {
	return string(s)
}

func (s ElectionStatus) CapitalizedString() string {
	return cases.Title(language.English).String(s.String())
}

type Election struct {
	ID          uuid.UUID   `json:"id" pg:",pk,type:uuid,default:gen_random_uuid()"`
	Title       string      `json:"title" pg:",notnull"`
	Description string      `json:"description"`
	StartTime   time.Time   `json:"start_time" pg:",notnull"`
	EndTime     time.Time   `json:"end_time" pg:",notnull"`
	IsActive    bool        `json:"is_active" pg:",notnull,use_zero,default:true"`
	CreatedAt   time.Time   `json:"created_at" pg:"default:now()"`
	UpdatedAt   time.Time   `json:"updated_at" pg:"default:now()"`
	Candidates  []Candidate `json:"candidates,omitempty" pg:"rel:has-many"`
}

// StatusAt derives the lifecycle phase from the voting window. Both window
// boundaries count as active.
func (e *Election) StatusAt(now time.Time) ElectionStatus {
	switch {
	case now.Before(e.StartTime):
		return ElectionStatusUpcoming
	case now.After(e.EndTime):
		return ElectionStatusEnded
	default:
		return ElectionStatusActive
	}
}

// IsOpenAt reports whether votes are accepted: the window must be running
// and the administrator switch still on.
func (e *Election) IsOpenAt(now time.Time) bool {
	return e.IsActive && e.StatusAt(now) == ElectionStatusActive
}
