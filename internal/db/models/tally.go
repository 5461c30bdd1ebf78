package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type TallyLabel string

const (
	TallyLabelWinner           TallyLabel = "winner"
	TallyLabelCurrentlyLeading TallyLabel = "currently leading"
	TallyLabelNoVotesYet       TallyLabel = "no votes yet"
)

func (l TallyLabel) String() string {
	return string(l)
}

func (l TallyLabel) CapitalizedString() string {
	return cases.Title(language.English).String(l.String())
}

// CandidateResult is one ranked tally row. VoteCount is scanned straight
// from the aggregate query; Percentage and Rank are filled in afterwards.
type CandidateResult struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	FullName    string    `json:"full_name"`
	Department  string    `json:"department"`
	Course      string    `json:"course"`
	VoteCount   int       `json:"vote_count"`
	Percentage  float64   `json:"percentage"`
	Rank        int       `json:"rank"`
}

type ElectionStats struct {
	ElectionID        uuid.UUID      `json:"election_id"`
	Status            ElectionStatus `json:"status"`
	TotalVotes        int            `json:"total_votes"`
	TotalCandidates   int            `json:"total_candidates"`
	LeadingCandidate  string         `json:"leading_candidate"`
	LeadingVotes      int            `json:"leading_votes"`
	LeadingPercentage float64        `json:"leading_percentage"`
	TurnoutPercentage float64        `json:"turnout_percentage"`
	Label             string         `json:"label"`
}

// TimelineBucket is one hour of voting activity. Cumulative is the running
// total up to and including the bucket.
type TimelineBucket struct {
	Hour       time.Time `json:"hour"`
	VoteCount  int       `json:"vote_count"`
	Cumulative int       `json:"cumulative"`
}
