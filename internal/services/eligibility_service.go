package services

import (
	"fmt"
	"university_voting_system/internal/db/models"
	"university_voting_system/internal/db/repositories"
)

type eligibilityService struct {
	voteRepository repositories.VoteRepository
	now            Clock
}

// EligibilityService runs the advisory pre-checks for casting a vote. The
// checks are ordered and fail fast, reading live repository state only; the
// results cache is never consulted here. Two concurrent requests may both
// pass every check, the unique constraint on votes settles that race.
type EligibilityService interface {
	Check(voter *models.Voter, election *models.Election) error
}

func NewEligibilityService(voteRepository repositories.VoteRepository, now Clock) EligibilityService {
	return &eligibilityService{
		voteRepository: voteRepository,
		now:            now,
	}
}

func (s *eligibilityService) Check(voter *models.Voter, election *models.Election) error {
	if !election.IsOpenAt(s.now()) {
		return ErrElectionNotActive
	}

	if !voter.IsVerified {
		return ErrVoterNotVerified
	}

	exists, err := s.voteRepository.Exists(voter.ID, election.ID)
	if err != nil {
		return fmt.Errorf("failed to check for an existing vote: %w", err)
	}
	if exists {
		return ErrDuplicateVote
	}

	if !voter.VotingEnabled {
		return ErrVotingDisabled
	}

	return nil
}
