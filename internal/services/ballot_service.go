package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"university_voting_system/internal/db/models"
	"university_voting_system/internal/db/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ballotService struct {
	voterRepository     repositories.VoterRepository
	electionRepository  repositories.ElectionRepository
	candidateRepository repositories.CandidateRepository
	voteRepository      repositories.VoteRepository
	eligibilityService  EligibilityService
	mailerService       MailerService
	logger              *zap.SugaredLogger
	now                 Clock
}

// BallotService is the only place vote rows are written.
type BallotService interface {
	CastVote(voterID, electionID, candidateID uuid.UUID, walletAddress string) (*models.Vote, error)
	GetVoteStatus(voterID, electionID uuid.UUID) (*models.Vote, bool, error)
}

func NewBallotService(
	voterRepository repositories.VoterRepository,
	electionRepository repositories.ElectionRepository,
	candidateRepository repositories.CandidateRepository,
	voteRepository repositories.VoteRepository,
	eligibilityService EligibilityService,
	mailerService MailerService,
	logger *zap.SugaredLogger,
	now Clock,
) BallotService {
	return &ballotService{
		voterRepository:     voterRepository,
		electionRepository:  electionRepository,
		candidateRepository: candidateRepository,
		voteRepository:      voteRepository,
		eligibilityService:  eligibilityService,
		mailerService:       mailerService,
		logger:              logger,
		now:                 now,
	}
}

func (s *ballotService) CastVote(voterID, electionID, candidateID uuid.UUID, walletAddress string) (*models.Vote, error) {
	voter, err := s.voterRepository.GetOneByID(voterID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}

	election, err := s.electionRepository.GetOneByID(electionID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, ErrElectionNotFound
		}
		return nil, fmt.Errorf("failed to get election: %w", err)
	}

	candidate, err := s.candidateRepository.GetOneByID(candidateID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if candidate.ElectionID != election.ID {
		return nil, ErrCandidateMismatch
	}

	// The one allowed wallet binding happens here. A voter that already has
	// an address keeps it; the submitted value is ignored and the vote
	// records the bound address.
	if !voter.HasWallet() {
		if walletAddress == "" {
			return nil, ErrWalletRequired
		}

		voter.WalletAddress = walletAddress
		voter, err = s.voterRepository.Update(voter)
		if err != nil {
			return nil, fmt.Errorf("failed to bind wallet: %w", err)
		}
	}

	if err = s.eligibilityService.Check(voter, election); err != nil {
		return nil, err
	}

	castAt := s.now().UTC()

	vote, err := s.voteRepository.Create(&models.Vote{
		VoterID:       voter.ID,
		ElectionID:    election.ID,
		CandidateID:   candidate.ID,
		WalletAddress: voter.WalletAddress,
		VoteHash:      voteHash(voter.ID, candidate.ID, election.ID, voter.WalletAddress, castAt),
		CastAt:        castAt,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrDuplicateVote
		}
		return nil, fmt.Errorf("failed to store vote: %w", err)
	}

	s.logger.Infow("vote cast",
		"vote_id", vote.ID,
		"election_id", election.ID,
		"candidate_id", candidate.ID)

	go s.sendConfirmation(voter, candidate, election, vote)

	return vote, nil
}

func (s *ballotService) GetVoteStatus(voterID, electionID uuid.UUID) (*models.Vote, bool, error) {
	vote, err := s.voteRepository.GetOneByVoterAndElection(voterID, electionID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get vote: %w", err)
	}

	return vote, true, nil
}

// sendConfirmation emails the voter about the stored vote. Best effort: a
// relay failure is logged and changes nothing about the vote.
func (s *ballotService) sendConfirmation(voter *models.Voter, candidate *models.Candidate, election *models.Election, vote *models.Vote) {
	if err := s.mailerService.SendVoteConfirmation(voter, candidate, election, vote); err != nil {
		s.logger.Warnw("failed to send vote confirmation",
			"vote_id", vote.ID,
			"voter_id", voter.ID,
			"error", err)
	}
}

// voteHash builds the display-only reference string stored with the vote.
// It is recomputed nowhere and verified nowhere.
func voteHash(voterID, candidateID, electionID uuid.UUID, walletAddress string, castAt time.Time) string {
	payload := strings.Join([]string{
		voterID.String(),
		candidateID.String(),
		electionID.String(),
		walletAddress,
		strconv.FormatInt(castAt.UnixNano(), 10),
	}, "|")

	sum := sha256.Sum256([]byte(payload))
	return "0x" + hex.EncodeToString(sum[:])
}
