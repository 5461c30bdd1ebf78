package services

import (
	"fmt"
	"math"
	"university_voting_system/configs"
	"university_voting_system/internal/cache"
	"university_voting_system/internal/db/models"
	"university_voting_system/internal/db/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type tallyService struct {
	electionRepository repositories.ElectionRepository
	voterRepository    repositories.VoterRepository
	voteRepository     repositories.VoteRepository
	results            *cache.TTLCache
	stats              *cache.TTLCache
	timeline           *cache.TTLCache
	logger             *zap.SugaredLogger
	now                Clock
}

// TallyService aggregates stored votes for display. Read-only: it never
// writes and the eligibility gate never reads from it.
type TallyService interface {
	GetElectionResults(electionID uuid.UUID) ([]*models.CandidateResult, error)
	GetElectionStats(electionID uuid.UUID) (*models.ElectionStats, error)
	GetElectionTimeline(electionID uuid.UUID) ([]*models.TimelineBucket, error)
	InvalidateCache(electionID uuid.UUID)
}

func NewTallyService(
	config configs.Voting,
	electionRepository repositories.ElectionRepository,
	voterRepository repositories.VoterRepository,
	voteRepository repositories.VoteRepository,
	logger *zap.SugaredLogger,
	now Clock,
) TallyService {
	return &tallyService{
		electionRepository: electionRepository,
		voterRepository:    voterRepository,
		voteRepository:     voteRepository,
		results:            cache.New(config.ResultsCacheTTL),
		stats:              cache.New(config.ResultsCacheTTL),
		timeline:           cache.New(config.ResultsCacheTTL),
		logger:             logger,
		now:                now,
	}
}

func (s *tallyService) GetElectionResults(electionID uuid.UUID) ([]*models.CandidateResult, error) {
	if cached, ok := s.results.Get(electionID); ok {
		return cached.([]*models.CandidateResult), nil
	}

	rows, err := s.voteRepository.GetResultsByElection(electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load election results: %w", err)
	}

	// No rows either means an unknown election or one without candidates;
	// only the former is an error.
	if len(rows) == 0 {
		if _, err = s.getElection(electionID); err != nil {
			return nil, err
		}
	}

	total := 0
	for _, row := range rows {
		total += row.VoteCount
	}

	for i, row := range rows {
		row.Rank = i + 1
		row.Percentage = percentage(row.VoteCount, total)
	}

	s.results.Set(electionID, rows)

	return rows, nil
}

func (s *tallyService) GetElectionStats(electionID uuid.UUID) (*models.ElectionStats, error) {
	if cached, ok := s.stats.Get(electionID); ok {
		return cached.(*models.ElectionStats), nil
	}

	election, err := s.getElection(electionID)
	if err != nil {
		return nil, err
	}

	results, err := s.GetElectionResults(electionID)
	if err != nil {
		return nil, err
	}

	totalVotes := 0
	for _, row := range results {
		totalVotes += row.VoteCount
	}

	eligible, err := s.voterRepository.CountEligible()
	if err != nil {
		return nil, fmt.Errorf("failed to count eligible voters: %w", err)
	}

	stats := &models.ElectionStats{
		ElectionID:        election.ID,
		Status:            election.StatusAt(s.now()),
		TotalVotes:        totalVotes,
		TotalCandidates:   len(results),
		TurnoutPercentage: percentage(totalVotes, eligible),
	}

	label := models.TallyLabelNoVotesYet
	if totalVotes > 0 {
		leader := results[0]
		stats.LeadingCandidate = leader.FullName
		stats.LeadingVotes = leader.VoteCount
		stats.LeadingPercentage = leader.Percentage

		if stats.Status == models.ElectionStatusEnded {
			label = models.TallyLabelWinner
		} else {
			label = models.TallyLabelCurrentlyLeading
		}
	}
	stats.Label = label.CapitalizedString()

	s.stats.Set(electionID, stats)

	return stats, nil
}

func (s *tallyService) GetElectionTimeline(electionID uuid.UUID) ([]*models.TimelineBucket, error) {
	if cached, ok := s.timeline.Get(electionID); ok {
		return cached.([]*models.TimelineBucket), nil
	}

	buckets, err := s.voteRepository.GetTimelineByElection(electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load election timeline: %w", err)
	}

	if len(buckets) == 0 {
		if _, err = s.getElection(electionID); err != nil {
			return nil, err
		}
	}

	cumulative := 0
	for _, bucket := range buckets {
		cumulative += bucket.VoteCount
		bucket.Cumulative = cumulative
	}

	s.timeline.Set(electionID, buckets)

	return buckets, nil
}

// InvalidateCache drops cached aggregates for the election. Called after a
// local cast as a courtesy; TTL expiry covers everything else.
func (s *tallyService) InvalidateCache(electionID uuid.UUID) {
	s.results.Invalidate(electionID)
	s.stats.Invalidate(electionID)
	s.timeline.Invalidate(electionID)
}

func (s *tallyService) getElection(electionID uuid.UUID) (*models.Election, error) {
	election, err := s.electionRepository.GetOneByID(electionID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, ErrElectionNotFound
		}
		return nil, fmt.Errorf("failed to get election: %w", err)
	}

	return election, nil
}

// percentage rounds to two decimals and guards the empty denominator, which
// must come out as 0 rather than NaN.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(count)/float64(total)*10000) / 100
}
