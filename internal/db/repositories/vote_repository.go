package repositories

import (
	"university_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Create(request *models.Vote) (*models.Vote, error)
	GetOneByVoterAndElection(voterID, electionID uuid.UUID) (*models.Vote, error)
	Exists(voterID, electionID uuid.UUID) (bool, error)
	CountByElection(electionID uuid.UUID) (int, error)
	CountByCandidate(candidateID uuid.UUID) (int, error)
	GetResultsByElection(electionID uuid.UUID) ([]*models.CandidateResult, error)
	GetTimelineByElection(electionID uuid.UUID) ([]*models.TimelineBucket, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

// Create inserts the vote row. Losing the race on the
// (voter_id, election_id) unique constraint comes back as
// ErrUniqueViolation; that constraint, not any pre-check, decides who voted
// first.
func (r *voteRepository) Create(request *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		if uniqueViolation(err) {
			return nil, ErrUniqueViolation
		}
		return nil, err
	}

	vote := &models.Vote{}

	err = r.db.Model(vote).
		Where("id = ?", request.ID).
		Select()

	return vote, err
}

func (r *voteRepository) GetOneByVoterAndElection(voterID, electionID uuid.UUID) (*models.Vote, error) {
	vote := &models.Vote{}

	err := r.db.Model(vote).
		Where("voter_id = ? AND election_id = ?", voterID, electionID).
		Select()

	return vote, err
}

func (r *voteRepository) Exists(voterID, electionID uuid.UUID) (bool, error) {
	return r.db.Model((*models.Vote)(nil)).
		Where("voter_id = ? AND election_id = ?", voterID, electionID).
		Exists()
}

func (r *voteRepository) CountByElection(electionID uuid.UUID) (int, error) {
	return r.db.Model((*models.Vote)(nil)).
		Where("election_id = ?", electionID).
		Count()
}

func (r *voteRepository) CountByCandidate(candidateID uuid.UUID) (int, error) {
	return r.db.Model((*models.Vote)(nil)).
		Where("candidate_id = ?", candidateID).
		Count()
}

// GetResultsByElection returns one row per candidate of the election,
// zero-vote candidates included, ordered by count descending with candidate
// id as the documented tie-break.
func (r *voteRepository) GetResultsByElection(electionID uuid.UUID) ([]*models.CandidateResult, error) {
	results := make([]*models.CandidateResult, 0)

	_, err := r.db.Query(&results, `
		SELECT c.id AS candidate_id, c.full_name, c.department, c.course,
		       count(v.id) AS vote_count
		FROM candidates c
		LEFT JOIN votes v ON v.candidate_id = c.id
		WHERE c.election_id = ?
		GROUP BY c.id
		ORDER BY vote_count DESC, c.id ASC`, electionID)

	return results, err
}

func (r *voteRepository) GetTimelineByElection(electionID uuid.UUID) ([]*models.TimelineBucket, error) {
	buckets := make([]*models.TimelineBucket, 0)

	_, err := r.db.Query(&buckets, `
		SELECT date_trunc('hour', cast_at) AS hour, count(*) AS vote_count
		FROM votes
		WHERE election_id = ?
		GROUP BY hour
		ORDER BY hour ASC`, electionID)

	return buckets, err
}
