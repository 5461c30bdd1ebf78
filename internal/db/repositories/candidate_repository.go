package repositories

import (
	"university_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type candidateRepository struct {
	repository
}

type CandidateRepository interface {
	Create(request *models.Candidate) (*models.Candidate, error)
	Update(request *models.Candidate) (*models.Candidate, error)
	Delete(request *models.Candidate) error
	GetOneByID(candidateID uuid.UUID) (*models.Candidate, error)
	GetManyByElectionID(electionID uuid.UUID) ([]*models.Candidate, error)
}

func NewCandidateRepository(db *pg.DB) CandidateRepository {
	return &candidateRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *candidateRepository) Create(request *models.Candidate) (*models.Candidate, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	candidate := &models.Candidate{}

	err = r.db.Model(candidate).
		Where("id = ?", request.ID).
		Select()

	return candidate, err
}

func (r *candidateRepository) Update(request *models.Candidate) (*models.Candidate, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	candidate := &models.Candidate{}

	err = r.db.Model(candidate).
		Where("id = ?", request.ID).
		Select()

	return candidate, err
}

func (r *candidateRepository) Delete(request *models.Candidate) error {
	_, err := r.db.Model(request).WherePK().Delete()
	return err
}

func (r *candidateRepository) GetOneByID(candidateID uuid.UUID) (*models.Candidate, error) {
	candidate := &models.Candidate{}

	err := r.db.Model(candidate).
		Where("id = ?", candidateID).
		Select()

	return candidate, err
}

func (r *candidateRepository) GetManyByElectionID(electionID uuid.UUID) ([]*models.Candidate, error) {
	candidates := make([]*models.Candidate, 0)

	err := r.db.Model(&candidates).
		Where("election_id = ?", electionID).
		OrderExpr("created_at ASC").
		Select()

	return candidates, err
}
