package repositories

import (
	"time"
	"university_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type electionRepository struct {
	repository
}

type ElectionRepository interface {
	Create(request *models.Election) (*models.Election, error)
	Update(request *models.Election) (*models.Election, error)
	Delete(request *models.Election) error
	GetOneByID(electionID uuid.UUID) (*models.Election, error)
	GetMany() ([]*models.Election, error)
	GetManyExpiredActive(now time.Time) ([]*models.Election, error)
}

func NewElectionRepository(db *pg.DB) ElectionRepository {
	return &electionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *electionRepository) Create(request *models.Election) (*models.Election, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	election := &models.Election{}

	err = r.db.Model(election).
		Relation("Candidates").
		Where("election.id = ?", request.ID).
		Select()

	return election, err
}

func (r *electionRepository) Update(request *models.Election) (*models.Election, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	election := &models.Election{}

	err = r.db.Model(election).
		Relation("Candidates").
		Where("election.id = ?", request.ID).
		Select()

	return election, err
}

func (r *electionRepository) Delete(request *models.Election) error {
	_, err := r.db.Model(request).WherePK().Delete()
	return err
}

func (r *electionRepository) GetOneByID(electionID uuid.UUID) (*models.Election, error) {
	election := &models.Election{}

	err := r.db.Model(election).
		Relation("Candidates").
		Where("election.id = ?", electionID).
		Select()

	return election, err
}

func (r *electionRepository) GetMany() ([]*models.Election, error) {
	elections := make([]*models.Election, 0)

	err := r.db.Model(&elections).
		Relation("Candidates").
		OrderExpr("start_time ASC").
		Select()

	return elections, err
}

// GetManyExpiredActive lists elections whose window has passed but whose
// active switch has not been cleared yet.
func (r *electionRepository) GetManyExpiredActive(now time.Time) ([]*models.Election, error) {
	elections := make([]*models.Election, 0)

	err := r.db.Model(&elections).
		Where("is_active = true AND end_time < ?", now).
		Select()

	return elections, err
}
