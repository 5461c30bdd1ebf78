package repositories

import (
	"university_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type voterRepository struct {
	repository
}

type VoterRepository interface {
	Create(request *models.Voter) (*models.Voter, error)
	Update(request *models.Voter) (*models.Voter, error)
	GetOneByID(voterID uuid.UUID) (*models.Voter, error)
	GetOneByEmail(email string) (*models.Voter, error)
	GetManyAdmins() ([]*models.Voter, error)
	CountEligible() (int, error)
}

func NewVoterRepository(db *pg.DB) VoterRepository {
	return &voterRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voterRepository) Create(request *models.Voter) (*models.Voter, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		if uniqueViolation(err) {
			return nil, ErrUniqueViolation
		}
		return nil, err
	}

	voter := &models.Voter{}

	err = r.db.Model(voter).
		Where("id = ?", request.ID).
		Select()

	return voter, err
}

func (r *voterRepository) Update(request *models.Voter) (*models.Voter, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	voter := &models.Voter{}

	err = r.db.Model(voter).
		Where("id = ?", request.ID).
		Select()

	return voter, err
}

func (r *voterRepository) GetOneByID(voterID uuid.UUID) (*models.Voter, error) {
	voter := &models.Voter{}

	err := r.db.Model(voter).
		Where("id = ?", voterID).
		Select()

	return voter, err
}

func (r *voterRepository) GetOneByEmail(email string) (*models.Voter, error) {
	voter := &models.Voter{}

	err := r.db.Model(voter).
		Where("email = ?", email).
		Select()

	return voter, err
}

func (r *voterRepository) GetManyAdmins() ([]*models.Voter, error) {
	voters := make([]*models.Voter, 0)

	err := r.db.Model(&voters).
		Where("is_admin = true").
		Select()

	return voters, err
}

// CountEligible counts the voter population used as the turnout
// denominator: verified voters whose voting switch is still on.
func (r *voterRepository) CountEligible() (int, error) {
	return r.db.Model((*models.Voter)(nil)).
		Where("is_verified = true AND voting_enabled = true").
		Count()
}
