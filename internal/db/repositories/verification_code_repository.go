package repositories

import (
	"university_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type verificationCodeRepository struct {
	repository
}

type VerificationCodeRepository interface {
	Upsert(request *models.VerificationCode) (*models.VerificationCode, error)
	GetOneByVoterID(voterID uuid.UUID) (*models.VerificationCode, error)
	Delete(request *models.VerificationCode) error
}

func NewVerificationCodeRepository(db *pg.DB) VerificationCodeRepository {
	return &verificationCodeRepository{
		repository: repository{
			db: db,
		},
	}
}

// Upsert stores the voter's current code, replacing a previous one. The
// voter_id unique constraint keeps it to one live code per voter.
func (r *verificationCodeRepository) Upsert(request *models.VerificationCode) (*models.VerificationCode, error) {
	_, err := r.db.Model(request).
		OnConflict("(voter_id) DO UPDATE").
		Set("code = EXCLUDED.code, expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at").
		Insert()
	if err != nil {
		return nil, err
	}

	code := &models.VerificationCode{}

	err = r.db.Model(code).
		Where("voter_id = ?", request.VoterID).
		Select()

	return code, err
}

func (r *verificationCodeRepository) GetOneByVoterID(voterID uuid.UUID) (*models.VerificationCode, error) {
	code := &models.VerificationCode{}

	err := r.db.Model(code).
		Where("voter_id = ?", voterID).
		Select()

	return code, err
}

func (r *verificationCodeRepository) Delete(request *models.VerificationCode) error {
	_, err := r.db.Model(request).WherePK().Delete()
	return err
}
