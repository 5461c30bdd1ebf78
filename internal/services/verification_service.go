package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
	"university_voting_system/configs"
	"university_voting_system/internal/db/models"
	"university_voting_system/internal/db/repositories"

	"go.uber.org/zap"
)

type verificationService struct {
	voterRepository            repositories.VoterRepository
	verificationCodeRepository repositories.VerificationCodeRepository
	mailerService              MailerService
	logger                     *zap.SugaredLogger
	codeTTL                    time.Duration
	now                        Clock
}

// VerificationService owns the emailed-code step of registration. A
// confirmed code flips the voter's verified flag; only verified voters pass
// the eligibility gate.
type VerificationService interface {
	IssueCode(voter *models.Voter) error
	ConfirmCode(email, code string) (*models.Voter, error)
}

func NewVerificationService(
	config configs.Auth,
	voterRepository repositories.VoterRepository,
	verificationCodeRepository repositories.VerificationCodeRepository,
	mailerService MailerService,
	logger *zap.SugaredLogger,
	now Clock,
) VerificationService {
	return &verificationService{
		voterRepository:            voterRepository,
		verificationCodeRepository: verificationCodeRepository,
		mailerService:              mailerService,
		logger:                     logger,
		codeTTL:                    config.VerificationCodeTTL,
		now:                        now,
	}
}

func (s *verificationService) IssueCode(voter *models.Voter) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	_, err = s.verificationCodeRepository.Upsert(&models.VerificationCode{
		VoterID:   voter.ID,
		Code:      code,
		ExpiresAt: s.now().Add(s.codeTTL),
	})
	if err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	go func() {
		if err := s.mailerService.SendVerificationCode(voter, code); err != nil {
			s.logger.Warnw("failed to send verification code",
				"voter_id", voter.ID,
				"error", err)
		}
	}()

	return nil
}

func (s *verificationService) ConfirmCode(email, code string) (*models.Voter, error) {
	voter, err := s.voterRepository.GetOneByEmail(email)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}

	stored, err := s.verificationCodeRepository.GetOneByVoterID(voter.ID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, ErrInvalidVerificationCode
		}
		return nil, fmt.Errorf("failed to get verification code: %w", err)
	}

	if stored.Code != code {
		return nil, ErrInvalidVerificationCode
	}

	if stored.IsExpiredAt(s.now()) {
		return nil, ErrVerificationCodeExpired
	}

	voter.IsVerified = true

	voter, err = s.voterRepository.Update(voter)
	if err != nil {
		return nil, fmt.Errorf("failed to mark voter verified: %w", err)
	}

	if err = s.verificationCodeRepository.Delete(stored); err != nil {
		s.logger.Warnw("failed to delete used verification code",
			"voter_id", voter.ID,
			"error", err)
	}

	return voter, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
