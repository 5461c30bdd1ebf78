package services

import (
	"errors"
	"fmt"
	"strings"
	"university_voting_system/internal/db/models"
	"university_voting_system/internal/db/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterVoter struct {
	FullName  string
	Email     string
	Phone     string
	StudentID string
	Password  string
}

type accountService struct {
	voterRepository     repositories.VoterRepository
	verificationService VerificationService
	tokenService        TokenService
	logger              *zap.SugaredLogger
}

type AccountService interface {
	Register(request RegisterVoter) (*models.Voter, error)
	Login(email, password string) (*models.Voter, string, error)
	BindWallet(voterID uuid.UUID, walletAddress string) (*models.Voter, error)
}

func NewAccountService(
	voterRepository repositories.VoterRepository,
	verificationService VerificationService,
	tokenService TokenService,
	logger *zap.SugaredLogger,
) AccountService {
	return &accountService{
		voterRepository:     voterRepository,
		verificationService: verificationService,
		tokenService:        tokenService,
		logger:              logger,
	}
}

func (s *accountService) Register(request RegisterVoter) (*models.Voter, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	voter, err := s.voterRepository.Create(&models.Voter{
		FullName:      request.FullName,
		Email:         normalizeEmail(request.Email),
		Phone:         request.Phone,
		StudentID:     strings.TrimSpace(request.StudentID),
		PasswordHash:  string(passwordHash),
		VotingEnabled: true,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrVoterExists
		}
		return nil, fmt.Errorf("failed to create voter: %w", err)
	}

	// The voter can always ask for a new code, so a failure here does not
	// undo the registration.
	if err = s.verificationService.IssueCode(voter); err != nil {
		s.logger.Warnw("failed to issue verification code",
			"voter_id", voter.ID,
			"error", err)
	}

	return voter, nil
}

func (s *accountService) Login(email, password string) (*models.Voter, string, error) {
	voter, err := s.voterRepository.GetOneByEmail(normalizeEmail(email))
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get voter: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(voter.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(voter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return voter, token, nil
}

func (s *accountService) BindWallet(voterID uuid.UUID, walletAddress string) (*models.Voter, error) {
	voter, err := s.voterRepository.GetOneByID(voterID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}

	// Bound once; changing an address afterwards would need a fresh
	// verification flow, which deliberately does not exist.
	if voter.HasWallet() {
		return nil, ErrWalletAlreadyBound
	}

	voter.WalletAddress = strings.TrimSpace(walletAddress)

	voter, err = s.voterRepository.Update(voter)
	if err != nil {
		return nil, fmt.Errorf("failed to bind wallet: %w", err)
	}

	return voter, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
