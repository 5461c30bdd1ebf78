package services

import (
	"time"
	"university_voting_system/configs"
	"university_voting_system/internal/db/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type tokenService struct {
	secret   []byte
	tokenTTL time.Duration
	now      Clock
}

type TokenClaims struct {
	VoterID uuid.UUID
	IsAdmin bool
}

type TokenService interface {
	Issue(voter *models.Voter) (string, error)
	Parse(token string) (*TokenClaims, error)
}

func NewTokenService(config configs.Auth, now Clock) TokenService {
	return &tokenService{
		secret:   []byte(config.JWTSecret),
		tokenTTL: config.TokenTTL,
		now:      now,
	}
}

func (s *tokenService) Issue(voter *models.Voter) (string, error) {
	issuedAt := s.now()

	claims := jwt.MapClaims{
		"sub":      voter.ID.String(),
		"is_admin": voter.IsAdmin,
		"iat":      issuedAt.Unix(),
		"exp":      issuedAt.Add(s.tokenTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) Parse(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	voterID, err := uuid.Parse(subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return &TokenClaims{
		VoterID: voterID,
		IsAdmin: isAdmin,
	}, nil
}
