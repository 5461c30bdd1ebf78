package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP responses. Eligibility
// outcomes and validation problems keep their user-facing message;
// anything unrecognized is a transient fault the caller may retry.
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, services.ErrElectionNotActive),
		errors.Is(err, services.ErrDuplicateVote),
		errors.Is(err, services.ErrVoterExists),
		errors.Is(err, services.ErrWalletAlreadyBound):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, services.ErrVoterNotVerified),
		errors.Is(err, services.ErrVotingDisabled):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrVoterNotFound),
		errors.Is(err, services.ErrElectionNotFound),
		errors.Is(err, services.ErrCandidateNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrCandidateMismatch),
		errors.Is(err, services.ErrWalletRequired),
		errors.Is(err, services.ErrInvalidVerificationCode),
		errors.Is(err, services.ErrVerificationCodeExpired):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		logger.Errorw("request failed", "path", c.FullPath(), "error", err)
	} else if services.IsEligibilityError(err) {
		logger.Infow("vote rejected", "path", c.FullPath(), "reason", err.Error())
	}

	c.JSON(status, gin.H{"error": message})
}

// pathUUID parses a uuid path parameter, answering 400 itself when the
// value is malformed.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return uuid.Nil, false
	}

	return id, true
}
