package handlers

import (
	"net/http"
	"university_voting_system/internal/db/repositories"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	accountService      services.AccountService
	verificationService services.VerificationService
	voterRepository     repositories.VoterRepository
	logger              *zap.SugaredLogger
}

func NewAuthHandler(
	accountService services.AccountService,
	verificationService services.VerificationService,
	voterRepository repositories.VoterRepository,
	logger *zap.SugaredLogger,
) *AuthHandler {
	return &AuthHandler{
		accountService:      accountService,
		verificationService: verificationService,
		voterRepository:     voterRepository,
		logger:              logger,
	}
}

type registerRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var request registerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voter, err := h.accountService.Register(services.RegisterVoter{
		FullName:  request.FullName,
		Email:     request.Email,
		Phone:     request.Phone,
		StudentID: request.StudentID,
		Password:  request.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("voter registered", "voter_id", voter.ID)

	c.JSON(http.StatusCreated, voter)
}

type verifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (h *AuthHandler) Verify(c *gin.Context) {
	var request verifyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voter, err := h.verificationService.ConfirmCode(request.Email, request.Code)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("voter verified", "voter_id", voter.ID)

	c.JSON(http.StatusOK, voter)
}

type resendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) ResendCode(c *gin.Context) {
	var request resendCodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voter, err := h.voterRepository.GetOneByEmail(request.Email)
	if err != nil {
		if repositories.IsNoRows(err) {
			respondError(c, h.logger, services.ErrVoterNotFound)
			return
		}
		respondError(c, h.logger, err)
		return
	}

	if voter.IsVerified {
		c.JSON(http.StatusConflict, gin.H{"error": "voter is already verified"})
		return
	}

	if err = h.verificationService.IssueCode(voter); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voter, token, err := h.accountService.Login(request.Email, request.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"voter": voter,
	})
}
