package handlers

import (
	"net/http"
	"university_voting_system/internal/api/middleware"
	"university_voting_system/internal/db/repositories"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VoterHandler struct {
	accountService  services.AccountService
	voterRepository repositories.VoterRepository
	logger          *zap.SugaredLogger
}

func NewVoterHandler(
	accountService services.AccountService,
	voterRepository repositories.VoterRepository,
	logger *zap.SugaredLogger,
) *VoterHandler {
	return &VoterHandler{
		accountService:  accountService,
		voterRepository: voterRepository,
		logger:          logger,
	}
}

func (h *VoterHandler) GetMe(c *gin.Context) {
	voterID, ok := middleware.VoterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	voter, err := h.voterRepository.GetOneByID(voterID)
	if err != nil {
		if repositories.IsNoRows(err) {
			respondError(c, h.logger, services.ErrVoterNotFound)
			return
		}
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, voter)
}

type bindWalletRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
}

func (h *VoterHandler) BindWallet(c *gin.Context) {
	voterID, ok := middleware.VoterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var request bindWalletRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voter, err := h.accountService.BindWallet(voterID, request.WalletAddress)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("wallet bound", "voter_id", voter.ID)

	c.JSON(http.StatusOK, voter)
}

type setVotingEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetVotingEnabled flips the per-voter kill switch. Administrators only.
func (h *VoterHandler) SetVotingEnabled(c *gin.Context) {
	voterID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var request setVotingEnabledRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voter, err := h.voterRepository.GetOneByID(voterID)
	if err != nil {
		if repositories.IsNoRows(err) {
			respondError(c, h.logger, services.ErrVoterNotFound)
			return
		}
		respondError(c, h.logger, err)
		return
	}

	voter.VotingEnabled = *request.Enabled

	voter, err = h.voterRepository.Update(voter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("voting switch updated", "voter_id", voter.ID, "enabled", voter.VotingEnabled)

	c.JSON(http.StatusOK, voter)
}
