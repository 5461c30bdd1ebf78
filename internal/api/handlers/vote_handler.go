package handlers

import (
	"net/http"
	"university_voting_system/internal/api/middleware"
	"university_voting_system/internal/db/models"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VoteHandler struct {
	ballotService services.BallotService
	tallyService  services.TallyService
	logger        *zap.SugaredLogger
}

func NewVoteHandler(
	ballotService services.BallotService,
	tallyService services.TallyService,
	logger *zap.SugaredLogger,
) *VoteHandler {
	return &VoteHandler{
		ballotService: ballotService,
		tallyService:  tallyService,
		logger:        logger,
	}
}

type castVoteRequest struct {
	ElectionID    uuid.UUID `json:"election_id" binding:"required"`
	CandidateID   uuid.UUID `json:"candidate_id" binding:"required"`
	WalletAddress string    `json:"wallet_address"`
}

// Cast submits a ballot for the authenticated voter. Eligibility outcomes
// come back as typed errors from the service and keep their user-facing
// message; a duplicate reads the same whether the advisory gate or the
// unique constraint caught it.
func (h *VoteHandler) Cast(c *gin.Context) {
	voterID, ok := middleware.VoterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var request castVoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vote, err := h.ballotService.CastVote(voterID, request.ElectionID, request.CandidateID, request.WalletAddress)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// Courtesy invalidation so a voter refreshing results right after
	// casting sees their vote; TTL expiry covers every other writer.
	h.tallyService.InvalidateCache(request.ElectionID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "vote recorded",
		"vote":    vote,
	})
}

type voteStatusResponse struct {
	HasVoted bool         `json:"has_voted"`
	Vote     *models.Vote `json:"vote,omitempty"`
}

// Status reports whether the authenticated voter already voted in the
// election. Clients that time out waiting for Cast re-query this instead of
// assuming the vote was lost.
func (h *VoteHandler) Status(c *gin.Context) {
	voterID, ok := middleware.VoterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	electionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	vote, hasVoted, err := h.ballotService.GetVoteStatus(voterID, electionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, voteStatusResponse{
		HasVoted: hasVoted,
		Vote:     vote,
	})
}
