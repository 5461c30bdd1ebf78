package handlers

import (
	"net/http"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResultsHandler serves the read-side aggregates. Everything here is
// display data behind a short TTL cache; nothing on the voting write path
// reads from it.
type ResultsHandler struct {
	tallyService services.TallyService
	logger       *zap.SugaredLogger
}

func NewResultsHandler(tallyService services.TallyService, logger *zap.SugaredLogger) *ResultsHandler {
	return &ResultsHandler{
		tallyService: tallyService,
		logger:       logger,
	}
}

func (h *ResultsHandler) Results(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	results, err := h.tallyService.GetElectionResults(electionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *ResultsHandler) Stats(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	stats, err := h.tallyService.GetElectionStats(electionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ResultsHandler) Timeline(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	timeline, err := h.tallyService.GetElectionTimeline(electionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}
