package handlers

import (
	"net/http"
	"university_voting_system/internal/db/repositories"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CandidateHandler struct {
	candidateRepository repositories.CandidateRepository
	electionRepository  repositories.ElectionRepository
	voteRepository      repositories.VoteRepository
	logger              *zap.SugaredLogger
}

func NewCandidateHandler(
	candidateRepository repositories.CandidateRepository,
	electionRepository repositories.ElectionRepository,
	voteRepository repositories.VoteRepository,
	logger *zap.SugaredLogger,
) *CandidateHandler {
	return &CandidateHandler{
		candidateRepository: candidateRepository,
		electionRepository:  electionRepository,
		voteRepository:      voteRepository,
		logger:              logger,
	}
}

func (h *CandidateHandler) ListByElection(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	candidates, err := h.candidateRepository.GetManyByElectionID(electionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if len(candidates) == 0 {
		if _, err = h.electionRepository.GetOneByID(electionID); err != nil {
			if repositories.IsNoRows(err) {
				respondError(c, h.logger, services.ErrElectionNotFound)
				return
			}
			respondError(c, h.logger, err)
			return
		}
	}

	c.JSON(http.StatusOK, candidates)
}

func (h *CandidateHandler) Create(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input candidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	election, err := h.electionRepository.GetOneByID(electionID)
	if err != nil {
		if repositories.IsNoRows(err) {
			respondError(c, h.logger, services.ErrElectionNotFound)
			return
		}
		respondError(c, h.logger, err)
		return
	}

	candidate, err := h.candidateRepository.Create(newCandidate(election, input))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("candidate created",
		"candidate_id", candidate.ID,
		"election_id", election.ID)

	c.JSON(http.StatusCreated, candidate)
}

func (h *CandidateHandler) Update(c *gin.Context) {
	candidateID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input candidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.candidateRepository.GetOneByID(candidateID)
	if err != nil {
		if repositories.IsNoRows(err) {
			respondError(c, h.logger, services.ErrCandidateNotFound)
			return
		}
		respondError(c, h.logger, err)
		return
	}

	candidate.FullName = input.FullName
	candidate.Email = input.Email
	candidate.Department = input.Department
	candidate.Course = input.Course
	candidate.YearOfStudy = input.YearOfStudy
	candidate.Manifesto = input.Manifesto
	candidate.ImageURL = input.ImageURL
	candidate.VideoURL = input.VideoURL

	candidate, err = h.candidateRepository.Update(candidate)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// Delete refuses to remove a candidate that votes point at. Deleting the
// whole election is the supported way to drop voted-for candidates.
func (h *CandidateHandler) Delete(c *gin.Context) {
	candidateID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	candidate, err := h.candidateRepository.GetOneByID(candidateID)
	if err != nil {
		if repositories.IsNoRows(err) {
			respondError(c, h.logger, services.ErrCandidateNotFound)
			return
		}
		respondError(c, h.logger, err)
		return
	}

	votes, err := h.voteRepository.CountByCandidate(candidate.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if votes > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "candidate has votes and cannot be deleted"})
		return
	}

	if err = h.candidateRepository.Delete(candidate); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("candidate deleted", "candidate_id", candidate.ID)

	c.Status(http.StatusNoContent)
}
