package handlers

import (
	"net/http"
	"time"
	"university_voting_system/internal/db/models"
	"university_voting_system/internal/db/repositories"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ElectionHandler struct {
	electionRepository  repositories.ElectionRepository
	candidateRepository repositories.CandidateRepository
	logger              *zap.SugaredLogger
	now                 services.Clock
}

func NewElectionHandler(
	electionRepository repositories.ElectionRepository,
	candidateRepository repositories.CandidateRepository,
	logger *zap.SugaredLogger,
	now services.Clock,
) *ElectionHandler {
	return &ElectionHandler{
		electionRepository:  electionRepository,
		candidateRepository: candidateRepository,
		logger:              logger,
		now:                 now,
	}
}

// electionResponse adds the derived status to the stored election row. The
// status is never persisted, it is a function of the clock.
type electionResponse struct {
	*models.Election
	Status models.ElectionStatus `json:"status"`
}

func (h *ElectionHandler) newElectionResponse(election *models.Election) electionResponse {
	return electionResponse{
		Election: election,
		Status:   election.StatusAt(h.now()),
	}
}

func (h *ElectionHandler) List(c *gin.Context) {
	elections, err := h.electionRepository.GetMany()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]electionResponse, 0, len(elections))
	for _, election := range elections {
		response = append(response, h.newElectionResponse(election))
	}

	c.JSON(http.StatusOK, response)
}

func (h *ElectionHandler) Get(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
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

	c.JSON(http.StatusOK, h.newElectionResponse(election))
}

type candidateInput struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Course      string `json:"course"`
	YearOfStudy int    `json:"year_of_study"`
	Manifesto   string `json:"manifesto"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
}

type createElectionRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	StartTime   time.Time        `json:"start_time" binding:"required"`
	EndTime     time.Time        `json:"end_time" binding:"required"`
	Candidates  []candidateInput `json:"candidates"`
}

func (h *ElectionHandler) Create(c *gin.Context) {
	var request createElectionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !request.StartTime.Before(request.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be before end_time"})
		return
	}

	election, err := h.electionRepository.Create(&models.Election{
		Title:       request.Title,
		Description: request.Description,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		IsActive:    true,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	for _, input := range request.Candidates {
		if _, err = h.candidateRepository.Create(newCandidate(election, input)); err != nil {
			respondError(c, h.logger, err)
			return
		}
	}

	election, err = h.electionRepository.GetOneByID(election.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("election created",
		"election_id", election.ID,
		"title", election.Title,
		"candidates", len(election.Candidates))

	c.JSON(http.StatusCreated, h.newElectionResponse(election))
}

type updateElectionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	IsActive    *bool     `json:"is_active" binding:"required"`
}

func (h *ElectionHandler) Update(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var request updateElectionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !request.StartTime.Before(request.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be before end_time"})
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

	election.Title = request.Title
	election.Description = request.Description
	election.StartTime = request.StartTime
	election.EndTime = request.EndTime
	election.IsActive = *request.IsActive
	election.UpdatedAt = h.now()

	election, err = h.electionRepository.Update(election)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, h.newElectionResponse(election))
}

// Deactivate clears the admin kill switch without touching the window.
func (h *ElectionHandler) Deactivate(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
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

	election.IsActive = false
	election.UpdatedAt = h.now()

	election, err = h.electionRepository.Update(election)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("election deactivated", "election_id", election.ID)

	c.JSON(http.StatusOK, h.newElectionResponse(election))
}

// Delete removes the election; candidates and votes go with it through the
// schema's cascade.
func (h *ElectionHandler) Delete(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
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

	if err = h.electionRepository.Delete(election); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("election deleted", "election_id", election.ID)

	c.Status(http.StatusNoContent)
}

func newCandidate(election *models.Election, input candidateInput) *models.Candidate {
	return &models.Candidate{
		ElectionID:  election.ID,
		FullName:    input.FullName,
		Email:       input.Email,
		Department:  input.Department,
		Course:      input.Course,
		YearOfStudy: input.YearOfStudy,
		Manifesto:   input.Manifesto,
		ImageURL:    input.ImageURL,
		VideoURL:    input.VideoURL,
	}
}
