package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"university_voting_system/configs"
	"university_voting_system/internal/api/middleware"
	"university_voting_system/internal/db/models"
	"university_voting_system/internal/services"
	mock_services "university_voting_system/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testTokenService() services.TokenService {
	return services.NewTokenService(configs.Auth{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}, time.Now)
}

func bearerToken(t *testing.T, tokenService services.TokenService, voterID uuid.UUID) string {
	token, err := tokenService.Issue(&models.Voter{ID: voterID})
	assert.NoError(t, err)
	return "Bearer " + token
}

type voteHandlerFixture struct {
	router *gin.Engine
	ballot *mock_services.MockBallotService
	tally  *mock_services.MockTallyService
	token  services.TokenService
}

func newVoteHandlerFixture(ctrl *gomock.Controller) *voteHandlerFixture {
	gin.SetMode(gin.TestMode)

	fixture := &voteHandlerFixture{
		ballot: mock_services.NewMockBallotService(ctrl),
		tally:  mock_services.NewMockTallyService(ctrl),
		token:  testTokenService(),
	}

	handler := NewVoteHandler(fixture.ballot, fixture.tally, zap.NewNop().Sugar())

	fixture.router = gin.New()
	authenticated := fixture.router.Group("/api/v1", middleware.Auth(fixture.token))
	authenticated.POST("/votes", handler.Cast)
	authenticated.GET("/elections/:id/vote-status", handler.Status)

	return fixture
}

func (f *voteHandlerFixture) castVote(t *testing.T, voterID uuid.UUID, body string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodPost, "/api/v1/votes", bytes.NewBufferString(body))
	assert.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", bearerToken(t, f.token, voterID))

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func castBody(electionID, candidateID uuid.UUID, wallet string) string {
	return fmt.Sprintf(`{"election_id":%q,"candidate_id":%q,"wallet_address":%q}`, electionID, candidateID, wallet)
}

func TestCast_RecordsVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	voterID := uuid.New()
	electionID := uuid.New()
	candidateID := uuid.New()

	stored := &models.Vote{
		ID:          uuid.New(),
		VoterID:     voterID,
		ElectionID:  electionID,
		CandidateID: candidateID,
		VoteHash:    "0xdeadbeef",
	}

	fixture.ballot.EXPECT().
		CastVote(voterID, electionID, candidateID, "0x51ab90de").
		Return(stored, nil)
	fixture.tally.EXPECT().InvalidateCache(electionID)

	recorder := fixture.castVote(t, voterID, castBody(electionID, candidateID, "0x51ab90de"))

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response struct {
		Message string      `json:"message"`
		Vote    models.Vote `json:"vote"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "vote recorded", response.Message)
	assert.Equal(t, stored.ID, response.Vote.ID)
	assert.Equal(t, "0xdeadbeef", response.Vote.VoteHash)
}

func TestCast_DuplicateVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	voterID := uuid.New()
	electionID := uuid.New()
	candidateID := uuid.New()

	fixture.ballot.EXPECT().
		CastVote(voterID, electionID, candidateID, "").
		Return(nil, services.ErrDuplicateVote)

	recorder := fixture.castVote(t, voterID, castBody(electionID, candidateID, ""))

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), services.ErrDuplicateVote.Error())
}

func TestCast_ElectionNotActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	voterID := uuid.New()

	fixture.ballot.EXPECT().
		CastVote(voterID, gomock.Any(), gomock.Any(), "").
		Return(nil, services.ErrElectionNotActive)

	recorder := fixture.castVote(t, voterID, castBody(uuid.New(), uuid.New(), ""))

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCast_VoterNotVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	voterID := uuid.New()

	fixture.ballot.EXPECT().
		CastVote(voterID, gomock.Any(), gomock.Any(), "").
		Return(nil, services.ErrVoterNotVerified)

	recorder := fixture.castVote(t, voterID, castBody(uuid.New(), uuid.New(), ""))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCast_VotingDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	voterID := uuid.New()

	fixture.ballot.EXPECT().
		CastVote(voterID, gomock.Any(), gomock.Any(), "").
		Return(nil, services.ErrVotingDisabled)

	recorder := fixture.castVote(t, voterID, castBody(uuid.New(), uuid.New(), ""))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCast_WalletRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	voterID := uuid.New()

	fixture.ballot.EXPECT().
		CastVote(voterID, gomock.Any(), gomock.Any(), "").
		Return(nil, services.ErrWalletRequired)

	recorder := fixture.castVote(t, voterID, castBody(uuid.New(), uuid.New(), ""))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCast_TransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	voterID := uuid.New()

	fixture.ballot.EXPECT().
		CastVote(voterID, gomock.Any(), gomock.Any(), "").
		Return(nil, errors.New("connection reset"))

	recorder := fixture.castVote(t, voterID, castBody(uuid.New(), uuid.New(), ""))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "internal error")
	// The raw failure never reaches the client.
	assert.NotContains(t, recorder.Body.String(), "connection reset")
}

func TestCast_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	request, err := http.NewRequest(http.MethodPost, "/api/v1/votes", bytes.NewBufferString(castBody(uuid.New(), uuid.New(), "")))
	assert.NoError(t, err)

	recorder := httptest.NewRecorder()
	fixture.router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCast_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	recorder := fixture.castVote(t, uuid.New(), `{"election_id":"not-a-uuid"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCast_MissingCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	recorder := fixture.castVote(t, uuid.New(), fmt.Sprintf(`{"election_id":%q}`, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func (f *voteHandlerFixture) voteStatus(t *testing.T, voterID uuid.UUID, electionID string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodGet, "/api/v1/elections/"+electionID+"/vote-status", nil)
	assert.NoError(t, err)
	request.Header.Set("Authorization", bearerToken(t, f.token, voterID))

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func TestStatus_HasVoted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	voterID := uuid.New()
	electionID := uuid.New()
	stored := &models.Vote{ID: uuid.New(), VoterID: voterID, ElectionID: electionID}

	fixture.ballot.EXPECT().GetVoteStatus(voterID, electionID).Return(stored, true, nil)

	recorder := fixture.voteStatus(t, voterID, electionID.String())

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response voteStatusResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.HasVoted)
	assert.Equal(t, stored.ID, response.Vote.ID)
}

func TestStatus_NoVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	voterID := uuid.New()
	electionID := uuid.New()

	fixture.ballot.EXPECT().GetVoteStatus(voterID, electionID).Return(nil, false, nil)

	recorder := fixture.voteStatus(t, voterID, electionID.String())

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response voteStatusResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.False(t, response.HasVoted)
	assert.Nil(t, response.Vote)
}

func TestStatus_MalformedElectionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoteHandlerFixture(ctrl)

	recorder := fixture.voteStatus(t, uuid.New(), "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
