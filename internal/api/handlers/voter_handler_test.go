package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"university_voting_system/internal/api/middleware"
	"university_voting_system/internal/db/models"
	mock_repositories "university_voting_system/internal/db/repositories/mocks"
	"university_voting_system/internal/services"
	mock_services "university_voting_system/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type voterFixture struct {
	router    *gin.Engine
	account   *mock_services.MockAccountService
	voterRepo *mock_repositories.MockVoterRepository
	token     services.TokenService
}

func newVoterFixture(ctrl *gomock.Controller) *voterFixture {
	gin.SetMode(gin.TestMode)

	fixture := &voterFixture{
		account:   mock_services.NewMockAccountService(ctrl),
		voterRepo: mock_repositories.NewMockVoterRepository(ctrl),
		token:     testTokenService(),
	}

	handler := NewVoterHandler(fixture.account, fixture.voterRepo, zap.NewNop().Sugar())

	fixture.router = gin.New()
	authenticated := fixture.router.Group("/api/v1", middleware.Auth(fixture.token))
	authenticated.GET("/voters/me", handler.GetMe)
	authenticated.PUT("/voters/me/wallet", handler.BindWallet)
	authenticated.PUT("/admin/voters/:id/voting-enabled", handler.SetVotingEnabled)

	return fixture
}

func (f *voterFixture) request(t *testing.T, method, path, body string, voterID uuid.UUID) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request, _ = http.NewRequest(method, path, nil)
	} else {
		request, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Authorization", bearerToken(t, f.token, voterID))

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func TestGetMe_ReturnsVoter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoterFixture(ctrl)

	stored := &models.Voter{
		ID:           uuid.New(),
		Email:        "ada@university.edu",
		PasswordHash: "$2a$10$secret",
		IsVerified:   true,
	}

	fixture.voterRepo.EXPECT().GetOneByID(stored.ID).Return(stored, nil)

	recorder := fixture.request(t, http.MethodGet, "/api/v1/voters/me", "", stored.ID)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var voter models.Voter
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &voter))
	assert.Equal(t, stored.ID, voter.ID)
	assert.NotContains(t, recorder.Body.String(), "$2a$10$secret")
}

func TestGetMe_UnknownVoter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoterFixture(ctrl)

	voterID := uuid.New()
	fixture.voterRepo.EXPECT().GetOneByID(voterID).Return(nil, pg.ErrNoRows)

	recorder := fixture.request(t, http.MethodGet, "/api/v1/voters/me", "", voterID)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBindWallet_BindsAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoterFixture(ctrl)

	voterID := uuid.New()
	bound := &models.Voter{ID: voterID, WalletAddress: "0x51ab90de"}

	fixture.account.EXPECT().BindWallet(voterID, "0x51ab90de").Return(bound, nil)

	recorder := fixture.request(t, http.MethodPut, "/api/v1/voters/me/wallet", `{"wallet_address":"0x51ab90de"}`, voterID)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "0x51ab90de")
}

func TestBindWallet_AlreadyBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoterFixture(ctrl)

	voterID := uuid.New()

	fixture.account.EXPECT().BindWallet(voterID, "0xother").Return(nil, services.ErrWalletAlreadyBound)

	recorder := fixture.request(t, http.MethodPut, "/api/v1/voters/me/wallet", `{"wallet_address":"0xother"}`, voterID)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestBindWallet_MissingAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoterFixture(ctrl)

	recorder := fixture.request(t, http.MethodPut, "/api/v1/voters/me/wallet", `{}`, uuid.New())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSetVotingEnabled_DisablesVoter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoterFixture(ctrl)

	target := &models.Voter{ID: uuid.New(), VotingEnabled: true}

	fixture.voterRepo.EXPECT().GetOneByID(target.ID).Return(target, nil)
	fixture.voterRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(voter *models.Voter) (*models.Voter, error) {
		assert.False(t, voter.VotingEnabled)
		return voter, nil
	})

	recorder := fixture.request(t, http.MethodPut, "/api/v1/admin/voters/"+target.ID.String()+"/voting-enabled", `{"enabled":false}`, uuid.New())

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"voting_enabled":false`)
}

func TestSetVotingEnabled_MissingFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newVoterFixture(ctrl)

	recorder := fixture.request(t, http.MethodPut, "/api/v1/admin/voters/"+uuid.New().String()+"/voting-enabled", `{}`, uuid.New())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
