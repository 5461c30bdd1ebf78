package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"university_voting_system/configs"
	"university_voting_system/internal/db/models"
	mock_repositories "university_voting_system/internal/db/repositories/mocks"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTokenService() services.TokenService {
	return services.NewTokenService(configs.Auth{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}, time.Now)
}

func newAuthProbe(tokenService services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/probe", Auth(tokenService), func(c *gin.Context) {
		voterID, ok := VoterID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no voter in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"voter_id": voterID})
	})

	return router
}

func probe(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestAuth_ValidToken(t *testing.T) {
	tokenService := newTokenService()
	router := newAuthProbe(tokenService)

	voterID := uuid.New()
	token, err := tokenService.Issue(&models.Voter{ID: voterID})
	assert.NoError(t, err)

	recorder := probe(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), voterID.String())
}

func TestAuth_MissingHeader(t *testing.T) {
	recorder := probe(newAuthProbe(newTokenService()), "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	recorder := probe(newAuthProbe(newTokenService()), "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	recorder := probe(newAuthProbe(newTokenService()), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func newAdminProbe(tokenService services.TokenService, voterRepository *mock_repositories.MockVoterRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/probe",
		Auth(tokenService),
		AdminOnly(voterRepository, zap.NewNop().Sugar()),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

	return router
}

func TestAdminOnly_Admin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenService := newTokenService()
	voterRepo := mock_repositories.NewMockVoterRepository(ctrl)
	router := newAdminProbe(tokenService, voterRepo)

	admin := &models.Voter{ID: uuid.New(), IsAdmin: true}
	voterRepo.EXPECT().GetOneByID(admin.ID).Return(admin, nil)

	token, err := tokenService.Issue(admin)
	assert.NoError(t, err)

	recorder := probe(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAdminOnly_NonAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenService := newTokenService()
	voterRepo := mock_repositories.NewMockVoterRepository(ctrl)
	router := newAdminProbe(tokenService, voterRepo)

	// The flag is read from the database, not the token, so a token that
	// still claims admin does not help a revoked administrator.
	voter := &models.Voter{ID: uuid.New(), IsAdmin: true}
	token, err := tokenService.Issue(voter)
	assert.NoError(t, err)

	voter.IsAdmin = false
	voterRepo.EXPECT().GetOneByID(voter.ID).Return(voter, nil)

	recorder := probe(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAdminOnly_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenService := newTokenService()
	voterRepo := mock_repositories.NewMockVoterRepository(ctrl)
	router := newAdminProbe(tokenService, voterRepo)

	voter := &models.Voter{ID: uuid.New()}
	voterRepo.EXPECT().GetOneByID(voter.ID).Return(nil, errors.New("connection reset"))

	token, err := tokenService.Issue(voter)
	assert.NoError(t, err)

	recorder := probe(router, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestCORS_SetsHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS("https://vote.university.edu"))
	router.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	recorder := probe(router, "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://vote.university.edu", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS("*"))
	router.POST("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	request, _ := http.NewRequest(http.MethodOptions, "/probe", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "POST")
}
