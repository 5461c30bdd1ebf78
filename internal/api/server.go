package api

import (
	"university_voting_system/configs"
	"university_voting_system/internal/api/handlers"
	"university_voting_system/internal/api/middleware"
	"university_voting_system/internal/db/repositories"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles the resource handlers the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Voter     *handlers.VoterHandler
	Election  *handlers.ElectionHandler
	Candidate *handlers.CandidateHandler
	Vote      *handlers.VoteHandler
	Results   *handlers.ResultsHandler
	Stream    *handlers.StreamHandler
}

// NewRouter wires the HTTP surface: public reads, the authenticated voting
// routes, and the admin group. Authentication is a bearer JWT; the admin
// check goes back to the database on every request.
func NewRouter(
	config configs.HTTP,
	handlers Handlers,
	tokenService services.TokenService,
	voterRepository repositories.VoterRepository,
	logger *zap.SugaredLogger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.CORS(config.AllowedOrigin))

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", handlers.Auth.Register)
	auth.POST("/verify", handlers.Auth.Verify)
	auth.POST("/resend-code", handlers.Auth.ResendCode)
	auth.POST("/login", handlers.Auth.Login)

	api.GET("/elections", handlers.Election.List)
	api.GET("/elections/:id", handlers.Election.Get)
	api.GET("/elections/:id/candidates", handlers.Candidate.ListByElection)
	api.GET("/elections/:id/results", handlers.Results.Results)
	api.GET("/elections/:id/stats", handlers.Results.Stats)
	api.GET("/elections/:id/timeline", handlers.Results.Timeline)
	api.GET("/elections/:id/live", handlers.Stream.Subscribe)

	authenticated := api.Group("")
	authenticated.Use(middleware.Auth(tokenService))
	authenticated.GET("/voters/me", handlers.Voter.GetMe)
	authenticated.PUT("/voters/me/wallet", handlers.Voter.BindWallet)
	authenticated.POST("/votes", handlers.Vote.Cast)
	authenticated.GET("/elections/:id/vote-status", handlers.Vote.Status)

	admin := authenticated.Group("/admin")
	admin.Use(middleware.AdminOnly(voterRepository, logger))
	admin.POST("/elections", handlers.Election.Create)
	admin.PUT("/elections/:id", handlers.Election.Update)
	admin.PUT("/elections/:id/deactivate", handlers.Election.Deactivate)
	admin.DELETE("/elections/:id", handlers.Election.Delete)
	admin.POST("/elections/:id/candidates", handlers.Candidate.Create)
	admin.PUT("/candidates/:id", handlers.Candidate.Update)
	admin.DELETE("/candidates/:id", handlers.Candidate.Delete)
	admin.PUT("/voters/:id/voting-enabled", handlers.Voter.SetVotingEnabled)

	return router
}
