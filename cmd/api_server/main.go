package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	"university_voting_system/configs"
	"university_voting_system/internal/api"
	"university_voting_system/internal/api/handlers"
	"university_voting_system/internal/db"
	"university_voting_system/internal/db/repositories"
	"university_voting_system/internal/di"
	"university_voting_system/internal/realtime"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()

	logger.Info("loading config")
	config, err := configs.LoadAPIServerConfig()
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger = di.NewLogger(config.App, config.Logger)

	if !config.App.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	voterRepository := repositories.NewVoterRepository(database)
	electionRepository := repositories.NewElectionRepository(database)
	candidateRepository := repositories.NewCandidateRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	verificationCodeRepository := repositories.NewVerificationCodeRepository(database)

	mailerService := services.NewMailerService(config.Mailer, config.App)
	tokenService := services.NewTokenService(config.Auth, time.Now)
	verificationService := services.NewVerificationService(config.Auth, voterRepository, verificationCodeRepository, mailerService, logger, time.Now)
	accountService := services.NewAccountService(voterRepository, verificationService, tokenService, logger)
	eligibilityService := services.NewEligibilityService(voteRepository, time.Now)
	ballotService := services.NewBallotService(voterRepository, electionRepository, candidateRepository, voteRepository, eligibilityService, mailerService, logger, time.Now)
	tallyService := services.NewTallyService(config.Voting, electionRepository, voterRepository, voteRepository, logger, time.Now)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	hub := realtime.NewHub(config.Voting.LiveRefreshInterval, logger)
	listener := realtime.NewVoteListener(database, hub, logger)
	go hub.Run(ctx)
	go listener.Run(ctx)

	router := api.NewRouter(
		config.HTTP,
		api.Handlers{
			Auth:      handlers.NewAuthHandler(accountService, verificationService, voterRepository, logger),
			Voter:     handlers.NewVoterHandler(accountService, voterRepository, logger),
			Election:  handlers.NewElectionHandler(electionRepository, candidateRepository, logger, time.Now),
			Candidate: handlers.NewCandidateHandler(candidateRepository, electionRepository, voteRepository, logger),
			Vote:      handlers.NewVoteHandler(ballotService, tallyService, logger),
			Results:   handlers.NewResultsHandler(tallyService, logger),
			Stream:    handlers.NewStreamHandler(config.HTTP, hub, electionRepository, logger),
		},
		tokenService,
		voterRepository,
		logger,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.HTTP.Port),
		Handler: router,
	}

	go func() {
		logger.Infow("api server listening", "port", config.HTTP.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(config.HTTP.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shut down cleanly", "error", err)
	}
}
