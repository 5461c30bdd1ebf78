package main

import (
	"time"
	"university_voting_system/configs"
	"university_voting_system/internal/db"
	"university_voting_system/internal/db/models"
	"university_voting_system/internal/db/repositories"
	"university_voting_system/internal/di"
	"university_voting_system/internal/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()

	logger.Info("loading config")
	config, err := configs.LoadElectionStateServiceConfig()
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger = di.NewLogger(config.App, config.Logger)

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	voterRepository := repositories.NewVoterRepository(database)
	electionRepository := repositories.NewElectionRepository(database)
	voteRepository := repositories.NewVoteRepository(database)

	mailerService := services.NewMailerService(config.Mailer, config.App)
	tallyService := services.NewTallyService(config.Voting, electionRepository, voterRepository, voteRepository, logger, time.Now)

	s := gocron.NewScheduler(time.UTC)

	_, err = s.Every(config.StateService.CheckInterval).Do(func() {
		closeEndedElections(electionRepository, voterRepository, tallyService, mailerService, config.Mailer.AdminEmail, logger)
	})
	if err != nil {
		logger.Fatalw("failed to schedule election sweep", "error", err)
	}

	logger.Infow("election state service started", "interval", config.StateService.CheckInterval)

	s.StartBlocking()
}

// closeEndedElections clears the active switch on every election whose
// window has passed and emails administrators the final results.
func closeEndedElections(
	electionRepository repositories.ElectionRepository,
	voterRepository repositories.VoterRepository,
	tallyService services.TallyService,
	mailerService services.MailerService,
	fallbackAdminEmail string,
	logger *zap.SugaredLogger,
) {
	elections, err := electionRepository.GetManyExpiredActive(time.Now())
	if err != nil {
		logger.Errorw("failed to get expired elections", "error", err)
		return
	}

	if len(elections) == 0 {
		logger.Info("no elections to close")
		return
	}

	closed := deactivateElections(elections, electionRepository, logger)
	if len(closed) == 0 {
		return
	}

	admins, err := voterRepository.GetManyAdmins()
	if err != nil {
		logger.Errorw("failed to get administrators", "error", err)
	}

	recipients := summaryRecipients(admins, fallbackAdminEmail)
	if len(recipients) == 0 {
		logger.Warn("no summary recipients configured")
		return
	}

	for _, election := range closed {
		stats, err := tallyService.GetElectionStats(election.ID)
		if err != nil {
			logger.Errorw("failed to compute final results", "election_id", election.ID, "error", err)
			continue
		}

		if err = mailerService.SendElectionSummary(recipients, election, stats); err != nil {
			logger.Errorw("failed to send election summary", "election_id", election.ID, "error", err)
			continue
		}

		logger.Infow("election closed",
			"election_id", election.ID,
			"total_votes", stats.TotalVotes,
			"leading_candidate", stats.LeadingCandidate)
	}
}

// deactivateElections flips the active switch off, returning the elections
// that were actually updated.
func deactivateElections(
	elections []*models.Election,
	electionRepository repositories.ElectionRepository,
	logger *zap.SugaredLogger,
) []*models.Election {
	var closed []*models.Election

	for _, election := range elections {
		election.IsActive = false
		election.UpdatedAt = time.Now()

		updated, err := electionRepository.Update(election)
		if err != nil {
			logger.Errorw("failed to deactivate election", "election_id", election.ID, "error", err)
			continue
		}

		closed = append(closed, updated)
	}

	return closed
}

// summaryRecipients collects administrator emails plus the configured
// fallback, deduplicated, in a stable order.
func summaryRecipients(admins []*models.Voter, fallbackEmail string) []string {
	seen := make(map[string]struct{})
	var recipients []string

	for _, admin := range admins {
		if admin.Email == "" {
			continue
		}
		if _, ok := seen[admin.Email]; ok {
			continue
		}

		seen[admin.Email] = struct{}{}
		recipients = append(recipients, admin.Email)
	}

	if fallbackEmail != "" {
		if _, ok := seen[fallbackEmail]; !ok {
			recipients = append(recipients, fallbackEmail)
		}
	}

	return recipients
}
