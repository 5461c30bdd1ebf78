package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type APIServerConfig struct {
	App    App
	DB     DB
	Logger Logger
	HTTP   HTTP
	Auth   Auth
	Mailer Mailer
	Voting Voting
}

func LoadAPIServerConfig() (APIServerConfig, error) {
	var config APIServerConfig

	loadDotEnv()

	if err := env.Parse(&config); err != nil {
		return APIServerConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

type ElectionStateServiceConfig struct {
	App          App
	DB           DB
	Logger       Logger
	Mailer       Mailer
	Voting       Voting
	StateService StateService
}

func LoadElectionStateServiceConfig() (ElectionStateServiceConfig, error) {
	var config ElectionStateServiceConfig

	loadDotEnv()

	if err := env.Parse(&config); err != nil {
		return ElectionStateServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// loadDotEnv reads the optional local .env file. Absence is fine, the
// environment itself is the source of truth.
func loadDotEnv() {
	_ = godotenv.Load()
}
