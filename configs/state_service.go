package configs

import "time"

type StateService struct {
	CheckInterval time.Duration `env:"ELECTION_STATE_CHECK_INTERVAL" envDefault:"1m"`
}
