package configs

import "time"

type Voting struct {
	ResultsCacheTTL     time.Duration `env:"RESULTS_CACHE_TTL" envDefault:"5s"`
	LiveRefreshInterval time.Duration `env:"LIVE_REFRESH_INTERVAL" envDefault:"30s"`
}
