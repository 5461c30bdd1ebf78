package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"university-voting-system"`
	URL     string `env:"LOKI_URL"`
}
