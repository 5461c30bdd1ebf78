package configs

type HTTP struct {
	Port            int    `env:"HTTP_PORT" envDefault:"8080"`
	AllowedOrigin   string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	ShutdownTimeout int    `env:"HTTP_SHUTDOWN_TIMEOUT_SECONDS" envDefault:"10"`
}
