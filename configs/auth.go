package configs

import "time"

type Auth struct {
	JWTSecret           string        `env:"JWT_SECRET,notEmpty"`
	TokenTTL            time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
	VerificationCodeTTL time.Duration `env:"VERIFICATION_CODE_TTL" envDefault:"15m"`
}
