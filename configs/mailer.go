package configs

import "time"

type Mailer struct {
	URL            string        `env:"MAILER_RELAY_URL,notEmpty"`
	Sender         string        `env:"MAILER_SENDER" envDefault:"elections@university.edu"`
	AdminEmail     string        `env:"MAILER_ADMIN_EMAIL"`
	RequestTimeout time.Duration `env:"MAILER_REQUEST_TIMEOUT" envDefault:"10s"`
}
