package configs

type App struct {
	Environment    string `env:"ENVIRONMENT,notEmpty"`
	UniversityName string `env:"UNIVERSITY_NAME" envDefault:"the university"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
