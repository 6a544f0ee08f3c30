package environment

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment is the process configuration read from the environment and an
// optional .env file.
type Environment struct {
	ServerHost   string `env:"SERVER_HOST" envDefault:"localhost"`
	ServerPort   string `env:"SERVER_PORT" envDefault:"8080"`
	RatesPath    string `env:"RATES_PATH"`
	ProfilesPath string `env:"PROFILES_PATH"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env files when present and parses the environment. A missing
// .env file is not an error.
func Load(files ...string) (Environment, error) {
	_ = godotenv.Load(files...)

	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// Level resolves LOG_LEVEL, falling back to info on unknown values.
func (e Environment) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(e.LogLevel)
	if err != nil || e.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}
