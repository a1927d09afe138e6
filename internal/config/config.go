package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	Port  string `env:"PORT" envDefault:"8000"`
	Token Token  `envPrefix:"ACCESS_TOKEN_"`
	Mongo Mongo  `envPrefix:"MONGO_"`
	SMTP  SMTP   `envPrefix:"SMTP_"`
}

// Token contains bearer-token signing parameters. The secret has no default:
// a guessable fallback must never sign tokens.
type Token struct {
	Secret string `env:"SECRET,notEmpty"`
}

// Mongo contains document database connection parameters.
type Mongo struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DB" envDefault:"gonotes"`
}

// SMTP contains outbound mail credentials. Server is host:port.
type SMTP struct {
	Server   string `env:"SERVER"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
