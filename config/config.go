package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the service configuration, read from the environment (a .env
// file is loaded first when present).
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL,required"`
	ListenAddr     string `env:"LISTEN_ADDR" envDefault:":8080"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	SeedDevData    bool   `env:"SEED_DEV_DATA" envDefault:"false"`

	// DefaultMaxPlayersPerTeam seeds new per-user settings rows; each user
	// can change their own cap afterwards.
	DefaultMaxPlayersPerTeam int `env:"DEFAULT_MAX_PLAYERS_PER_TEAM" envDefault:"25"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
