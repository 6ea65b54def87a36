package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// DatabasePath defaults to an in-memory ledger that is gone on restart.
	DatabasePath string     `env:"BLACKJACK_DATABASE_PATH" envDefault:"file:blackjack?mode=memory&cache=shared"`
	Seed         uint64     `env:"BLACKJACK_SEED"`
	LogLevel     slog.Level `env:"BLACKJACK_LOG_LEVEL" envDefault:"INFO"`
	DealerName   string     `env:"BLACKJACK_DEALER_NAME" envDefault:"Ahmed"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("BLACKJACK_DATABASE_PATH is empty")
	}

	return &cfg, nil
}
