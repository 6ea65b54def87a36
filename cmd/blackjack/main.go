package main

import (
	"log/slog"
	"os"

	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/database"
	"blackjack/internal/player"

	"github.com/pterm/pterm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open round ledger", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Debug("round ledger ready", "path", cfg.DatabasePath)

	rounds := player.NewRepository(db.DB)

	if err := console.New(cfg, rounds, logger).Run(); err != nil {
		logger.Error("session ended", "error", err)
		db.Close()
		os.Exit(1)
	}
}

func newLogger(level slog.Level) *slog.Logger {
	ptermLevel := pterm.LogLevelInfo
	switch {
	case level <= slog.LevelDebug:
		ptermLevel = pterm.LogLevelDebug
	case level >= slog.LevelError:
		ptermLevel = pterm.LogLevelError
	case level >= slog.LevelWarn:
		ptermLevel = pterm.LogLevelWarn
	}

	return slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel)))
}
