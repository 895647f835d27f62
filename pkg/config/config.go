// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// LedgerConfig tunes the balance engine.
type LedgerConfig struct {
	// MaxSingleTransfer caps the size of one compensating bank transfer;
	// a larger shortfall is covered by several transfers.
	MaxSingleTransfer int64 `envconfig:"MAX_SINGLE_TRANSFER" default:"5000000"`
}

// FeedConfig tunes the feed composer.
type FeedConfig struct {
	PageSize int `envconfig:"PAGE_SIZE" default:"10"`
}

// SeedConfig locates the seed snapshot consumed at startup.
type SeedConfig struct {
	Path string `envconfig:"PATH" default:"data/seed.json"`
}

// AppConfig is the root configuration.
type AppConfig struct {
	Ledger LedgerConfig `envconfig:"LEDGER"`
	Feed   FeedConfig   `envconfig:"FEED"`
	Seed   SeedConfig   `envconfig:"SEED"`
}

// LoadAppConfig reads configuration from the environment. A missing .env
// file is not an error.
func LoadAppConfig(logger *slog.Logger) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}
	var cfg AppConfig
	if err := envconfig.Process("PEERPAY", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"max_single_transfer", cfg.Ledger.MaxSingleTransfer,
		"feed_page_size", cfg.Feed.PageSize,
	)
	return &cfg, nil
}
