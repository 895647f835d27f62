// Package commands implements the peerpay demo CLI: a thin driver around
// the in-process ledger core for inspecting balances and feeds and for
// recording payments against a seed snapshot.
package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/amirasaad/peerpay/internal/fixtures"
	"github.com/amirasaad/peerpay/pkg/app"
	"github.com/amirasaad/peerpay/pkg/config"
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/dto"
	"github.com/spf13/cobra"
)

var seedPath string

var rootCmd = &cobra.Command{
	Use:   "peerpay",
	Short: "Peer-to-peer payments ledger demo",
	Long: `peerpay drives the in-process transaction ledger from the command line.

State lives in a seed snapshot file; commands load it, run one ledger
operation, and write the snapshot back when they mutate anything.

Examples:
  peerpay seed                      # write a fresh demo snapshot
  peerpay balance edgar_j           # show a user's balance
  peerpay pay edgar_j arely_k 2500  # record a payment (cents)
  peerpay feed edgar_j --scope contacts`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "Seed snapshot file (defaults to PEERPAY_SEED_PATH)")
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// loadApp builds the core from configuration and the seed snapshot file.
// A missing snapshot file falls back to the built-in demo fixture.
func loadApp() (*app.App, error) {
	logger := newLogger()
	cfg, err := config.LoadAppConfig(logger)
	if err != nil {
		return nil, err
	}
	if seedPath == "" {
		seedPath = cfg.Seed.Path
	}

	var snapshot *dto.Snapshot
	raw, err := os.ReadFile(seedPath)
	switch {
	case err == nil:
		snapshot = &dto.Snapshot{}
		if err := json.Unmarshal(raw, snapshot); err != nil {
			return nil, fmt.Errorf("parse seed snapshot %s: %w", seedPath, err)
		}
	case os.IsNotExist(err):
		snapshot = fixtures.Seed()
	default:
		return nil, err
	}
	return app.NewSeeded(cfg, logger, snapshot), nil
}

func saveSnapshot(a *app.App) error {
	raw, err := json.MarshalIndent(a.Store.Snapshot(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(seedPath, raw, 0o644)
}

func findUser(a *app.App, username string) (ledger.User, error) {
	for _, u := range a.Store.Users().List() {
		if u.Username == username {
			return u, nil
		}
	}
	return ledger.User{}, fmt.Errorf("unknown user %q", username)
}
