// Package testutils provides shared helpers for service tests: an assembled
// app over the canonical seed snapshot and lookups into it.
package testutils

import (
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/peerpay/internal/fixtures"
	"github.com/amirasaad/peerpay/pkg/app"
	"github.com/amirasaad/peerpay/pkg/config"
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/stretchr/testify/require"
)

// TestConfig returns the configuration used by service tests.
func TestConfig() *config.AppConfig {
	return &config.AppConfig{
		Ledger: config.LedgerConfig{MaxSingleTransfer: 5000000},
		Feed:   config.FeedConfig{PageSize: 10},
	}
}

// NewSeededApp assembles the ledger core over a fresh copy of the canonical
// seed snapshot.
func NewSeededApp(t *testing.T) *app.App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.NewSeeded(TestConfig(), logger, fixtures.Seed())
}

// UserAt returns the i-th seeded user in insertion order.
func UserAt(t *testing.T, a *app.App, i int) ledger.User {
	t.Helper()
	users := a.Store.Users().List()
	require.Greater(t, len(users), i)
	return users[i]
}

// AccountOf returns the user's first linked bank account.
func AccountOf(t *testing.T, a *app.App, u ledger.User) ledger.BankAccount {
	t.Helper()
	accounts := a.Store.BankAccounts().ByUserID(u.ID)
	require.NotEmpty(t, accounts)
	return accounts[0]
}
