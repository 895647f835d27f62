// Package app wires the ledger core together: the entity store, the event
// bus and the services, constructed from one configuration.
package app

import (
	"log/slog"

	"github.com/amirasaad/peerpay/infra/eventbus"
	"github.com/amirasaad/peerpay/infra/repository/memory"
	"github.com/amirasaad/peerpay/pkg/config"
	"github.com/amirasaad/peerpay/pkg/dto"
	busiface "github.com/amirasaad/peerpay/pkg/eventbus"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/amirasaad/peerpay/pkg/service/balance"
	"github.com/amirasaad/peerpay/pkg/service/feed"
	"github.com/amirasaad/peerpay/pkg/service/notification"
	"github.com/amirasaad/peerpay/pkg/service/social"
	"github.com/amirasaad/peerpay/pkg/service/transaction"
)

// App holds the assembled ledger core.
type App struct {
	Config *config.AppConfig
	Store  repository.Store
	Bus    busiface.Bus
	Logger *slog.Logger

	Balance       *balance.Service
	Transactions  *transaction.Service
	Feed          *feed.Service
	Social        *social.Service
	Notifications *notification.Service
}

// New assembles the core over an empty store. Call Reseed (or pass a seed
// snapshot via NewSeeded) before serving reads.
func New(cfg *config.AppConfig, logger *slog.Logger) *App {
	store := memory.New()
	bus := eventbus.NewWithMemory(logger)

	bal := balance.NewService(store, cfg.Ledger, logger)
	return &App{
		Config:        cfg,
		Store:         store,
		Bus:           bus,
		Logger:        logger,
		Balance:       bal,
		Transactions:  transaction.NewService(store, bal, bus, logger),
		Feed:          feed.NewService(store, cfg.Feed, logger),
		Social:        social.NewService(store, bus, logger),
		Notifications: notification.NewService(store, logger),
	}
}

// NewSeeded assembles the core and loads the snapshot.
func NewSeeded(cfg *config.AppConfig, logger *slog.Logger, snapshot *dto.Snapshot) *App {
	a := New(cfg, logger)
	a.Store.Reseed(snapshot)
	return a
}
