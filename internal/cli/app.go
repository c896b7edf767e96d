package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/SscSPs/pos_ledger/internal/middleware"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
	"github.com/SscSPs/pos_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/pos_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/pos_ledger/pkg/database"
)

// app holds everything a command needs to talk to the ledger.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
	closers  []func()
}

// openApp loads config, connects to Postgres and builds the service container.
// The returned context carries the logger so services log through it.
func openApp(ctx context.Context) (*app, context.Context, error) {
	logger := slog.Default()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, ctx, fmt.Errorf("loading config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
	if err != nil {
		return nil, ctx, fmt.Errorf("connecting to database: %w", err)
	}

	a := &app{cfg: cfg, logger: logger, pool: pool}
	a.closers = append(a.closers, pool.Close)

	valuator, err := a.inventoryValuator()
	if err != nil {
		a.Close()
		return nil, ctx, err
	}

	repos := pgsql.NewRepositoryProvider(pool, valuator)
	a.services = services.NewServiceContainer(cfg, repos)

	return a, middleware.WithLogger(ctx, logger), nil
}

func (a *app) inventoryValuator() (portsrepo.InventoryValuator, error) {
	switch a.cfg.InventorySource {
	case config.InventorySourceSQLite:
		v, err := sqlite.Open(a.cfg.InventorySQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening POS inventory database: %w", err)
		}
		a.closers = append(a.closers, func() {
			if err := v.Close(); err != nil {
				a.logger.Warn("Error closing inventory database", slog.String("error", err.Error()))
			}
		})
		a.logger.Info("Valuing inventory from POS database", slog.String("path", a.cfg.InventorySQLitePath))
		return v, nil
	case config.InventorySourceNone:
		return nil, nil
	}
	return pgsql.NewPgxInventoryValuator(a.pool), nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
