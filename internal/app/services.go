package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/petcare-basedata/internal/adapter/memory"
	"github.com/heartmarshall/petcare-basedata/internal/adapter/postgres"
	"github.com/heartmarshall/petcare-basedata/internal/adapter/postgres/audit"
	pgbasedata "github.com/heartmarshall/petcare-basedata/internal/adapter/postgres/basedata"
	pgdictionary "github.com/heartmarshall/petcare-basedata/internal/adapter/postgres/dictionary"
	"github.com/heartmarshall/petcare-basedata/internal/adapter/postgres/snapshot"
	"github.com/heartmarshall/petcare-basedata/internal/config"
	"github.com/heartmarshall/petcare-basedata/internal/service/basedata"
	"github.com/heartmarshall/petcare-basedata/internal/service/dictionary"
)

// Pinger reports whether the store behind the services is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services is the wired service layer plus the handle of the store behind it.
type Services struct {
	BaseData   *basedata.Service
	Dictionary *dictionary.Service
	Pinger     Pinger
	Close      func()
}

// OpenServices opens the configured store and builds the services on top of
// it. Callers must call Close when done.
func OpenServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		return openMemory(ctx, cfg, logger)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func baseDataOptions(cfg config.BaseDataConfig) basedata.Options {
	return basedata.Options{RollbackMode: cfg.Mode(), Guard: cfg.Guard()}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	tx := postgres.NewTxManager(pool)

	return &Services{
		BaseData: basedata.NewService(logger,
			pgbasedata.New(pool), snapshot.New(pool), audit.New(pool), tx,
			baseDataOptions(cfg.BaseData)),
		Dictionary: dictionary.NewService(logger, pgdictionary.New(pool), tx, cfg.Dictionary),
		Pinger:     pool,
		Close:      pool.Close,
	}, nil
}

// openMemory serves from process memory seeded with the common
// dictionaries. Data is lost on exit.
func openMemory(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	store := memory.New()
	if err := store.SeedCommonDictionaries(ctx); err != nil {
		return nil, fmt.Errorf("seed dictionaries: %w", err)
	}
	logger.Warn("using in-memory store; data is not persisted")

	return &Services{
		BaseData: basedata.NewService(logger,
			store.BaseData(), store.Versions(), store.Logs(), store,
			baseDataOptions(cfg.BaseData)),
		Dictionary: dictionary.NewService(logger, store.Dictionary(), store, cfg.Dictionary),
		Pinger:     store,
		Close:      func() {},
	}, nil
}
