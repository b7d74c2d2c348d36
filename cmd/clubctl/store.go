package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/clubledger/pkg/config"
	"github.com/dmitrymomot/clubledger/pkg/logger"
	"github.com/dmitrymomot/clubledger/pkg/store"
	"github.com/dmitrymomot/clubledger/pkg/store/memory"
	"github.com/dmitrymomot/clubledger/pkg/store/mongostore"
	"github.com/dmitrymomot/clubledger/pkg/store/pgstore"
)

func openStore(ctx context.Context, cfg Config, log *slog.Logger) (*store.Store, error) {
	switch cfg.StoreDriver {
	case driverMemory:
		if cfg.StoreFixture == "" {
			log.WarnContext(ctx, "memory store starts empty", logger.Component("store"))
			return memory.New(), nil
		}
		db, err := memory.LoadFixture(cfg.StoreFixture)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "fixture loaded",
			logger.Component("store"),
			slog.String("path", cfg.StoreFixture),
			logger.Count(len(db.Clients)),
		)
		return memory.Open(ctx, db)

	case driverMongo:
		mcfg, err := config.Load[mongostore.Config]()
		if err != nil {
			return nil, err
		}
		return mongostore.Open(ctx, mcfg, log)

	case driverPostgres:
		pcfg, err := config.Load[pgstore.Config]()
		if err != nil {
			return nil, err
		}
		return pgstore.Open(ctx, pcfg, log)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StoreDriver)
}
