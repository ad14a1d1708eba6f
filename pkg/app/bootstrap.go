package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/boxjoy/migrations/collection"
	"github.com/ghuser/boxjoy/pkg/cache"
	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/database"
	"github.com/ghuser/boxjoy/pkg/events"
	"github.com/ghuser/boxjoy/pkg/kvstore"
	"github.com/ghuser/boxjoy/pkg/logger"
	"github.com/ghuser/boxjoy/pkg/migrator"
)

// Open connects the infrastructure selected by cfg and returns the Application.
//
//   - PostgreSQL is connected when STORAGE_BACKEND=postgres or EVENT_TRANSPORT=sql;
//     the kv_store migration runs for the postgres backend.
//   - Redis is required for STORAGE_BACKEND=redis and optional otherwise: an
//     unreachable server is logged and the stats snapshot is skipped.
//
// On error every connection opened so far is closed.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (a *Application, err error) {
	a = &Application{Config: cfg, Logger: log}
	defer func() {
		if err != nil {
			a.Close()
			a = nil
		}
	}()

	if cfg.StorageBackend == config.StoragePostgres || cfg.EventTransport == config.TransportSQL {
		a.Db, err = database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return a, fmt.Errorf("connect database: %w", err)
		}
		log.Info("database pool connected")
	}

	switch {
	case cfg.StorageBackend == config.StorageRedis:
		a.Redis, err = cache.NewRedisClient(ctx, cfg)
		if err != nil {
			return a, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("redis connected")
	case cfg.RedisURL != "":
		rc, rerr := cache.NewRedisClient(ctx, cfg)
		if rerr != nil {
			log.Warn("redis unavailable, continuing without stats snapshot", "error", rerr)
		} else {
			a.Redis = rc
			log.Info("redis connected")
		}
	}

	a.Store, err = openStore(ctx, cfg, a, log)
	if err != nil {
		return a, err
	}

	a.EventBus, err = events.New(cfg, a.sqlDB(), log)
	if err != nil {
		return a, fmt.Errorf("setup event bus: %w", err)
	}
	log.Info("event bus ready", "transport", a.EventBus.Transport())

	return a, nil
}

func openStore(ctx context.Context, cfg *config.Config, a *Application, log logger.Logger) (kvstore.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite, "":
		store, err := kvstore.OpenSQLite(ctx, cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", "backend", config.StorageSQLite, "path", store.Path())
		return store, nil
	case config.StoragePostgres:
		if err := migrator.RunMigrations(ctx, a.Db.SQL(), collection.FS, log); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		log.Info("storage ready", "backend", config.StoragePostgres)
		return kvstore.NewPostgresStore(a.Db), nil
	case config.StorageRedis:
		log.Info("storage ready", "backend", config.StorageRedis)
		return kvstore.NewRedisStore(a.Redis, cfg.ServiceName), nil
	case config.StorageMemory:
		log.Warn("storage ready", "backend", config.StorageMemory, "note", "collection is lost on exit")
		return kvstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func (a *Application) sqlDB() *sql.DB {
	if a.Db == nil {
		return nil
	}
	return a.Db.SQL()
}

// Close releases every connection in reverse order of opening.
func (a *Application) Close() {
	if a == nil {
		return
	}
	var errs []error
	if a.EventBus != nil {
		errs = append(errs, a.EventBus.Close())
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.Db != nil {
		a.Db.Close()
	}
	if err := errors.Join(errs...); err != nil {
		a.Logger.Warn("error during shutdown", "error", err)
	}
}
