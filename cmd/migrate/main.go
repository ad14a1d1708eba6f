package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/boxjoy/migrations/collection"
	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/database"
	"github.com/ghuser/boxjoy/pkg/logger"
	"github.com/ghuser/boxjoy/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	ctx := context.Background()

	db, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrator.RunMigrations(ctx, db.SQL(), collection.FS, log); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("migrations complete")
}
