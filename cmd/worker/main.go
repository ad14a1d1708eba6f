package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/boxjoy/pkg/app"
	"github.com/ghuser/boxjoy/pkg/cache"
	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/logger"
	"github.com/ghuser/boxjoy/pkg/telemetry"
	collectionSubs "github.com/ghuser/boxjoy/services/collection/application/subscribers"
)

// The worker consumes collection.changed from the SQL transport and maintains the
// Redis stats snapshot. With the channel transport the API runs the subscribers
// itself and this process has nothing to consume.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	if cfg.EventTransport != config.TransportSQL {
		log.Error("worker requires EVENT_TRANSPORT=sql", "transport", cfg.EventTransport)
		os.Exit(1)
	}

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	application, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open infrastructure", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer application.Close()

	var stats *cache.StatsCache
	if application.Redis != nil {
		stats = cache.NewStatsCache(application.Redis, cfg.ServiceName)
	}

	subCtx, cancelSubs := context.WithCancel(ctx)
	if err := collectionSubs.Register(subCtx, application.EventBus, stats, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelSubs()

	// EventBus.Close() (via application.Close) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}
