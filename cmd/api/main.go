package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/boxjoy/docs/swagger"
	"github.com/ghuser/boxjoy/pkg/app"
	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/httpx"
	"github.com/ghuser/boxjoy/pkg/logger"
	"github.com/ghuser/boxjoy/pkg/telemetry"
	collectionApi "github.com/ghuser/boxjoy/services/collection/application/api"
	collectionSvcs "github.com/ghuser/boxjoy/services/collection/application/services"
	collectionSubs "github.com/ghuser/boxjoy/services/collection/application/subscribers"
)

// @title					BoxJoy API
// @version				1.0
// @description			Blind-box collection tracker: series, items, missing slots, stats and photo identification.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
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

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	application, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open infrastructure", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer application.Close()

	svcs, err := collectionSvcs.New(ctx, application)
	if err != nil {
		log.Error("failed to load collection", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	// The channel transport is in-process, so its subscribers run here.
	// With the sql transport they run in cmd/worker.
	subCtx, cancelSubs := context.WithCancel(ctx)
	defer cancelSubs()
	if application.EventBus.Transport() == config.TransportChannel {
		if err := collectionSubs.Register(subCtx, application.EventBus, svcs.StatsCache, log); err != nil {
			log.Error("failed to register subscribers", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	serverCfg := httpx.ServerConfig{
		ServiceName:        cfg.ServiceName,
		IsDevelopment:      cfg.Environment == config.EnvDevelopment,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		HandlerTimeout:     cfg.ClassifyTimeout + 5*time.Second,
	}
	r := httpx.NewRouter(
		serverCfg,
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	checks := httpx.HealthChecks{
		"storage":  application.Store,
		"eventbus": application.EventBus,
	}
	if application.Redis != nil {
		checks["redis"] = application.Redis
	}
	if application.Db != nil {
		checks["database"] = application.Db
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, cfg, svcs)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r, serverCfg.HandlerTimeout)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment,
			"storage", cfg.StorageBackend, "classifier", svcs.Classify.Enabled())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, cfg *config.Config, svcs *collectionSvcs.Services) {
	collectionApi.CollectionRoutes(r, cfg, svcs)
}
