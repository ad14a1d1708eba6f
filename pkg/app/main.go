package app

import (
	"github.com/ghuser/boxjoy/pkg/cache"
	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/database"
	"github.com/ghuser/boxjoy/pkg/events"
	"github.com/ghuser/boxjoy/pkg/kvstore"
	"github.com/ghuser/boxjoy/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	Store    kvstore.Store      // holds the collection blobs
	Db       *database.Database // nil unless the postgres backend or sql transport is used
	Redis    *cache.RedisClient // nil when Redis is not configured or unreachable
	EventBus *events.EventBus
}
