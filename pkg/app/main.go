package app

import (
	"github.com/ghuser/inventory-service/pkg/config"
	"github.com/ghuser/inventory-service/pkg/database"
	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every bounded context's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item updated", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config *config.Config
	Db     *database.Database // nil when STORAGE_DRIVER=memory
	Logger logger.Logger
	Errors *errhttp.Writer
}

// New assembles an Application. db may be nil.
func New(cfg *config.Config, db *database.Database, log logger.Logger) *Application {
	return &Application{
		Config: cfg,
		Db:     db,
		Logger: log,
		Errors: errhttp.NewWriter(log, cfg.IsProduction()),
	}
}
