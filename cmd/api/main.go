package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/inventory-service/docs/swagger"
	"github.com/ghuser/inventory-service/migrations"
	"github.com/ghuser/inventory-service/pkg/app"
	"github.com/ghuser/inventory-service/pkg/config"
	"github.com/ghuser/inventory-service/pkg/database"
	"github.com/ghuser/inventory-service/pkg/httpx"
	"github.com/ghuser/inventory-service/pkg/logger"
	"github.com/ghuser/inventory-service/pkg/migrator"
	"github.com/ghuser/inventory-service/pkg/telemetry"
	"github.com/ghuser/inventory-service/services/inventory/application/api"
	"github.com/ghuser/inventory-service/services/inventory/application/handlers"
	inventorysvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// @title			Inventory Service API
// @version		1.0
// @description	CRUD, stock and valuation queries over inventory items.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/
// @schemes		http https
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

	var pool *database.Database
	if cfg.StorageDriver == config.StoragePostgres {
		pool, err = database.NewPool(ctx, cfg.DatabaseURL, database.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
		}, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer pool.Close() //nolint:errcheck
		log.Info("database pool connected")

		if cfg.AutoMigrate {
			if err := migrator.Up(ctx, pool.DB(), migrations.Inventory()); err != nil {
				log.Error("failed to apply migrations", "error", err)
				os.Exit(1) //nolint:gocritic
			}
			log.Info("migrations applied")
		}
	} else {
		log.Warn("using in-memory storage, data is lost on restart")
	}

	appConfig := app.New(cfg, pool, log)
	inventory, err := inventorysvcs.New(appConfig)
	if err != nil {
		log.Error("failed to wire inventory services", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Otel:     otelhttp.NewMiddleware(cfg.ServiceName),
			Logger:   logger.Middleware(log),
		},
	)

	checks := httpx.HealthChecks{Items: inventory.Item}
	if pool != nil {
		checks.Database = pool
	}
	health := httpx.HealthHandler(checks)

	r.Get("/", handlers.NewInfoHandler(cfg.ServiceName, cfg.ServiceVersion).Execute)
	r.Get("/health", health)
	r.Head("/health", health)
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	registerRoutes(r, appConfig, inventory)

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// registerRoutes mounts all service routes.
// Add each new bounded context's route function here.
func registerRoutes(r chi.Router, a *app.Application, inventory *inventorysvcs.Services) {
	api.InventoryRoutes(r, a, inventory)
}
