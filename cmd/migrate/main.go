// Command migrate applies or inspects the goose migrations for every bounded context.
//
//	migrate            # same as "migrate up"
//	migrate status
//	migrate down
//	migrate up-to 1
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/inventory-service/migrations"
	"github.com/ghuser/inventory-service/pkg/config"
	"github.com/ghuser/inventory-service/pkg/database"
	"github.com/ghuser/inventory-service/pkg/logger"
	"github.com/ghuser/inventory-service/pkg/migrator"
)

func main() {
	// conf.Parse reads os.Args; keep only the program name so goose
	// commands are not mistaken for config flags.
	args := os.Args[1:]
	os.Args = os.Args[:1]

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	command := "up"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, database.PoolConfig{MaxOpenConns: 1}, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close() //nolint:errcheck

	if err := migrator.Run(ctx, pool.DB(), migrations.Inventory(), command, args...); err != nil {
		log.Error("migration failed", "command", command, "error", err)
		os.Exit(1) //nolint:gocritic // intentional: deferred close is best-effort
	}
	log.Info("migration finished", "command", command)
}
