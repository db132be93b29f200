package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

// goose keeps its base FS and dialect in package state.
var mu sync.Mutex

// Up applies all pending goose migrations found at the root of files.
func Up(ctx context.Context, db *sql.DB, files fs.FS) error {
	return Run(ctx, db, files, "up")
}

// Run executes a goose command ("up", "down", "status", "version", "reset",
// ...) against db using the migrations found at the root of files.
func Run(ctx context.Context, db *sql.DB, files fs.FS, command string, args ...string) error {
	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(files)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("failed to run migrations %q: %w", command, err)
	}
	return nil
}
