package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/001_init_schema.sql
var migrationSQL string

// Execer is the subset of *pgxpool.Pool needed to run migrations
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RunMigrations creates the like ledger schema if it does not exist yet.
// The schema file is idempotent so it is safe to run on every startup.
func RunMigrations(ctx context.Context, db Execer) error {
	log.Info().Msg("Running database migrations...")

	if _, err := db.Exec(ctx, migrationSQL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("[OK] Database migrations completed successfully")
	return nil
}
