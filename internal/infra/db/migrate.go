package db

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// migrationLockID keys the session advisory lock held while migrating.
const migrationLockID int64 = 0x666c617368

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate applies every *.sql file of files that is not yet recorded in
// schema_migrations, in name order, one transaction per file. Instances
// starting together serialize on an advisory lock.
func Migrate(ctx context.Context, pool *pgxpool.Pool, files fs.FS, logger *slog.Logger) (int, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return 0, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return 0, fmt.Errorf("failed to take migration lock: %w", err)
	}
	defer func() {
		if _, err := conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", migrationLockID); err != nil {
			logger.Warn("failed to release migration lock", slog.String("error", err.Error()))
		}
	}()

	if _, err := conn.Exec(ctx, createMigrationsTable); err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	applied := 0
	for _, name := range names {
		var done bool
		if err := conn.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", name).Scan(&done); err != nil {
			return applied, fmt.Errorf("failed to check migration %s: %w", name, err)
		}
		if done {
			continue
		}

		body, err := fs.ReadFile(files, name)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if err := pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(body)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", name)
			return err
		}); err != nil {
			return applied, fmt.Errorf("failed to apply migration %s: %w", name, err)
		}

		logger.Info("migration applied", slog.String("version", name))
		applied++
	}
	return applied, nil
}
