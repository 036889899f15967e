// Package migrations embeds the SQL schema of the calendar database and applies it with goose.
// Every service applies it on startup. A Postgres advisory lock serializes concurrent runs,
// and already applied versions are skipped, so services may start in any order.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
	log "github.com/sirupsen/logrus"
)

// Dir is the directory of the migration files inside Migrations.
const Dir = "sql"

//go:embed sql/*.sql
var Migrations embed.FS

// migrateUp is replaced in tests.
var migrateUp = func(ctx context.Context, db *sql.DB, fsys fs.FS) (int, error) {
	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		return 0, err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys, goose.WithSessionLocker(locker))
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	return len(results), err
}

// RunMigrations applies every pending migration through a database/sql handle borrowed from pool.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return Up(ctx, db)
}

// Up applies the embedded migrations to db.
func Up(ctx context.Context, db *sql.DB) error {
	log.Info("Running database migrations")

	fsys, err := fs.Sub(Migrations, Dir)
	if err != nil {
		return fmt.Errorf("error opening migrations: %w", err)
	}

	applied, err := migrateUp(ctx, db, fsys)
	if err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	log.Infof("Database migrations applied (%d new)", applied)
	return nil
}
