// Package migrate drives the franchise schema with goose. Migrations are
// plain SQL files under pkg/migrate/migrations; cmd/migrate runs them
// everywhere, and the api binary may replay them on boot in dev.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/pressly/goose/v3"
)

// DefaultDir is where the SQL migration files live, relative to the repo root.
const DefaultDir = "pkg/migrate/migrations"

const dialect = "postgres"

func prepare(db *sql.DB, dir string) error {
	if db == nil {
		return fmt.Errorf("migrate: nil db")
	}
	if dir == "" {
		return fmt.Errorf("migrate: empty migrations dir")
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrate: set dialect %s: %w", dialect, err)
	}
	return nil
}

// Run executes one goose command (up, down, status, ...) against the
// connected database.
func Run(ctx context.Context, db *sql.DB, dir string, command string, args ...string) error {
	if err := prepare(db, dir); err != nil {
		return err
	}
	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("migrate: goose %s: %w", command, err)
	}
	return nil
}

// MigrateToVersion walks the schema to the exact target version, going up or
// down depending on where the database currently sits. A target equal to the
// current version is a no-op.
func MigrateToVersion(ctx context.Context, db *sql.DB, dir string, targetVersion string) error {
	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("migrate: version %q is not a YYYYMMDDHHMMSS stamp: %w", targetVersion, err)
	}
	if err := prepare(db, dir); err != nil {
		return err
	}

	current, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("migrate: read db version: %w", err)
	}

	switch {
	case current == target:
		return nil
	case current < target:
		err = goose.UpToContext(ctx, db, dir, target)
	default:
		err = goose.DownToContext(ctx, db, dir, target)
	}
	if err != nil {
		return fmt.Errorf("migrate: walk %d -> %d: %w", current, target, err)
	}
	return nil
}
