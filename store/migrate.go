package store

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsTable = "schema_migrations"

// dropOrder lists every table with children before their parents.
var dropOrder = []string{
	"favorite_outfits",
	"favorites",
	"outfit_items",
	"outfits",
	"designs",
	"clothing",
	"designers",
	"users",
	migrationsTable,
}

// migrator builds a migrate instance over the store's connection.
// The instance is never closed: closing it would close the shared *sql.DB.
func (s *Store) migrator() (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(s.db.DB, &sqlite3.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// Initialize applies any pending migrations. Calling it on an up-to-date
// database changes nothing.
func (s *Store) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.migrator()
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SchemaVersion returns the applied schema version, 0 for an empty database
func (s *Store) SchemaVersion(ctx context.Context) (uint, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m, err := s.migrator()
	if err != nil {
		return 0, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}

// Migrate moves the schema from its current version to version, running up
// or down migrations as needed. Data is preserved by the up migrations.
func (s *Store) Migrate(ctx context.Context, version uint) error {
	from, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	m, err := s.migrator()
	if err != nil {
		return err
	}

	if err := m.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate from %d to %d: %w", from, version, err)
	}

	s.log.Info("Schema migrated", zap.Uint("from", from), zap.Uint("to", version))
	return nil
}

// Rebuild drops every table, children first, and recreates the schema.
// All data is lost.
func (s *Store) Rebuild(ctx context.Context) error {
	err := s.withTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, table := range dropOrder {
			if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
				return fmt.Errorf("failed to drop %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Warn("Schema dropped", zap.Strings("tables", dropOrder))
	return s.Initialize(ctx)
}
