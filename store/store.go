// Package store is the wardrobe persistence layer: users, designers, designs,
// clothing items, outfits and favourites in a single embedded SQLite file.
//
// Repository methods never return raw driver errors. Failures are logged and
// reported through the sentinel errors in errors.go, a false boolean, or an
// empty result for lookups that find nothing.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	// Registers the "sqlite3" driver
	_ "github.com/mattn/go-sqlite3"
)

// Config holds store configuration
type Config struct {
	// Path of the database file; created on first open.
	Path string
	// BcryptCost for user and designer passwords. Defaults to bcrypt.DefaultCost.
	BcryptCost int
	// BusyTimeout is how long a writer waits on a locked database. Defaults to 5s.
	BusyTimeout time.Duration
	Logger      *zap.Logger
	// Metrics is optional; nil disables instrumentation.
	Metrics *Metrics
}

// Store is the wardrobe data-access layer. It is safe for concurrent use;
// all calls share one connection, so statements are serialized.
type Store struct {
	db      *sqlx.DB
	cost    int
	log     *zap.Logger
	metrics *Metrics
	now     func() time.Time
}

// Open opens (or creates) the database at cfg.Path and brings the schema up
// to the latest version.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range", cfg.BcryptCost)
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=%d&_txlock=immediate",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single shared connection so connection-level PRAGMAs apply to every statement.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{
		db:      db,
		cost:    cfg.BcryptCost,
		log:     cfg.Logger.Named("store"),
		metrics: cfg.Metrics,
		now:     time.Now,
	}

	if err := s.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	s.log.Info("Database opened", zap.String("path", cfg.Path))
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HealthCheck verifies the database answers queries
func (s *Store) HealthCheck(ctx context.Context) error {
	var one int
	if err := s.db.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// Backup writes a consistent copy of the database to path using VACUUM INTO.
// The target file must not exist.
func (s *Store) Backup(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("backup path is required")
	}
	if _, err := s.db.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return fmt.Errorf("failed to back up database: %w", err)
	}
	s.log.Info("Database backed up", zap.String("target", path))
	return nil
}

// withTx runs fn in a transaction that commits when fn returns nil and rolls
// back otherwise. Caller cancellation does not interrupt a started transaction.
func (s *Store) withTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	ctx = context.WithoutCancel(ctx)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.log.Error("Rollback failed", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

// fail logs the underlying cause of a failed repository call and returns the
// matching sentinel error.
func (s *Store) fail(op string, err error, fields ...zap.Field) error {
	sentinel := classify(err)
	fields = append([]zap.Field{zap.String("operation", op), zap.Error(err)}, fields...)
	if sentinel == ErrDuplicate {
		s.log.Warn("Duplicate key", fields...)
	} else {
		s.log.Error("Store operation failed", fields...)
	}
	return sentinel
}

// track records the duration and outcome of a repository call
func (s *Store) track(op string, start time.Time, err *error) {
	s.metrics.observe(op, time.Since(start), *err)
}

// rowsAffected reads the affected row count of a write
func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// insertedID reads the generated key of an insert
func insertedID(res sql.Result) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}
