package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// dateLayout is how calendar dates are persisted and compared. Transactions
// carry a date with no time-of-day, so everything date-shaped goes through
// this format.
const dateLayout = "2006-01-02"

// Store implements the service.Storage interface using SQLite.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open creates a new SQLite-backed store at the given path, creating the
// parent directory if needed. Callers should follow up with Init before
// issuing any other operation.
func Open(dbPath string) (*Store, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single user, single process; SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Init prepares the store for use: it runs any pending schema migrations and
// seeds the default categories. Both steps are idempotent, so running Init on
// every open is safe and repeat calls are not an error.
func (s *Store) Init(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := s.seedCategories(ctx); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
