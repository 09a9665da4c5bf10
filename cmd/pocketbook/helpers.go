package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/fernwood/pocketbook/internal/common"
	"github.com/fernwood/pocketbook/internal/config"
	"github.com/fernwood/pocketbook/internal/service"
	"github.com/fernwood/pocketbook/internal/storage"
)

// initStorage opens the configured database, runs migrations, and seeds the
// default categories.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not open the ledger database at %s", dbPath), err)
	}

	if err := store.Init(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// parseDate parses a YYYY-MM-DD flag value, returning fallback when the flag
// was left empty.
func parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return parsed, nil
}

// isUnseededCategory reports whether name matches none of the stored
// categories. Errors are reported rather than guessed around.
func isUnseededCategory(ctx context.Context, store service.Storage, name string) (bool, error) {
	categories, err := store.Categories(ctx)
	if err != nil {
		return false, err
	}

	for _, cat := range categories {
		if cat.Name == name {
			return false, nil
		}
	}
	return true, nil
}
