// Package testutil provides shared helpers for tests that need a real,
// fully initialized ledger store.
package testutil

import (
	"context"
	"testing"

	"github.com/fernwood/pocketbook/internal/service"
	"github.com/fernwood/pocketbook/internal/storage"
)

// SetupTestStore creates an in-memory ledger store with migrations run and
// the default categories seeded. Cleanup is registered automatically.
func SetupTestStore(t *testing.T) service.Storage {
	t.Helper()

	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	if err := store.Init(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to initialize test store: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
