// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/fernwood/pocketbook/internal/model"
)

// Ledger is the read side of the persistence layer: the aggregate queries the
// report engine derives its views from.
type Ledger interface {
	// MonthlyTotals returns sum and count grouped by kind for the calendar
	// month containing the given instant.
	MonthlyTotals(ctx context.Context, month time.Time) ([]model.KindTotal, error)
	// CategorySpending returns expense totals grouped by category for
	// transactions dated on or after since, ordered by total descending.
	CategorySpending(ctx context.Context, since time.Time) ([]model.CategorySpend, error)
	// BudgetUsage returns, for every budgeted expense category, the amount
	// spent against it on or after monthStart, ordered by spent/limit
	// descending.
	BudgetUsage(ctx context.Context, monthStart time.Time) ([]model.BudgetUsage, error)
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	Ledger

	// Init idempotently creates the schema and seeds the default categories.
	Init(ctx context.Context) error
	// AddTransaction inserts one transaction and returns it with its
	// generated ID and creation timestamp filled in.
	AddTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error)
	// Categories returns all categories ordered by name.
	Categories(ctx context.Context) ([]model.Category, error)
	Close() error
}
