// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction adds to or draws from the ledger.
type TransactionKind string

const (
	// KindIncome marks money coming in.
	KindIncome TransactionKind = "income"
	// KindExpense marks money going out.
	KindExpense TransactionKind = "expense"
)

// ParseTransactionKind converts a string to a TransactionKind.
// It returns an error for anything other than "income" or "expense".
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	default:
		return "", fmt.Errorf("invalid transaction kind %q (want income or expense)", s)
	}
}

// Transaction represents a single recorded money movement, either income or expense.
//
// Category is a free-text label. It usually names a seeded Category, but the
// store does not enforce that: a transaction under an unknown category still
// counts toward monthly and category totals, it just never shows up in budget
// status.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	Category    string
	Description string
	Kind        TransactionKind
	Amount      decimal.Decimal
	ID          int64
}

// KindTotal is the per-kind aggregate for one calendar month.
type KindTotal struct {
	Kind  TransactionKind
	Total decimal.Decimal
	Count int
}

// CategorySpend is the expense aggregate for one category over a lookback window.
type CategorySpend struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// BudgetUsage pairs a budgeted expense category with what has been spent
// against it since the start of the month. Spent is zero when no transactions
// matched.
type BudgetUsage struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
}
