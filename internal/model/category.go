package model

import "github.com/shopspring/decimal"

// Category represents a named bucket for transactions, optionally carrying a
// monthly budget limit. A zero BudgetLimit means the category is unmonitored;
// income categories are always unmonitored.
type Category struct {
	Name        string
	Kind        TransactionKind
	BudgetLimit decimal.Decimal
	ID          int64
}

// Budgeted reports whether the category carries an expense budget to check
// against.
func (c Category) Budgeted() bool {
	return c.Kind == KindExpense && c.BudgetLimit.IsPositive()
}
