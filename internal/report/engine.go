// Package report derives user-facing financial views from ledger aggregates.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fernwood/pocketbook/internal/model"
	"github.com/fernwood/pocketbook/internal/service"
)

// DefaultLookbackDays is the spending report window used when the caller does
// not ask for a specific one.
const DefaultLookbackDays = 30

// Status classifies how a category sits against its monthly budget.
type Status string

// Budget status constants.
const (
	StatusOK         Status = "OK"
	StatusNearLimit  Status = "NEAR LIMIT"
	StatusOverBudget Status = "OVER BUDGET"
)

// Summary is the income/expense picture for one calendar month. Balance is
// income minus expense; SavingsRate is the balance as a percentage of income,
// zero whenever there is no income.
type Summary struct {
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Balance     decimal.Decimal
	SavingsRate decimal.Decimal
}

// BudgetStatus is one budgeted category's utilization for the current month.
type BudgetStatus struct {
	Category   string
	Status     Status
	Budget     decimal.Decimal
	Spent      decimal.Decimal
	Percentage decimal.Decimal
}

// Engine computes reports from ledger queries. It holds no state of its own:
// every call reads fresh from the ledger at an explicit as-of instant, so two
// calls straddling a write may disagree, and that's fine for a single-user
// tool.
type Engine struct {
	ledger service.Ledger
}

// New creates a report engine over the given ledger.
func New(ledger service.Ledger) *Engine {
	return &Engine{ledger: ledger}
}

var oneHundred = decimal.NewFromInt(100)

// MonthlySummary reports income, expense, balance, and savings rate for the
// calendar month containing asOf. Kinds with no transactions that month
// contribute zero.
func (e *Engine) MonthlySummary(ctx context.Context, asOf time.Time) (Summary, error) {
	totals, err := e.ledger.MonthlyTotals(ctx, asOf)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get monthly totals: %w", err)
	}

	var summary Summary
	for _, kt := range totals {
		switch kt.Kind {
		case model.KindIncome:
			summary.Income = kt.Total
		case model.KindExpense:
			summary.Expense = kt.Total
		}
	}

	summary.Balance = summary.Income.Sub(summary.Expense)
	if summary.Income.IsPositive() {
		summary.SavingsRate = summary.Balance.Div(summary.Income).Mul(oneHundred)
	}

	return summary, nil
}

// CategorySpending reports expense totals by category for the lookback window
// ending at asOf, most expensive category first. A non-positive days falls
// back to DefaultLookbackDays.
func (e *Engine) CategorySpending(ctx context.Context, asOf time.Time, days int) ([]model.CategorySpend, error) {
	if days <= 0 {
		days = DefaultLookbackDays
	}

	since := asOf.AddDate(0, 0, -days)
	spending, err := e.ledger.CategorySpending(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get category spending: %w", err)
	}

	return spending, nil
}

// BudgetStatus reports utilization for every budgeted category in asOf's
// month, most utilized first. The ledger only returns categories with a
// positive limit, so the percentage is always defined.
func (e *Engine) BudgetStatus(ctx context.Context, asOf time.Time) ([]BudgetStatus, error) {
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())

	usage, err := e.ledger.BudgetUsage(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget usage: %w", err)
	}

	statuses := make([]BudgetStatus, 0, len(usage))
	for _, u := range usage {
		pct := u.Spent.Div(u.Limit).Mul(oneHundred)
		statuses = append(statuses, BudgetStatus{
			Category:   u.Category,
			Budget:     u.Limit,
			Spent:      u.Spent,
			Percentage: pct,
			Status:     classify(pct),
		})
	}

	return statuses, nil
}

// classify maps a utilization percentage to a status: over 100% is over
// budget, over 80% is near the limit, anything else is fine.
func classify(percentage decimal.Decimal) Status {
	switch {
	case percentage.GreaterThan(oneHundred):
		return StatusOverBudget
	case percentage.GreaterThan(decimal.NewFromInt(80)):
		return StatusNearLimit
	default:
		return StatusOK
	}
}
