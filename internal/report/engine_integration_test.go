package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood/pocketbook/internal/model"
	"github.com/fernwood/pocketbook/internal/service"
	"github.com/fernwood/pocketbook/internal/testutil"
)

func addTransaction(t *testing.T, store service.Storage, kind model.TransactionKind, amount int64, category string, date time.Time) {
	t.Helper()
	_, err := store.AddTransaction(context.Background(), model.Transaction{
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Kind:     kind,
		Date:     date,
	})
	require.NoError(t, err)
}

func TestEngineWithStore_MonthlySummary(t *testing.T) {
	store := testutil.SetupTestStore(t)
	engine := New(store)

	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	addTransaction(t, store, model.KindIncome, 1000, "Salary", asOf)
	addTransaction(t, store, model.KindExpense, 400, "Utilities", asOf)

	summary, err := engine.MonthlySummary(context.Background(), asOf)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1000).Equal(summary.Income), "income = %s", summary.Income)
	assert.True(t, decimal.NewFromInt(400).Equal(summary.Expense), "expense = %s", summary.Expense)
	assert.True(t, decimal.NewFromInt(600).Equal(summary.Balance), "balance = %s", summary.Balance)
	assert.True(t, decimal.NewFromInt(60).Equal(summary.SavingsRate), "savings rate = %s", summary.SavingsRate)
}

func TestEngineWithStore_BudgetStatusOverBudget(t *testing.T) {
	store := testutil.SetupTestStore(t)
	engine := New(store)

	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	addTransaction(t, store, model.KindExpense, 600, "Food", asOf)

	statuses, err := engine.BudgetStatus(context.Background(), asOf)
	require.NoError(t, err)
	require.Len(t, statuses, 7, "every budgeted expense category reports")

	// Food carries the only spend, so it leads the ordering.
	food := statuses[0]
	assert.Equal(t, "Food", food.Category)
	assert.True(t, decimal.NewFromInt(500).Equal(food.Budget), "budget = %s", food.Budget)
	assert.True(t, decimal.NewFromInt(600).Equal(food.Spent), "spent = %s", food.Spent)
	assert.True(t, decimal.NewFromInt(120).Equal(food.Percentage), "percentage = %s", food.Percentage)
	assert.Equal(t, StatusOverBudget, food.Status)

	for _, status := range statuses[1:] {
		assert.Equal(t, StatusOK, status.Status, "untouched category %s", status.Category)
		assert.True(t, status.Spent.IsZero(), "untouched category %s spent = %s", status.Category, status.Spent)
	}
}

func TestEngineWithStore_SpendingLookback(t *testing.T) {
	store := testutil.SetupTestStore(t)
	engine := New(store)

	asOf := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)
	addTransaction(t, store, model.KindExpense, 75, "Entertainment", asOf.AddDate(0, 0, -40))
	addTransaction(t, store, model.KindExpense, 120, "Food", asOf.AddDate(0, 0, -5))

	spending, err := engine.CategorySpending(context.Background(), asOf, 30)
	require.NoError(t, err)

	require.Len(t, spending, 1, "the 40-day-old expense is outside the window")
	assert.Equal(t, "Food", spending[0].Category)
	assert.True(t, decimal.NewFromInt(120).Equal(spending[0].Total), "total = %s", spending[0].Total)
}
