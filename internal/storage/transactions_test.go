package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fernwood/pocketbook/internal/model"
)

func TestStore_AddTransaction(t *testing.T) {
	tests := []struct {
		name    string
		txn     model.Transaction
		wantErr bool
	}{
		{
			name: "valid expense",
			txn: model.Transaction{
				Amount:      decimal.NewFromFloat(12.30),
				Category:    "Food",
				Description: "groceries",
				Kind:        model.KindExpense,
				Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			wantErr: false,
		},
		{
			name: "valid income",
			txn: model.Transaction{
				Amount:   decimal.NewFromInt(3000),
				Category: "Salary",
				Kind:     model.KindIncome,
				Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr: false,
		},
		{
			name: "unseeded category accepted",
			txn: model.Transaction{
				Amount:   decimal.NewFromInt(25),
				Category: "Crypto",
				Kind:     model.KindExpense,
				Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			wantErr: false,
		},
		{
			name: "negative amount accepted",
			txn: model.Transaction{
				Amount:   decimal.NewFromInt(-50),
				Category: "Food",
				Kind:     model.KindExpense,
				Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			wantErr: false,
		},
		{
			name: "invalid kind rejected by check constraint",
			txn: model.Transaction{
				Amount:   decimal.NewFromInt(10),
				Category: "Food",
				Kind:     model.TransactionKind("transfer"),
				Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			wantErr: true,
		},
		{
			name: "empty kind rejected by check constraint",
			txn: model.Transaction{
				Amount:   decimal.NewFromInt(10),
				Category: "Food",
				Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStorage(t)
			defer cleanup()

			got, err := store.AddTransaction(context.Background(), tt.txn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if got.ID <= 0 {
				t.Errorf("Expected a generated positive ID, got %d", got.ID)
			}
			if got.CreatedAt.IsZero() {
				t.Error("Expected CreatedAt to be stamped at insert")
			}
			if !got.Amount.Equal(tt.txn.Amount) {
				t.Errorf("Amount changed on insert: want %s, got %s", tt.txn.Amount, got.Amount)
			}
		})
	}
}

func TestStore_AddTransactionMonotonicIDs(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	first := mustAddTransaction(t, store, model.KindExpense, 10, "Food", date)
	second := mustAddTransaction(t, store, model.KindExpense, 20, "Food", date)

	if second.ID <= first.ID {
		t.Errorf("Expected IDs to grow monotonically, got %d then %d", first.ID, second.ID)
	}
}

func TestStore_AddTransactionDefaultsDate(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.AddTransaction(ctx, model.Transaction{
		Amount:   decimal.NewFromInt(15),
		Category: "Food",
		Kind:     model.KindExpense,
	})
	if err != nil {
		t.Fatalf("AddTransaction() with zero date failed: %v", err)
	}

	// A zero date means today, so the row must land in the current month.
	totals, err := store.MonthlyTotals(ctx, time.Now())
	if err != nil {
		t.Fatalf("MonthlyTotals() failed: %v", err)
	}
	if len(totals) != 1 {
		t.Fatalf("Expected the defaulted transaction in the current month, got %d kind totals", len(totals))
	}
	if totals[0].Kind != model.KindExpense || totals[0].Count != 1 {
		t.Errorf("Unexpected total for defaulted date: %+v", totals[0])
	}
}

func TestStore_MonthlyTotals(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Inside March 2024, including both month edges.
	mustAddTransaction(t, store, model.KindIncome, 1000, "Salary", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	mustAddTransaction(t, store, model.KindIncome, 2000, "Freelance", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	mustAddTransaction(t, store, model.KindExpense, 400, "Food", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	// Outside the month on both sides.
	mustAddTransaction(t, store, model.KindExpense, 99, "Food", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	mustAddTransaction(t, store, model.KindExpense, 77, "Food", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	totals, err := store.MonthlyTotals(ctx, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("MonthlyTotals() failed: %v", err)
	}

	byKind := make(map[model.TransactionKind]model.KindTotal, len(totals))
	for _, kt := range totals {
		byKind[kt.Kind] = kt
	}

	income, ok := byKind[model.KindIncome]
	if !ok {
		t.Fatal("Expected an income total for March")
	}
	if !income.Total.Equal(decimal.NewFromInt(3000)) || income.Count != 2 {
		t.Errorf("Income total = %s (count %d), want 3000 (count 2)", income.Total, income.Count)
	}

	expense, ok := byKind[model.KindExpense]
	if !ok {
		t.Fatal("Expected an expense total for March")
	}
	if !expense.Total.Equal(decimal.NewFromInt(400)) || expense.Count != 1 {
		t.Errorf("Expense total = %s (count %d), want 400 (count 1)", expense.Total, expense.Count)
	}
}

func TestStore_MonthlyTotalsEmptyMonth(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	totals, err := store.MonthlyTotals(context.Background(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("MonthlyTotals() failed: %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("Expected no totals for an empty month, got %d", len(totals))
	}
}

func TestStore_CategorySpending(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mustAddTransaction(t, store, model.KindExpense, 300, "Food", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	mustAddTransaction(t, store, model.KindExpense, 200, "Food", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC))
	// Exactly on the cutoff is included.
	mustAddTransaction(t, store, model.KindExpense, 100, "Transport", since)
	// Income never counts as spending.
	mustAddTransaction(t, store, model.KindIncome, 5000, "Salary", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	// The day before the cutoff is excluded.
	mustAddTransaction(t, store, model.KindExpense, 50, "Shopping", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))

	spending, err := store.CategorySpending(ctx, since)
	if err != nil {
		t.Fatalf("CategorySpending() failed: %v", err)
	}

	if len(spending) != 2 {
		t.Fatalf("Expected 2 spending rows, got %d: %+v", len(spending), spending)
	}

	if spending[0].Category != "Food" {
		t.Errorf("Expected Food first (largest total), got %s", spending[0].Category)
	}
	if !spending[0].Total.Equal(decimal.NewFromInt(500)) || spending[0].Count != 2 {
		t.Errorf("Food spending = %s (count %d), want 500 (count 2)", spending[0].Total, spending[0].Count)
	}

	if spending[1].Category != "Transport" {
		t.Errorf("Expected Transport second, got %s", spending[1].Category)
	}
	if !spending[1].Total.Equal(decimal.NewFromInt(100)) || spending[1].Count != 1 {
		t.Errorf("Transport spending = %s (count %d), want 100 (count 1)", spending[1].Total, spending[1].Count)
	}
}

func TestStore_CategorySpendingLookbackCutoff(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	asOf := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)
	// 40 days before asOf; a 30-day lookback must not see it.
	mustAddTransaction(t, store, model.KindExpense, 75, "Entertainment", asOf.AddDate(0, 0, -40))

	spending, err := store.CategorySpending(ctx, asOf.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("CategorySpending() failed: %v", err)
	}
	if len(spending) != 0 {
		t.Errorf("Expected no rows inside the lookback, got %+v", spending)
	}
}

func TestStore_BudgetUsage(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Food blows its 500 budget; Transport and Entertainment stay under.
	mustAddTransaction(t, store, model.KindExpense, 600, "Food", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	mustAddTransaction(t, store, model.KindExpense, 150, "Transport", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC))
	mustAddTransaction(t, store, model.KindExpense, 100, "Entertainment", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
	// Before the month, under an unseeded category, and income under a
	// budgeted name: none of these may count.
	mustAddTransaction(t, store, model.KindExpense, 999, "Food", time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	mustAddTransaction(t, store, model.KindExpense, 888, "Crypto", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	mustAddTransaction(t, store, model.KindIncome, 777, "Food", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC))

	usage, err := store.BudgetUsage(ctx, monthStart)
	if err != nil {
		t.Fatalf("BudgetUsage() failed: %v", err)
	}

	// All seven budgeted expense categories report, income categories and
	// unseeded names never do.
	if len(usage) != 7 {
		t.Fatalf("Expected 7 budget rows, got %d: %+v", len(usage), usage)
	}
	for _, u := range usage {
		switch u.Category {
		case "Salary", "Freelance":
			t.Errorf("Income category %s must not appear in budget usage", u.Category)
		case "Crypto":
			t.Error("Unseeded category must not appear in budget usage")
		}
	}

	// Ordered by spent/limit descending: 600/500 > 150/200 > 100/150.
	wantOrder := []string{"Food", "Transport", "Entertainment"}
	for i, want := range wantOrder {
		if usage[i].Category != want {
			t.Fatalf("usage[%d] = %s, want %s (full order: %+v)", i, usage[i].Category, want, usage)
		}
	}

	food := usage[0]
	if !food.Limit.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Food limit = %s, want 500", food.Limit)
	}
	if !food.Spent.Equal(decimal.NewFromInt(600)) {
		t.Errorf("Food spent = %s, want 600 (out-of-month, unseeded, and income rows must not count)", food.Spent)
	}

	// Untouched budgeted categories report zero spent.
	for _, u := range usage[3:] {
		if !u.Spent.IsZero() {
			t.Errorf("Category %s should report zero spent, got %s", u.Category, u.Spent)
		}
	}
}

func TestStore_BudgetUsageEmptyLedger(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	usage, err := store.BudgetUsage(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BudgetUsage() failed: %v", err)
	}

	if len(usage) != 7 {
		t.Fatalf("Expected all 7 budgeted categories even with no transactions, got %d", len(usage))
	}
	for _, u := range usage {
		if !u.Spent.IsZero() {
			t.Errorf("Category %s should report zero spent on an empty ledger, got %s", u.Category, u.Spent)
		}
		if !u.Limit.IsPositive() {
			t.Errorf("Category %s has non-positive limit %s in budget usage", u.Category, u.Limit)
		}
	}
}
