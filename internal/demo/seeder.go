// Package demo generates a fixed sample ledger for demonstrations.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"

	"github.com/fernwood/pocketbook/internal/model"
	"github.com/fernwood/pocketbook/internal/service"
)

// sampleWindowDays is how far back a seeded transaction may be dated.
const sampleWindowDays = 30

// samples is one plausible month of activity: two income payments and a
// spread of expenses across the seeded categories.
var samples = []model.Transaction{
	{Amount: decimal.NewFromInt(3000), Category: "Salary", Description: "Monthly salary", Kind: model.KindIncome},
	{Amount: decimal.NewFromInt(500), Category: "Freelance", Description: "Web project", Kind: model.KindIncome},

	{Amount: decimal.NewFromInt(1200), Category: "Rent", Description: "Monthly rent", Kind: model.KindExpense},
	{Amount: decimal.NewFromInt(150), Category: "Utilities", Description: "Electric bill", Kind: model.KindExpense},
	{Amount: decimal.NewFromInt(80), Category: "Food", Description: "Groceries", Kind: model.KindExpense},
	{Amount: decimal.NewFromInt(45), Category: "Food", Description: "Restaurant", Kind: model.KindExpense},
	{Amount: decimal.NewFromInt(60), Category: "Transport", Description: "Gas", Kind: model.KindExpense},
	{Amount: decimal.NewFromInt(35), Category: "Transport", Description: "Bus pass", Kind: model.KindExpense},
	{Amount: decimal.NewFromInt(120), Category: "Shopping", Description: "Clothes", Kind: model.KindExpense},
	{Amount: decimal.NewFromInt(75), Category: "Entertainment", Description: "Movies", Kind: model.KindExpense},
	{Amount: decimal.NewFromInt(90), Category: "Healthcare", Description: "Doctor visit", Kind: model.KindExpense},
}

// Seeder inserts the sample transactions into a ledger store.
type Seeder struct {
	store service.Storage
	rng   *rand.Rand
	out   io.Writer
}

// New creates a seeder that reports progress to out.
func New(store service.Storage, out io.Writer) *Seeder {
	return &Seeder{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		out:   out,
	}
}

// Seed inserts every sample transaction, each dated uniformly at random
// within the sample window ending at asOf, and returns the number inserted.
// On a partial failure the count covers what made it in before the error.
func (s *Seeder) Seed(ctx context.Context, asOf time.Time) (int, error) {
	bar := progressbar.NewOptions(len(samples),
		progressbar.OptionSetWriter(s.out),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Generating sample data..."),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(s.out)
		}),
	)

	inserted := 0
	for _, txn := range samples {
		daysAgo := s.rng.Intn(sampleWindowDays + 1)
		txn.Date = asOf.AddDate(0, 0, -daysAgo)

		if _, err := s.store.AddTransaction(ctx, txn); err != nil {
			return inserted, fmt.Errorf("failed to seed %s transaction for %s: %w", txn.Kind, txn.Category, err)
		}
		inserted++
		_ = bar.Add(1)
	}

	slog.Debug("generated sample transactions", "count", inserted)
	return inserted, nil
}
