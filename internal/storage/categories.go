package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/fernwood/pocketbook/internal/model"
)

// defaultCategories is the fixed seed set created at initialization. Budget
// limits are monthly expense ceilings; zero means the category is not
// monitored, and income categories are never monitored.
var defaultCategories = []model.Category{
	{Name: "Salary", Kind: model.KindIncome},
	{Name: "Freelance", Kind: model.KindIncome},
	{Name: "Food", Kind: model.KindExpense, BudgetLimit: decimal.NewFromInt(500)},
	{Name: "Transport", Kind: model.KindExpense, BudgetLimit: decimal.NewFromInt(200)},
	{Name: "Entertainment", Kind: model.KindExpense, BudgetLimit: decimal.NewFromInt(150)},
	{Name: "Utilities", Kind: model.KindExpense, BudgetLimit: decimal.NewFromInt(300)},
	{Name: "Shopping", Kind: model.KindExpense, BudgetLimit: decimal.NewFromInt(400)},
	{Name: "Healthcare", Kind: model.KindExpense, BudgetLimit: decimal.NewFromInt(200)},
	{Name: "Rent", Kind: model.KindExpense, BudgetLimit: decimal.NewFromInt(1200)},
}

// seedCategories inserts the default categories, skipping any name that
// already exists. Name uniqueness makes this idempotent.
func (s *Store) seedCategories(ctx context.Context) error {
	stmt, err := s.db.PrepareContext(ctx, `
		INSERT OR IGNORE INTO categories (name, type, budget_limit)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare category seed statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var created int64
	for _, cat := range defaultCategories {
		result, execErr := stmt.ExecContext(ctx, cat.Name, string(cat.Kind), cat.BudgetLimit)
		if execErr != nil {
			return fmt.Errorf("failed to seed category %q: %w", cat.Name, execErr)
		}
		if n, affErr := result.RowsAffected(); affErr == nil {
			created += n
		}
	}

	if created > 0 {
		slog.Info("seeded default categories", "created", created)
	}
	return nil
}

// Categories returns all categories ordered by name.
func (s *Store) Categories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, budget_limit
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Kind, &cat.BudgetLimit); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}
