package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fernwood/pocketbook/internal/model"
)

// AddTransaction inserts one transaction and returns it with its generated ID
// and creation timestamp filled in. A zero Date defaults to today.
//
// The store accepts amounts and categories as given: amounts are not checked
// for sign or zero, and the category is not required to name a seeded
// category. A transaction under an unknown category still counts toward
// monthly and category totals but never appears in budget status. An invalid
// kind is the one thing the schema rejects, via its CHECK constraint; that
// constraint error propagates to the caller unmodified.
func (s *Store) AddTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	if txn.Date.IsZero() {
		txn.Date = time.Now()
	}
	txn.CreatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (amount, category, description, type, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		txn.Amount,
		txn.Category,
		txn.Description,
		string(txn.Kind),
		txn.Date.Format(dateLayout),
		txn.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction ID: %w", err)
	}
	txn.ID = id

	slog.Debug("recorded transaction",
		"id", txn.ID,
		"kind", txn.Kind,
		"category", txn.Category,
		"amount", txn.Amount)
	return &txn, nil
}

// MonthlyTotals returns the sum of amounts and the row count grouped by kind
// for the calendar month containing the given instant. Kinds with no rows
// that month are absent from the result.
func (s *Store) MonthlyTotals(ctx context.Context, month time.Time) ([]model.KindTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := s.db.QueryContext(ctx, `
		SELECT type, SUM(amount) AS total, COUNT(*) AS count
		FROM transactions
		WHERE date >= ? AND date < ?
		GROUP BY type`,
		start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.KindTotal
	for rows.Next() {
		var kt model.KindTotal
		if err := rows.Scan(&kt.Kind, &kt.Total, &kt.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		totals = append(totals, kt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly totals: %w", err)
	}

	slog.Debug("retrieved monthly totals", "month", start.Format("2006-01"), "kinds", len(totals))
	return totals, nil
}

// CategorySpending returns expense totals grouped by category for
// transactions dated on or after since, ordered by total descending. Income
// transactions never count here.
func (s *Store) CategorySpending(ctx context.Context, since time.Time) ([]model.CategorySpend, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, SUM(amount) AS total, COUNT(*) AS count
		FROM transactions
		WHERE type = 'expense' AND date >= ?
		GROUP BY category
		ORDER BY total DESC`,
		since.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query category spending: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var spending []model.CategorySpend
	for rows.Next() {
		var cs model.CategorySpend
		if err := rows.Scan(&cs.Category, &cs.Total, &cs.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category spending: %w", err)
		}
		spending = append(spending, cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category spending: %w", err)
	}

	return spending, nil
}

// BudgetUsage returns, for every expense category with a positive budget
// limit, the amount spent against it by expense transactions dated on or
// after monthStart. Categories with no matching transactions report zero
// spent. Rows are ordered by spent/limit descending; the limit is positive by
// the query's own filter, so the ratio is always defined.
func (s *Store) BudgetUsage(ctx context.Context, monthStart time.Time) ([]model.BudgetUsage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	// The 1.0 factor forces real division; stored whole amounts are integers
	// and would otherwise truncate the ratio.
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			c.name,
			c.budget_limit,
			COALESCE(SUM(t.amount), 0) AS spent
		FROM categories c
		LEFT JOIN transactions t ON c.name = t.category
			AND t.type = 'expense'
			AND t.date >= ?
		WHERE c.type = 'expense' AND c.budget_limit > 0
		GROUP BY c.name, c.budget_limit
		ORDER BY (COALESCE(SUM(t.amount), 0) * 1.0 / c.budget_limit) DESC`,
		monthStart.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query budget usage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var usage []model.BudgetUsage
	for rows.Next() {
		var bu model.BudgetUsage
		if err := rows.Scan(&bu.Category, &bu.Limit, &bu.Spent); err != nil {
			return nil, fmt.Errorf("failed to scan budget usage: %w", err)
		}
		usage = append(usage, bu)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget usage: %w", err)
	}

	return usage, nil
}
