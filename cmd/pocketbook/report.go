package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fernwood/pocketbook/internal/cli"
	"github.com/fernwood/pocketbook/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		days      int
		asOfValue string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the financial report",
		Long: `Render the three report sections from the current ledger: the monthly
summary, the budget status for every budgeted category, and category
spending over the lookback window.

The --as-of date pins both the summary month and the budget month, so
past months can be reported exactly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			asOf, err := parseDate(asOfValue, time.Now())
			if err != nil {
				return err
			}

			if days <= 0 {
				days = report.DefaultLookbackDays
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			engine := report.New(store)

			summary, err := engine.MonthlySummary(ctx, asOf)
			if err != nil {
				return fmt.Errorf("failed to compute monthly summary: %w", err)
			}

			budgets, err := engine.BudgetStatus(ctx, asOf)
			if err != nil {
				return fmt.Errorf("failed to compute budget status: %w", err)
			}

			spending, err := engine.CategorySpending(ctx, asOf, days)
			if err != nil {
				return fmt.Errorf("failed to compute category spending: %w", err)
			}

			out := cmd.OutOrStdout()
			symbol := viper.GetString("currency.symbol")

			cli.RenderReportHeader(out, time.Now())
			cli.RenderSummary(out, symbol, asOf, summary)
			cli.RenderBudgets(out, symbol, budgets)
			cli.RenderSpending(out, symbol, days, spending)

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", report.DefaultLookbackDays, "lookback window for category spending, in days")
	cmd.Flags().StringVar(&asOfValue, "as-of", "", "report as-of date as YYYY-MM-DD (default: today)")

	return cmd
}
