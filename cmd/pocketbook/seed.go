package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fernwood/pocketbook/internal/cli"
	"github.com/fernwood/pocketbook/internal/demo"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Generate sample data",
		Long: `Insert a fixed set of demonstration transactions, each dated randomly
within the last 30 days. Useful for trying the report on a fresh ledger.
Seeding again inserts the whole set again.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			seeder := demo.New(store, cmd.OutOrStdout())
			count, err := seeder.Seed(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to generate sample data: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Generated %d sample transactions", count)))
			fmt.Println(cli.SubtleStyle.Render("Run 'pocketbook report' to see them."))
			return nil
		},
	}
}
