package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fernwood/pocketbook/internal/cli"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the seeded categories",
		Long:  `Display every category with its kind and monthly budget limit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			cli.RenderCategories(cmd.OutOrStdout(), viper.GetString("currency.symbol"), categories)
			return nil
		},
	}
}
