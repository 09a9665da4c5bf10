package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fernwood/pocketbook/internal/cli"
	"github.com/fernwood/pocketbook/internal/model"
)

func addCmd() *cobra.Command {
	var (
		description string
		kindValue   string
		dateValue   string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <category>",
		Short: "Record a transaction",
		Long: `Record one income or expense transaction in the ledger.

The category is free text: it should name a seeded category (see
'pocketbook categories'), but unknown names are accepted — they count
toward totals and spending, just never toward budget status.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			category := args[1]

			kind, err := model.ParseTransactionKind(kindValue)
			if err != nil {
				return err
			}

			date, err := parseDate(dateValue, time.Now())
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := store.AddTransaction(ctx, model.Transaction{
				Amount:      amount,
				Category:    category,
				Description: description,
				Kind:        kind,
				Date:        date,
			})
			if err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}

			symbol := viper.GetString("currency.symbol")
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s: %s%s - %s (ID: %d)",
				txn.Kind, symbol, txn.Amount, txn.Category, txn.ID)))

			if unseeded, checkErr := isUnseededCategory(ctx, store, category); checkErr == nil && unseeded {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%q is not a seeded category; it won't appear in budget status", category)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "optional transaction description")
	cmd.Flags().StringVarP(&kindValue, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVar(&dateValue, "date", "", "transaction date as YYYY-MM-DD (default: today)")

	return cmd
}
