package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zunaidhosse/fare/internal/cli"
	"github.com/zunaidhosse/fare/internal/ledger"
	"github.com/zunaidhosse/fare/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage income and expense transactions",
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(updateTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		txType   string
		category string
		date     string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction.

Income transactions always use the built-in income category; expenses
use the category given with --category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}

			l, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			data := ledger.TransactionData{
				Amount: amount,
				Date:   when,
				Notes:  notes,
			}

			switch txType {
			case "income":
				data.Type = model.TransactionIncome
				data.Category = model.IncomeCategory()
			case "expense":
				data.Type = model.TransactionExpense
				cat, ok := findCategory(l.Categories(), category)
				if !ok {
					return fmt.Errorf("unknown category %q, see 'fare categories list'", category)
				}
				data.Category = cat
			default:
				return fmt.Errorf("invalid type %q (income or expense)", txType)
			}

			txn, err := l.AddTransaction(ctx, data)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s %s %s\n",
				cli.SuccessStyle.Render("Recorded"),
				string(txn.Type),
				formatMoney(l, txn.Amount),
				cli.SubtleStyle.Render(txn.Category.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "other", "expense category id or name")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "optional notes")

	return cmd
}

func listTxCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			txns := l.Transactions()
			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions yet. Use 'fare tx add' to record one."))
				return nil
			}
			if limit > 0 && len(txns) > limit {
				txns = txns[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tCATEGORY\tNOTES\tID")
			for _, t := range txns {
				amount := formatMoney(l, t.Amount)
				if t.Type == model.TransactionExpense {
					amount = cli.ExpenseStyle.Render("-" + amount)
				} else {
					amount = cli.IncomeStyle.Render("+" + amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.Date.Format("2006-01-02"), t.Type, amount,
					t.Category.Name, t.Notes, cli.SubtleStyle.Render(t.ID))
			}

			totals := l.Totals()
			fmt.Fprintf(w, "\nBalance:\t%s\n", cli.BoldStyle.Render(formatMoney(l, totals.Balance)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "show at most this many transactions")
	return cmd
}

func updateTxCmd() *cobra.Command {
	var (
		amount   string
		category string
		date     string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var target *model.Transaction
			for _, t := range l.Transactions() {
				if t.ID == args[0] {
					txn := t
					target = &txn
					break
				}
			}
			if target == nil {
				return fmt.Errorf("no transaction with id %q", args[0])
			}

			if amount != "" {
				a, err := parseAmount(amount)
				if err != nil {
					return err
				}
				target.Amount = a
			}
			if date != "" {
				d, err := parseDate(date)
				if err != nil {
					return err
				}
				target.Date = d
			}
			if category != "" {
				cat, ok := findCategory(l.Categories(), category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				target.Category = cat
			}
			if cmd.Flags().Changed("notes") {
				target.Notes = notes
			}

			if err := l.UpdateTransaction(ctx, *target); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Transaction updated"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "new amount")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category id or name")
	cmd.Flags().StringVarP(&date, "date", "d", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "new notes")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force {
				ok, err := cli.Confirm(os.Stdout, os.Stdin, "Delete this transaction?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Canceled.")
					return nil
				}
			}

			if err := l.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Transaction deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}
