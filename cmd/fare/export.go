package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zunaidhosse/fare/internal/cli"
	"github.com/zunaidhosse/fare/internal/export"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the transaction list as CSV",
		Long: `Write all transactions to a CSV file with columns
ID, Type, Amount, Category, Date, Notes. The export is a read-only
projection; it does not modify the ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			txns := l.Transactions()

			out := os.Stdout
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := export.WriteCSV(out, txns); err != nil {
				return err
			}

			if output != "-" {
				fmt.Printf("%s %d transactions to %s\n",
					cli.SuccessStyle.Render("Exported"), len(txns), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "output file (- for stdout)")
	return cmd
}
