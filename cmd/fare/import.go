package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/zunaidhosse/fare/internal/cli"
	"github.com/zunaidhosse/fare/internal/export"
	"github.com/zunaidhosse/fare/internal/ledger"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV export",
		Long: `Re-ingest a CSV file previously written by 'fare export'. Every row is
added as a new transaction with a fresh id; the exported ids are not
reused.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() { _ = f.Close() }()

			l, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rows, err := export.ReadCSV(f, l.Categories())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to import."))
				return nil
			}

			bar := progressbar.NewOptions(len(rows),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Importing transactions"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			for _, row := range rows {
				_, err := l.AddTransaction(ctx, ledger.TransactionData{
					Type:     row.Type,
					Amount:   row.Amount,
					Category: row.Category,
					Date:     row.Date,
					Notes:    row.Notes,
				})
				if err != nil {
					return fmt.Errorf("failed to import row %s: %w", row.ID, err)
				}
				_ = bar.Add(1)
			}

			fmt.Printf("%s %d transactions from %s\n",
				cli.SuccessStyle.Render("Imported"), len(rows), args[0])
			return nil
		},
	}
}
