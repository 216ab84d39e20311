package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zunaidhosse/fare/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all data and restore defaults",
		Long: `Reset clears all transactions, receivables and payables, restores the
built-in categories and resets settings to their defaults.

This cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force {
				fmt.Printf("This will erase %d transactions, %d receivables and %d payables.\n",
					len(l.Transactions()), len(l.Receivables()), len(l.Payables()))
				ok, err := cli.Confirm(os.Stdout, os.Stdin, "Are you sure you want to reset all data?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Reset canceled.")
					return nil
				}
			}

			if err := l.ResetData(ctx); err != nil {
				return fmt.Errorf("failed to reset data: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("All data reset to defaults"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}
