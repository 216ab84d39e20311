package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zunaidhosse/fare/internal/cli"
	"github.com/zunaidhosse/fare/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		month string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly income/expense report",
		Long: `Summarize one calendar month: total income, total expense, savings and
the expense breakdown by category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if month == "" {
				month = time.Now().Format("2006-01")
			}
			if _, err := time.Parse("2006-01", month); err != nil {
				return fmt.Errorf("invalid month %q (expected YYYY-MM)", month)
			}

			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			currency := l.Settings().Currency
			summary := report.BuildMonthly(l.Transactions(), month)
			md := summary.Markdown(func(d decimal.Decimal) string {
				return cli.FormatMoney(d, currency)
			})

			if plain {
				fmt.Print(md)
				return nil
			}

			rendered, err := glamour.Render(md, "auto")
			if err != nil {
				// Fall back to raw markdown if the renderer chokes.
				fmt.Print(md)
				return nil
			}
			fmt.Print(rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month to report (YYYY-MM, default current)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown without styling")

	return cmd
}
