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

func payablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payables",
		Aliases: []string{"owe"},
		Short:   "Track money you owe",
	}

	cmd.AddCommand(addPayableCmd())
	cmd.AddCommand(listPayablesCmd())
	cmd.AddCommand(payPayableCmd())
	cmd.AddCommand(deletePayableCmd())

	return cmd
}

func addPayableCmd() *cobra.Command {
	var (
		date  string
		notes string
	)

	cmd := &cobra.Command{
		Use:   "add <person> <amount>",
		Short: "Record money you owe someone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			person := args[0]
			if person == "" {
				return fmt.Errorf("person name cannot be empty")
			}
			amount, err := parseAmount(args[1])
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

			pay, err := l.AddPayable(ctx, ledger.PayableData{
				PersonName: person,
				Amount:     amount,
				Date:       when,
				Notes:      notes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s you owe %s %s\n",
				cli.SuccessStyle.Render("Recorded:"), pay.PersonName, formatMoney(l, pay.Amount))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "optional notes")
	return cmd
}

func listPayablesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payables, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			pays := l.Payables()
			if len(pays) == 0 {
				fmt.Println(cli.InfoStyle.Render("You don't owe anyone right now."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "DATE\tPERSON\tAMOUNT\tPAID\tREMAINING\tSTATUS\tID")
			for _, p := range pays {
				if !all && p.Status == model.PayablePaid {
					continue
				}
				status := string(p.Status)
				if p.Status == model.PayablePaid {
					status = cli.SuccessStyle.Render(status)
				} else {
					status = cli.WarningStyle.Render(status)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					p.Date.Format("2006-01-02"), p.PersonName,
					formatMoney(l, p.Amount), formatMoney(l, p.PaidAmount()),
					formatMoney(l, p.Remaining()), status, cli.SubtleStyle.Render(p.ID))
			}

			fmt.Fprintf(w, "\nDue total:\t%s\n",
				cli.BoldStyle.Render(formatMoney(l, l.Totals().DuePayables)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include fully paid entries")
	return cmd
}

func payPayableCmd() *cobra.Command {
	var (
		date  string
		notes string
	)

	cmd := &cobra.Command{
		Use:   "pay <id> <amount>",
		Short: "Record a payment made against a payable",
		Long: `Record a payment you made. The payable's status is recomputed and a
matching expense transaction is posted to the ledger.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
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

			pay, err := l.AddPaymentMade(ctx, args[0], ledger.PaymentData{
				Amount: amount,
				Date:   when,
				Notes:  notes,
			})
			if err != nil {
				return err
			}
			if pay == nil {
				return fmt.Errorf("no payable with id %q", args[0])
			}

			if pay.Status == model.PayablePaid {
				fmt.Printf("%s %s is fully paid off\n",
					cli.SuccessStyle.Render("Paid."), pay.PersonName)
			} else {
				fmt.Printf("%s you still owe %s %s\n",
					cli.SuccessStyle.Render("Paid."), pay.PersonName, formatMoney(l, pay.Remaining()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "payment date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "optional notes")
	return cmd
}

func deletePayableCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a payable by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force {
				ok, err := cli.Confirm(os.Stdout, os.Stdin, "Delete this payable and its payment history?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Canceled.")
					return nil
				}
			}

			if err := l.DeletePayable(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Payable deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}
