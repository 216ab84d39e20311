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

func receivablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "receivables",
		Aliases: []string{"owed"},
		Short:   "Track money owed to you",
	}

	cmd.AddCommand(addReceivableCmd())
	cmd.AddCommand(listReceivablesCmd())
	cmd.AddCommand(payReceivableCmd())
	cmd.AddCommand(deleteReceivableCmd())

	return cmd
}

func addReceivableCmd() *cobra.Command {
	var (
		date  string
		notes string
	)

	cmd := &cobra.Command{
		Use:   "add <person> <amount>",
		Short: "Record money someone owes you",
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

			rec, err := l.AddReceivable(ctx, ledger.ReceivableData{
				PersonName: person,
				Amount:     amount,
				Date:       when,
				Notes:      notes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s %s owes you %s\n",
				cli.SuccessStyle.Render("Recorded:"), rec.PersonName, formatMoney(l, rec.Amount))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "optional notes")
	return cmd
}

func listReceivablesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List receivables, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			recs := l.Receivables()
			if len(recs) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nobody owes you anything right now."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "DATE\tPERSON\tAMOUNT\tPAID\tREMAINING\tSTATUS\tID")
			for _, r := range recs {
				if !all && r.Status == model.ReceivableReceived {
					continue
				}
				status := string(r.Status)
				if r.Status == model.ReceivableReceived {
					status = cli.SuccessStyle.Render(status)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Date.Format("2006-01-02"), r.PersonName,
					formatMoney(l, r.Amount), formatMoney(l, r.PaidAmount()),
					formatMoney(l, r.Remaining()), status, cli.SubtleStyle.Render(r.ID))
			}

			fmt.Fprintf(w, "\nPending total:\t%s\n",
				cli.BoldStyle.Render(formatMoney(l, l.Totals().PendingReceivables)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include fully received entries")
	return cmd
}

func payReceivableCmd() *cobra.Command {
	var (
		date  string
		notes string
	)

	cmd := &cobra.Command{
		Use:   "pay <id> <amount>",
		Short: "Record a payment received against a receivable",
		Long: `Record a payment received. The receivable's status is recomputed and a
matching income transaction is posted to the ledger.`,
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

			rec, err := l.AddPayment(ctx, args[0], ledger.PaymentData{
				Amount: amount,
				Date:   when,
				Notes:  notes,
			})
			if err != nil {
				return err
			}
			if rec == nil {
				return fmt.Errorf("no receivable with id %q", args[0])
			}

			if rec.Status == model.ReceivableReceived {
				fmt.Printf("%s %s is fully paid up\n",
					cli.SuccessStyle.Render("Received."), rec.PersonName)
			} else {
				fmt.Printf("%s %s still owes %s\n",
					cli.SuccessStyle.Render("Received."), rec.PersonName, formatMoney(l, rec.Remaining()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "payment date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "optional notes")
	return cmd
}

func deleteReceivableCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a receivable by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force {
				ok, err := cli.Confirm(os.Stdout, os.Stdin, "Delete this receivable and its payment history?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Canceled.")
					return nil
				}
			}

			if err := l.DeleteReceivable(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Receivable deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}
