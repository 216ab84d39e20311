package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zunaidhosse/fare/internal/cli"
	"github.com/zunaidhosse/fare/internal/ledger"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			s := l.Settings()
			fmt.Printf("Currency:       %s\n", s.Currency)
			fmt.Printf("Dark mode:      %t\n", s.DarkMode)
			if s.SpendingLimit != nil {
				fmt.Printf("Spending limit: %s\n", formatMoney(l, *s.SpendingLimit))
			} else {
				fmt.Printf("Spending limit: %s\n", cli.SubtleStyle.Render("not set"))
			}
			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	var (
		currency           string
		darkMode           bool
		spendingLimit      string
		clearSpendingLimit bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		Long: `Change settings. Only the flags you pass are changed; everything else
keeps its current value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			update := ledger.SettingsUpdate{}
			if cmd.Flags().Changed("currency") {
				update.Currency = &currency
			}
			if cmd.Flags().Changed("dark-mode") {
				update.DarkMode = &darkMode
			}
			if clearSpendingLimit {
				update.ClearSpendingLimit = true
			} else if cmd.Flags().Changed("spending-limit") {
				limit, err := parseAmount(spendingLimit)
				if err != nil {
					return err
				}
				update.SpendingLimit = &limit
			}

			if update == (ledger.SettingsUpdate{}) {
				return fmt.Errorf("nothing to change, pass at least one flag")
			}

			l, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := l.UpdateSettings(ctx, update); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Settings updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "currency code (e.g. SAR, USD, BDT)")
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "enable or disable dark mode")
	cmd.Flags().StringVar(&spendingLimit, "spending-limit", "", "monthly spending limit")
	cmd.Flags().BoolVar(&clearSpendingLimit, "clear-spending-limit", false, "remove the spending limit")

	return cmd
}
