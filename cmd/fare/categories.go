package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zunaidhosse/fare/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Println(cli.TitleStyle.Render("Categories"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tNAME\tICON")
			for _, c := range l.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Icon)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Long: `Create a new expense category. The category id is derived from the
name; adding a name that maps to an existing id keeps the existing
category unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]
			if name == "" {
				return fmt.Errorf("category name cannot be empty")
			}

			l, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			before := len(l.Categories())
			cat, err := l.AddCategory(ctx, name, icon)
			if err != nil {
				return err
			}

			if len(l.Categories()) == before {
				fmt.Printf("%s %s\n",
					cli.WarningStyle.Render("Category already exists:"), cat.ID)
				return nil
			}

			fmt.Printf("%s %s %s\n",
				cli.SuccessStyle.Render("Added category"), cat.ID, cat.Icon)
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "🏷️", "category icon")
	return cmd
}
