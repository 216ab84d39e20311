package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zunaidhosse/fare/internal/cli"
	"github.com/zunaidhosse/fare/internal/quote"
)

func quoteCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational quote",
		Long: `Print one motivational quote about money. With a GEMINI_API_KEY in the
environment the quote is generated; otherwise a built-in one is used.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var supplier quote.Supplier = quote.NewLocal()
			if !offline {
				supplier = quote.NewGemini(ctx, supplier)
			}

			q, err := supplier.Quote(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.InfoStyle.Render("“" + q + "”"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "only use the built-in quote list")
	return cmd
}
