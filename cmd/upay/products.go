package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/upay/upay"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
	}
	cmd.AddCommand(productsListCmd())
	return cmd
}

func productsListCmd() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			client, err := e.client()
			if err != nil {
				return err
			}

			params := &upay.ListParams{}
			if cmd.Flags().Changed("page") {
				params.Page = upay.Int(page)
			}
			if cmd.Flags().Changed("limit") {
				params.Limit = upay.Int(limit)
			}

			products, err := client.Products.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), products)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, th.Heading().Render(fmt.Sprintf("Products (%d total)", products.Pagination.Total)))
			for _, p := range products.Data {
				fmt.Fprintln(out, row("id", p.ID, "name", p.Name, "price", formatCents(p.PriceCents)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	return cmd
}
