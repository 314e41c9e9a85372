package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/upay/upay"
)

func linksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Manage payment links",
	}
	cmd.AddCommand(linksListCmd(), linksGetCmd(), linksCreateCmd())
	return cmd
}

func linksListCmd() *cobra.Command {
	var (
		page, limit int
		status      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payment links",
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

			params := &upay.PaymentLinkListParams{Status: upay.PaymentLinkStatus(status)}
			if cmd.Flags().Changed("page") {
				params.Page = upay.Int(page)
			}
			if cmd.Flags().Changed("limit") {
				params.Limit = upay.Int(limit)
			}

			links, err := client.PaymentLinks.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), links)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, th.Heading().Render(fmt.Sprintf("Payment links (%d total)", links.Pagination.Total)))
			for _, l := range links.Data {
				fmt.Fprintln(out, row(
					"id", l.ID,
					"title", l.Title,
					"amount", formatCents(l.AmountCents),
					"status", th.Status(string(l.Status)),
				))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (ACTIVE, INACTIVE)")
	return cmd
}

func linksGetCmd() *cobra.Command {
	var bySlug bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a payment link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			client, err := e.client()
			if err != nil {
				return err
			}

			var link *upay.PaymentLink
			if bySlug {
				link, err = client.PaymentLinks.GetBySlug(cmd.Context(), args[0])
			} else {
				link, err = client.PaymentLinks.Get(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), link)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, th.Heading().Render(link.Title))
			fmt.Fprintln(out, row("id", link.ID, "slug", link.Slug, "status", th.Status(string(link.Status))))
			fmt.Fprintln(out, row("amount", formatCents(link.AmountCents), "currency", link.Currency))
			fmt.Fprintln(out, row("checkout", client.PaymentLinks.CheckoutURL(link.Slug)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&bySlug, "slug", false, "look the link up by slug instead of id")
	return cmd
}

func linksCreateCmd() *cobra.Command {
	var (
		title, description string
		amountCents        int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a fixed-amount payment link",
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

			link, err := client.PaymentLinks.Create(cmd.Context(), &upay.CreatePaymentLinkRequest{
				Title:       title,
				Description: description,
				AmountCents: amountCents,
			})
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), link)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, th.OK().Render("created")+" "+link.ID)
			fmt.Fprintln(out, row("checkout", client.PaymentLinks.CheckoutURL(link.Slug)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "link title (at least 3 characters)")
	cmd.Flags().StringVar(&description, "description", "", "link description")
	cmd.Flags().Int64Var(&amountCents, "amount", 0, "amount in cents (at least 100)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
