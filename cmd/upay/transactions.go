package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/upay/upay"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Inspect and refund transactions",
	}
	cmd.AddCommand(transactionsListCmd(), transactionsRefundCmd())
	return cmd
}

func transactionsListCmd() *cobra.Command {
	var (
		page, limit int
		status      string
		method      string
		clientID    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
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

			params := &upay.TransactionListParams{
				Status:        upay.TransactionStatus(status),
				PaymentMethod: upay.PaymentMethod(method),
				ClientID:      clientID,
			}
			if cmd.Flags().Changed("page") {
				params.Page = upay.Int(page)
			}
			if cmd.Flags().Changed("limit") {
				params.Limit = upay.Int(limit)
			}

			txs, err := client.Transactions.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), txs)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, th.Heading().Render(fmt.Sprintf("Transactions (%d total)", txs.Pagination.Total)))
			for _, tx := range txs.Data {
				fmt.Fprintln(out, row(
					"id", tx.ID,
					"amount", formatCents(tx.AmountCents),
					"method", string(tx.PaymentMethod),
					"status", th.Status(string(tx.Status)),
				))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (PENDING, PAID, FAILED, CANCELLED, REFUNDED)")
	cmd.Flags().StringVar(&method, "method", "", "filter by payment method (PIX, CREDIT_CARD, BOLETO)")
	cmd.Flags().StringVar(&clientID, "client", "", "filter by client id")
	return cmd
}

func transactionsRefundCmd() *cobra.Command {
	var amountCents int64

	cmd := &cobra.Command{
		Use:   "refund <id>",
		Short: "Refund a paid transaction, fully or partially",
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

			var amount *int64
			if cmd.Flags().Changed("amount") {
				amount = upay.Int64(amountCents)
			}

			tx, err := client.Transactions.Refund(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), tx)
			}

			fmt.Fprintln(cmd.OutOrStdout(), row("id", tx.ID, "status", th.Status(string(tx.Status))))
			return nil
		},
	}

	cmd.Flags().Int64Var(&amountCents, "amount", 0, "amount in cents; omit for a full refund")
	return cmd
}
