package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/upay/upay"
)

func couponsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coupons",
		Short: "Work with coupons",
	}
	cmd.AddCommand(couponsValidateCmd())
	return cmd
}

func couponsValidateCmd() *cobra.Command {
	var (
		amountCents int64
		productIDs  []string
	)

	cmd := &cobra.Command{
		Use:   "validate <code>",
		Short: "Check a coupon code against an amount",
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

			result, err := client.Coupons.Validate(cmd.Context(), &upay.ValidateCouponRequest{
				Code:        args[0],
				AmountCents: amountCents,
				ProductIDs:  productIDs,
			})
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			if !result.Valid {
				fmt.Fprintln(out, th.Fail().Render("invalid")+" "+result.Message)
				return nil
			}
			fmt.Fprintln(out, th.OK().Render("valid")+" "+row(
				"discount", formatCents(result.DiscountCents),
				"final", formatCents(result.FinalAmountCents),
			))
			return nil
		},
	}

	cmd.Flags().Int64Var(&amountCents, "amount", 0, "order amount in cents")
	cmd.Flags().StringSliceVar(&productIDs, "product", nil, "product ids in the order")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
