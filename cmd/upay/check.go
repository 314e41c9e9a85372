package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/upay/upay"
)

type checkResult struct {
	name     string
	count    int
	duration time.Duration
	err      error
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify credentials by listing every resource concurrently",
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

			results := runChecks(cmd.Context(), client)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, th.Heading().Render("upay check")+" "+th.Dim().Render(client.Config().BaseURL))
			var failed int
			for _, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(out, "%s %-13s %s\n", th.Fail().Render("✗"), r.name, r.err)
					continue
				}
				fmt.Fprintf(out, "%s %-13s %s\n", th.OK().Render("✓"), r.name,
					row("items", fmt.Sprint(r.count), "took", r.duration.Round(time.Millisecond).String()))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		},
	}
}

// runChecks lists each resource with a page size of one, sharing client
// across goroutines. A failing check does not cancel the others.
func runChecks(ctx context.Context, client *upay.Client) []checkResult {
	first := &upay.ListParams{Page: upay.Int(1), Limit: upay.Int(1)}

	checks := []struct {
		name string
		list func(context.Context) (int, error)
	}{
		{"payment-links", func(ctx context.Context) (int, error) {
			r, err := client.PaymentLinks.List(ctx, &upay.PaymentLinkListParams{ListParams: *first})
			if err != nil {
				return 0, err
			}
			return r.Pagination.Total, nil
		}},
		{"transactions", func(ctx context.Context) (int, error) {
			r, err := client.Transactions.List(ctx, &upay.TransactionListParams{ListParams: *first})
			if err != nil {
				return 0, err
			}
			return r.Pagination.Total, nil
		}},
		{"products", func(ctx context.Context) (int, error) {
			r, err := client.Products.List(ctx, first)
			if err != nil {
				return 0, err
			}
			return r.Pagination.Total, nil
		}},
		{"clients", func(ctx context.Context) (int, error) {
			r, err := client.Clients.List(ctx, first)
			if err != nil {
				return 0, err
			}
			return r.Pagination.Total, nil
		}},
	}

	results := make([]checkResult, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range checks {
		g.Go(func() error {
			start := time.Now()
			n, err := c.list(gctx)
			results[i] = checkResult{name: c.name, count: n, duration: time.Since(start), err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
