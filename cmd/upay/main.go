package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/upay/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "upay",
		Short:         "Upay payments from your terminal",
		Version:       version.Get(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool(flagJSON, false, "print raw JSON")

	rootCmd.AddCommand(
		linksCmd(),
		transactionsCmd(),
		productsCmd(),
		couponsCmd(),
		webhookCmd(),
		checkCmd(),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
