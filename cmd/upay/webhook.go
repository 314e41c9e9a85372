package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/upay/internal/xhttp/middleware"
	"github.com/garrettladley/upay/internal/xslog"
	"github.com/garrettladley/upay/upay/webhook"
)

var errSecretRequired = errors.New("UPAY_WEBHOOK_SECRET is required")

func webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Sign, verify and receive webhook deliveries",
	}
	cmd.AddCommand(webhookSignCmd(), webhookVerifyCmd(), webhookServeCmd())
	return cmd
}

// readPayload reads the file named by path, or stdin for "-".
func readPayload(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading payload: %w", err)
	}
	return string(b), nil
}

func webhookSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <payload-file|->",
		Short: "Print the signature header value for a payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if e.cfg.WebhookSecret == "" {
				return errSecretRequired
			}
			payload, err := readPayload(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), webhook.Sign(payload, e.cfg.WebhookSecret))
			return nil
		},
	}
}

func webhookVerifyCmd() *cobra.Command {
	var signature string

	cmd := &cobra.Command{
		Use:   "verify <payload-file|->",
		Short: "Check a payload against a signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if e.cfg.WebhookSecret == "" {
				return errSecretRequired
			}
			payload, err := readPayload(cmd, args[0])
			if err != nil {
				return err
			}

			if !webhook.Verify(payload, signature, e.cfg.WebhookSecret) {
				fmt.Fprintln(cmd.OutOrStdout(), th.Fail().Render("invalid signature"))
				return errors.New("signature mismatch")
			}
			fmt.Fprintln(cmd.OutOrStdout(), th.OK().Render("valid signature"))
			return nil
		},
	}

	cmd.Flags().StringVar(&signature, "signature", "", "signature header value, with or without sha256=")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}

func webhookServeCmd() *cobra.Command {
	var (
		addr string
		path string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Receive webhook deliveries and log verified events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if e.cfg.WebhookSecret == "" {
				return errSecretRequired
			}
			return serveWebhooks(cmd.Context(), e.logger, addr, path, e.cfg.WebhookSecret, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&path, "path", "/webhooks/upay", "delivery path")
	return cmd
}

func serveWebhooks(ctx context.Context, logger *slog.Logger, addr, path, secret string, out io.Writer) error {
	receiver := webhook.NewHandler(secret, func(ctx context.Context, event *webhook.Event) error {
		fmt.Fprintln(out, row("event", string(event.Type), "id", event.ID, "at", event.CreatedAt.Format(time.RFC3339)))
		return nil
	}, webhook.WithLogger(logger))

	mux := http.NewServeMux()
	mux.Handle("POST "+path, receiver)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr: addr,
		Handler: middleware.Chain(mux,
			middleware.Recovery,
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Logging,
		),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "starting webhook receiver", xslog.Version(), xslog.Addr(addr), xslog.Path(path))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.InfoContext(ctx, "shutdown signal received, shutting down receiver")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.InfoContext(ctx, "webhook receiver stopped")
	return nil
}
