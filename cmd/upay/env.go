package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/garrettladley/upay/internal/config"
	"github.com/garrettladley/upay/internal/xslog"
	"github.com/garrettladley/upay/upay"
)

const flagJSON = "json"

// env bundles what every command needs.
type env struct {
	cfg    config.Config
	logger *slog.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	logger := xslog.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	return &env{cfg: cfg, logger: logger}, nil
}

func (e *env) client() (*upay.Client, error) {
	c, err := upay.New(e.cfg.APIKey,
		upay.WithBaseURL(e.cfg.BaseURL),
		upay.WithAPIVersion(e.cfg.APIVersion),
		upay.WithTimeout(e.cfg.Timeout),
		upay.WithLogger(e.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client (is UPAY_API_KEY set?): %w", err)
	}
	return c, nil
}
