// Package upay is a client for the Upay payments API.
package upay

import (
	"log/slog"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL    = "https://api.upay-sistema.onrender.com"
	DefaultAPIVersion = "v1"
	DefaultTimeout    = 30 * time.Second
)

// Client is the entry point to the API. A Client is safe for concurrent use
// and should be reused.
type Client struct {
	PaymentLinks PaymentLinkService
	Transactions TransactionService
	Products     ProductService
	Coupons      CouponService
	// Clients manages the merchant's customers.
	Clients CustomerService

	transport *Transport
	config    Config
}

// Config is the validated, immutable configuration of a Client.
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
}

// New returns a Client authenticated with apiKey. It fails with a
// *ConfigurationError if any setting is invalid; no request is sent.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	t := newTransport(cfg)
	c := &Client{
		transport: t,
		config: Config{
			APIKey:     cfg.apiKey,
			BaseURL:    cfg.baseURL,
			APIVersion: cfg.apiVersion,
			Timeout:    cfg.timeout,
		},
	}

	c.PaymentLinks = &paymentLinkService{transport: t, checkoutURL: defaultCheckoutURL}
	c.Transactions = &transactionService{transport: t}
	c.Products = &productService{transport: t}
	c.Coupons = &couponService{transport: t}
	c.Clients = &customerService{transport: t}

	return c, nil
}

// Transport returns the transport shared by the resource services, for
// endpoints the services do not cover.
func (c *Client) Transport() *Transport { return c.transport }

func (c *Client) Config() Config { return c.config }

type clientConfig struct {
	apiKey     string
	baseURL    string
	apiVersion string
	timeout    time.Duration
	logger     *slog.Logger

	// host is derived from baseURL during validation.
	host string
}

type Option func(*clientConfig)

// WithBaseURL overrides DefaultBaseURL. Trailing slashes are removed.
func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithAPIVersion(version string) Option {
	return func(cfg *clientConfig) { cfg.apiVersion = version }
}

// WithTimeout bounds connection setup and each full request. It must be positive.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func (cfg *clientConfig) validate() error {
	if strings.TrimSpace(cfg.apiKey) == "" {
		return &ConfigurationError{Field: "apiKey", Message: "is required"}
	}
	if strings.ContainsAny(cfg.apiKey, "\r\n") {
		return &ConfigurationError{Field: "apiKey", Message: "must not contain line breaks"}
	}

	base := strings.TrimSpace(cfg.baseURL)
	if base == "" {
		return &ConfigurationError{Field: "baseURL", Message: "must not be blank"}
	}
	cfg.baseURL = strings.TrimRight(base, "/")

	u, err := url.Parse(cfg.baseURL)
	if err != nil {
		return &ConfigurationError{Field: "baseURL", Message: "is not a valid URL", Cause: err}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ConfigurationError{Field: "baseURL", Message: "must be an absolute http(s) URL"}
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return &ConfigurationError{Field: "baseURL", Message: "must not carry a query or fragment"}
	}
	cfg.host = u.Host

	version := strings.TrimSpace(cfg.apiVersion)
	if version == "" {
		return &ConfigurationError{Field: "apiVersion", Message: "must not be blank"}
	}
	if strings.ContainsAny(version, "/?# ") {
		return &ConfigurationError{Field: "apiVersion", Message: "must be a single path segment"}
	}
	cfg.apiVersion = version

	if cfg.timeout <= 0 {
		return &ConfigurationError{Field: "timeout", Message: "must be positive"}
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	if _, err := buildURL(cfg.baseURL, cfg.apiVersion, "/", nil); err != nil {
		return &ConfigurationError{Field: "baseURL", Message: "does not form a valid request URL", Cause: err}
	}

	return nil
}
