package xhttp

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/garrettladley/upay/internal/version"
)

type upayTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*upayTransport)(nil)

func (t *upayTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(UserAgent, version.UserAgent())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

type transportConfig struct {
	dialTimeout time.Duration
}

type TransportOption func(*transportConfig)

// WithDialTimeout bounds connection establishment (TCP dial and TLS handshake).
func WithDialTimeout(d time.Duration) TransportOption {
	return func(cfg *transportConfig) { cfg.dialTimeout = d }
}

// NewTransport returns an http.RoundTripper with standard upay headers.
func NewTransport(opts ...TransportOption) http.RoundTripper {
	var cfg transportConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.dialTimeout > 0 {
		dialer := &net.Dialer{
			Timeout:   cfg.dialTimeout,
			KeepAlive: 30 * time.Second,
		}
		base.DialContext = dialer.DialContext
		base.TLSHandshakeTimeout = cfg.dialTimeout
	}

	return &upayTransport{base: base}
}
