package upay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/garrettladley/upay/internal/xcontext"
	"github.com/garrettladley/upay/internal/xhttp"
	"github.com/garrettladley/upay/internal/xslog"
)

// Transport performs authenticated JSON exchanges against the API. It is
// safe for concurrent use.
type Transport struct {
	baseURL    string
	apiVersion string

	authed *http.Client
	public *http.Client
	logger *slog.Logger
}

func newTransport(cfg *clientConfig) *Transport {
	base := xhttp.NewTransport(xhttp.WithDialTimeout(cfg.timeout))

	auth := &authTransport{
		base:        base,
		host:        cfg.host,
		tokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.apiKey, TokenType: "Bearer"}),
	}

	return &Transport{
		baseURL:    cfg.baseURL,
		apiVersion: cfg.apiVersion,
		authed:     xhttp.NewHTTPClient(xhttp.WithTransport(auth), xhttp.WithTimeout(cfg.timeout)),
		public:     xhttp.NewHTTPClient(xhttp.WithTransport(base), xhttp.WithTimeout(cfg.timeout)),
		logger:     cfg.logger,
	}
}

func (t *Transport) Get(ctx context.Context, path string, query Query) (*Response, error) {
	return t.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

func (t *Transport) Post(ctx context.Context, path string, body any) (*Response, error) {
	return t.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

func (t *Transport) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return t.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body})
}

func (t *Transport) Delete(ctx context.Context, path string) (*Response, error) {
	return t.Do(ctx, Request{Method: http.MethodDelete, Path: path})
}

// PostPublic sends a POST without credentials, for endpoints the API
// exposes to unauthenticated callers.
func (t *Transport) PostPublic(ctx context.Context, path string, body any) (*Response, error) {
	return t.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body, Public: true})
}

// Do sends r and returns the parsed response. Statuses >= 400 yield an
// *APIError; failures before a status is received yield a *TransportError.
func (t *Transport) Do(ctx context.Context, r Request) (*Response, error) {
	u, err := buildURL(t.baseURL, t.apiVersion, r.Path, r.Query)
	if err != nil {
		return nil, err
	}

	body, err := encodeBody(r)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return nil, &InvalidURLError{URL: u, Err: err}
	}
	requestID := xcontext.RequestIDOrNew(ctx)
	xhttp.SetRequestHeadersJSON(req)
	req.Header.Set(xhttp.XRequestID, requestID)

	client := t.authed
	if r.Public {
		client = t.public
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		t.log(ctx, r, requestID, 0, time.Since(start), err)
		return nil, newTransportError(r.Method, u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.log(ctx, r, requestID, resp.StatusCode, time.Since(start), err)
		return nil, newTransportError(r.Method, u, fmt.Errorf("reading response: %w", err))
	}
	t.log(ctx, r, requestID, resp.StatusCode, time.Since(start), nil)

	out := newResponse(resp.StatusCode, raw)
	if resp.StatusCode >= 400 {
		return nil, newAPIError(out, resp.Header)
	}
	return out, nil
}

// encodeBody returns nil for GET and DELETE and for requests without a body.
func encodeBody(r Request) (io.Reader, error) {
	if r.Body == nil || r.Method == http.MethodGet || r.Method == http.MethodDelete {
		return nil, nil
	}

	b, err := go_json.Marshal(r.Body)
	if err != nil {
		return nil, newValidationError("body", "must be JSON-serializable: "+err.Error())
	}
	return bytes.NewReader(b), nil
}

func (t *Transport) log(ctx context.Context, r Request, requestID string, status int, d time.Duration, err error) {
	attrs := []slog.Attr{
		xslog.RequestID(requestID),
		xslog.Method(r.Method),
		xslog.Path(normalizePath(r.Path)),
		xslog.Public(r.Public),
		xslog.Duration(d),
	}
	if status != 0 {
		attrs = append(attrs, xslog.HTTPStatus(status))
	}
	if err != nil {
		attrs = append(attrs, xslog.ErrorGroup(err))
		t.logger.LogAttrs(ctx, slog.LevelWarn, "upay request failed", attrs...)
		return
	}
	t.logger.LogAttrs(ctx, slog.LevelDebug, "upay request", attrs...)
}

type authTransport struct {
	base        http.RoundTripper
	host        string
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*authTransport)(nil)

// RoundTrip attaches the bearer token only for the configured API host, so
// a redirect elsewhere never carries the key.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host != t.host {
		return t.base.RoundTrip(req)
	}

	token, err := t.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}

	req = req.Clone(req.Context())
	xhttp.SetRequestHeaderBearer(req, token.AccessToken)

	return t.base.RoundTrip(req)
}

// WithRequestID returns a context whose calls send id as X-Request-Id
// instead of a generated one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return xcontext.SetRequestID(ctx, id)
}
