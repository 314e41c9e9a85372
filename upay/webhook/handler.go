package webhook

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/garrettladley/upay/internal/xerrors"
	"github.com/garrettladley/upay/internal/xhttp"
	"github.com/garrettladley/upay/internal/xslog"
)

var (
	ErrMissingSignature = errors.New("webhook: missing signature")
	ErrInvalidSignature = errors.New("webhook: invalid signature")
)

// HandlerFunc processes a verified event. A returned error answers the
// delivery with 500 so Upay retries it.
type HandlerFunc func(ctx context.Context, event *Event) error

type handler struct {
	secret       string
	fn           HandlerFunc
	logger       *slog.Logger
	maxBodyBytes int64
}

type HandlerOption func(*handler)

func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *handler) { h.logger = logger }
}

// WithMaxBodyBytes overrides xhttp.MaxBodyBytes.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *handler) { h.maxBodyBytes = n }
}

// NewHandler returns an http.Handler that verifies each delivery against
// secret before passing it to fn.
func NewHandler(secret string, fn HandlerFunc, opts ...HandlerOption) http.Handler {
	h := &handler{
		secret:       secret,
		fn:           fn,
		maxBodyBytes: xhttp.MaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContextOr(ctx, h.logger)
	ctx = xslog.WithLogger(ctx, logger)

	if r.Method != http.MethodPost {
		xerrors.WriteError(ctx, w, xerrors.MethodNotAllowed())
		return
	}

	body, err := xhttp.ReadBody(r, h.maxBodyBytes)
	if err != nil {
		if errors.Is(err, xhttp.ErrBodyTooLarge) {
			xerrors.WriteError(ctx, w, xerrors.TooLarge(xerrors.WithCause(err)))
			return
		}
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithCause(err)))
		return
	}

	signature := ExtractSignature(r.Header)
	if signature == "" {
		xerrors.WriteError(ctx, w, xerrors.Unauthorized(
			xerrors.WithMessage("missing signature"),
			xerrors.WithCause(ErrMissingSignature),
		))
		return
	}
	if !Verify(string(body), signature, h.secret) {
		xerrors.WriteError(ctx, w, xerrors.Unauthorized(
			xerrors.WithMessage("invalid signature"),
			xerrors.WithCause(ErrInvalidSignature),
		))
		return
	}

	event, err := ParseEvent(body)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(
			xerrors.WithMessage("malformed event"),
			xerrors.WithCause(err),
		))
		return
	}

	logger = logger.With(xslog.EventID(event.ID), xslog.EventType(string(event.Type)))
	ctx = xslog.WithLogger(ctx, logger)
	if !event.Type.Known() {
		logger.WarnContext(ctx, "unknown webhook event type")
	}

	if err := h.fn(ctx, event); err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithCause(err)))
		return
	}

	logger.InfoContext(ctx, "webhook processed")
	xhttp.WriteOK(w, map[string]bool{"received": true})
}
