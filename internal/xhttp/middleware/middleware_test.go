package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garrettladley/upay/internal/xcontext"
	"github.com/garrettladley/upay/internal/xhttp"
	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	existing := uuid.NewString()

	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{name: "no header generates id", header: ""},
		{name: "valid uuid is reused", header: existing, wantReuse: true},
		{name: "garbage is replaced", header: "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen, _ = xcontext.GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/webhooks/upay", nil)
			if tt.header != "" {
				req.Header.Set(xhttp.XRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if _, err := uuid.Parse(seen); err != nil {
				t.Fatalf("context request id %q is not a UUID", seen)
			}
			if got := rec.Header().Get(xhttp.XRequestID); got != seen {
				t.Errorf("response header = %q, want %q", got, seen)
			}
			if tt.wantReuse && seen != tt.header {
				t.Errorf("request id = %q, want reused %q", seen, tt.header)
			}
			if !tt.wantReuse && seen == tt.header {
				t.Errorf("request id = %q, want a fresh id", seen)
			}
		})
	}
}

func TestChainRecoveryLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	h := Chain(panicking, RequestID, Logger(logger), Logging, Recovery)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhooks/upay", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	out := buf.String()
	if !strings.Contains(out, "panic recovered") {
		t.Errorf("log output missing panic record: %s", out)
	}
	if !strings.Contains(out, `"status":500`) {
		t.Errorf("log output missing response status: %s", out)
	}
	if !strings.Contains(out, "request_id") {
		t.Errorf("log output missing request id: %s", out)
	}
}
