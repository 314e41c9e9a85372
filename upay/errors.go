package upay

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
)

// ErrTimeout matches, via errors.Is, any *TransportError caused by the
// configured timeout or a context deadline.
var ErrTimeout = errors.New("upay: request timed out")

// ConfigurationError reports an invalid construction parameter. It is
// returned by New before any network activity.
type ConfigurationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("upay: invalid configuration: %s %s", e.Field, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Cause }

// ValidationError reports caller-supplied arguments that violate a documented
// precondition. It is returned before any network call is made.
type ValidationError struct {
	// Fields maps the offending field (JSON name) to a message.
	Fields map[string]string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strings.TrimSpace(k+" "+e.Fields[k]))
	}
	return "upay: validation failed: " + strings.Join(parts, "; ")
}

// TransportError reports a failure to complete the HTTP exchange: DNS,
// connection, TLS, timeout or cancellation. No response status is available.
type TransportError struct {
	Method  string
	URL     string
	Timeout bool
	Err     error
}

func newTransportError(method, rawURL string, err error) *TransportError {
	return &TransportError{
		Method:  method,
		URL:     rawURL,
		Timeout: isTimeout(err),
		Err:     err,
	}
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("upay: %s %s: timed out: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("upay: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == ErrTimeout && e.Timeout
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// APIError is returned when the API answers with a status code >= 400.
type APIError struct {
	StatusCode int
	Message    string
	// Code is the machine-readable error code, empty when the API sent none.
	Code      string
	Details   any
	RateLimit *RateLimitInfo
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upay api: %d %s (%s)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("upay api: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }
func (e *APIError) IsNotFound() bool     { return e.StatusCode == http.StatusNotFound }
func (e *APIError) IsRateLimited() bool  { return e.StatusCode == http.StatusTooManyRequests }
func (e *APIError) IsServerError() bool  { return e.StatusCode >= http.StatusInternalServerError }

func newAPIError(resp *Response, header http.Header) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
	}

	obj := resp.Object()
	if msg, ok := obj["message"].(string); ok && msg != "" {
		apiErr.Message = msg
	}
	if code, ok := obj["code"].(string); ok {
		apiErr.Code = code
	}
	if details, ok := obj["details"]; ok {
		apiErr.Details = details
	}
	if info, err := ParseRateLimitHeaders(header); err == nil {
		apiErr.RateLimit = info
	}

	return apiErr
}

// DecodeError reports a response body that does not match the expected shape.
type DecodeError struct {
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("upay: decoding %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidURLError reports a composed request URL that does not parse as an
// absolute URL. Validated configuration makes this unreachable in practice.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upay: invalid url %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("upay: invalid url %q", e.URL)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }
