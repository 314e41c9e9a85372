package upay

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RateLimitInfo is the rate limit state reported by the API alongside a
// response. Limit and Remaining refer to the current window.
type RateLimitInfo struct {
	Limit     int
	Remaining int
	// Reset is the time until the window resets.
	Reset time.Duration
	// RetryAfter is set from the Retry-After header, zero when absent.
	RetryAfter time.Duration
}

const (
	// Header keys use canonical form (http.CanonicalHeaderKey)
	limitHeaderKey      = "X-Ratelimit-Limit"
	remainingHeaderKey  = "X-Ratelimit-Remaining"
	resetHeaderKey      = "X-Ratelimit-Reset"
	retryAfterHeaderKey = "Retry-After"
)

// ParseRateLimitHeaders returns nil, nil when the limit headers are absent.
func ParseRateLimitHeaders(headers http.Header) (*RateLimitInfo, error) {
	var (
		limitStr     = headers.Get(limitHeaderKey)
		remainingStr = headers.Get(remainingHeaderKey)
		resetStr     = headers.Get(resetHeaderKey)
	)

	if limitStr == "" || remainingStr == "" || resetStr == "" {
		return nil, nil
	}

	limit, err := parseRateLimitValue(limitStr)
	if err != nil {
		return nil, err
	}

	remaining, err := parseRateLimitValue(remainingStr)
	if err != nil {
		return nil, err
	}

	resetSeconds, err := strconv.ParseInt(strings.TrimSpace(resetStr), 10, 64)
	if err != nil {
		return nil, err
	}

	info := &RateLimitInfo{
		Limit:     limit,
		Remaining: remaining,
		Reset:     time.Duration(resetSeconds) * time.Second,
	}

	if retryAfter := strings.TrimSpace(headers.Get(retryAfterHeaderKey)); retryAfter != "" {
		if seconds, err := strconv.ParseInt(retryAfter, 10, 64); err == nil && seconds > 0 {
			info.RetryAfter = time.Duration(seconds) * time.Second
		}
	}

	return info, nil
}

// parseRateLimitValue extracts the primary integer value from a rate limit header.
// Handles formats like:
//   - "100" (simple)
//   - "100, 100;window=60, 10000;window=86400" (complex)
func parseRateLimitValue(s string) (int, error) {
	parts := strings.Split(s, ",")
	if len(parts) == 0 {
		return 0, strconv.ErrSyntax
	}

	value := strings.TrimSpace(parts[0])
	if idx := strings.Index(value, ";"); idx != -1 {
		value = value[:idx]
	}

	return strconv.Atoi(value)
}
