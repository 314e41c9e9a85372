// Package webhook verifies and receives Upay webhook deliveries.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

const signaturePrefix = "sha256="

// signatureHeaders are checked in order by ExtractSignature.
var signatureHeaders = []string{
	"X-Upay-Signature",
	"X-Upay-Signature-256",
	"Upay-Signature",
	"Signature",
}

// Verify reports whether signature is the hex HMAC-SHA256 of payload keyed
// by secret. The signature may carry a "sha256=" prefix. Empty or
// whitespace-only inputs never verify.
func Verify(payload string, signature string, secret string) bool {
	if isBlank(payload) || isBlank(signature) || isBlank(secret) {
		return false
	}

	signature = strings.TrimPrefix(signature, signaturePrefix)
	return constantTimeEqual(computeHMAC(payload, secret), signature)
}

// Sign returns the header value Upay would send for payload.
func Sign(payload string, secret string) string {
	return signaturePrefix + computeHMAC(payload, secret)
}

// ExtractSignature returns the first signature found in h, without its
// "sha256=" prefix, or "" when none is present.
func ExtractSignature(h http.Header) string {
	for _, name := range signatureHeaders {
		if v := h.Get(name); v != "" {
			return strings.TrimPrefix(v, signaturePrefix)
		}
	}
	return ""
}

// computeHMAC returns the lowercase hex HMAC-SHA256 of content.
func computeHMAC(content string, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(content))
	return hex.EncodeToString(mac.Sum(nil))
}

// constantTimeEqual compares every byte of equal-length inputs with no
// early exit.
func constantTimeEqual(a string, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := 0; i < len(a); i++ {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
