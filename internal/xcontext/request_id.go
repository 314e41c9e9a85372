package xcontext

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(string)
	return requestID, ok && requestID != ""
}

// RequestIDOrNew returns the request ID carried by ctx, or a fresh UUID.
func RequestIDOrNew(ctx context.Context) string {
	if id, ok := GetRequestID(ctx); ok {
		return id
	}
	return uuid.NewString()
}
