package middleware

import (
	"net/http"

	"github.com/garrettladley/upay/internal/xcontext"
	"github.com/garrettladley/upay/internal/xhttp"
	"github.com/google/uuid"
)

// RequestID tags each request with an ID, reusing the sender's X-Request-Id
// when it is a valid UUID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(xhttp.XRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		ctx := xcontext.SetRequestID(r.Context(), id)
		xhttp.SetHeaderRequestID(w, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
