package xhttp

import (
	"net/http"
)

const (
	Accept        = "Accept"
	Authorization = "Authorization"
	ContentType   = "Content-Type"
	UserAgent     = "User-Agent"
	XForwardedFor = "X-Forwarded-For"
	XRequestID    = "X-Request-Id"
)

const ApplicationJSON = "application/json"

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	w.Header().Set(ContentType, ApplicationJSON)
}

// SetRequestHeadersJSON marks an outbound request as a JSON exchange.
func SetRequestHeadersJSON(req *http.Request) {
	req.Header.Set(ContentType, ApplicationJSON)
	req.Header.Set(Accept, ApplicationJSON)
}

func SetRequestHeaderBearer(req *http.Request, token string) {
	req.Header.Set(Authorization, "Bearer "+token)
}
