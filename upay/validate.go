package upay

import (
	"net/url"
	"strings"

	"github.com/garrettladley/upay/internal/validator"
)

func nilRequestError() error {
	return newValidationError("request", "is required")
}

func validate(v any) error {
	if fields := validator.Struct(v); fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// resourcePath joins route and an escaped, non-blank id.
func resourcePath(route string, field string, id string, suffix ...string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", newValidationError(field, "is required")
	}
	path := route + "/" + url.PathEscape(id)
	for _, s := range suffix {
		path += "/" + s
	}
	return path, nil
}
