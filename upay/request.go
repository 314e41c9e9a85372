package upay

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Query holds request query parameters. Nil values, including typed nil
// pointers, are omitted from the encoded URL.
type Query map[string]any

// Request describes a single API call before it is sent.
type Request struct {
	Method string
	// Path is relative to /api/{version}; a leading slash is added if missing.
	Path   string
	Query  Query
	Body   any
	Public bool
}

func normalizePath(endpoint string) string {
	return "/" + strings.TrimLeft(endpoint, "/")
}

func buildURL(baseURL string, version string, endpoint string, query Query) (string, error) {
	raw := baseURL + "/api/" + version + normalizePath(endpoint)

	qs, err := encodeQuery(query)
	if err != nil {
		return "", err
	}
	if qs != "" {
		raw += "?" + qs
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", &InvalidURLError{URL: raw, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return "", &InvalidURLError{URL: raw}
	}
	return raw, nil
}

// encodeQuery renders params in key order with standard query escaping.
func encodeQuery(params Query) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	values := make(url.Values, len(params))
	var invalid map[string]string
	for key, value := range params {
		s, ok, err := formatQueryValue(value)
		if err != nil {
			if invalid == nil {
				invalid = make(map[string]string)
			}
			invalid["query."+key] = err.Error()
			continue
		}
		if ok {
			values.Set(key, s)
		}
	}
	if invalid != nil {
		return "", &ValidationError{Fields: invalid}
	}

	return values.Encode(), nil
}

// formatQueryValue reports ok=false for values that should be omitted.
func formatQueryValue(value any) (string, bool, error) {
	if value == nil {
		return "", false, nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false, nil
		}
		rv = rv.Elem()
	}

	switch v := rv.Interface().(type) {
	case time.Time:
		return v.Format(time.RFC3339), true, nil
	case fmt.Stringer:
		return v.String(), true, nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	default:
		return "", false, fmt.Errorf("unsupported type %s", rv.Type())
	}
}
