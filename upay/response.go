package upay

import (
	"bytes"
	"fmt"
	"reflect"

	go_json "github.com/goccy/go-json"
)

var emptyObject = []byte("{}")

// Response is a successful API reply. Raw always holds valid JSON: an empty,
// null or unparseable body is replaced by an empty object.
type Response struct {
	StatusCode int
	Raw        []byte
	Value      any
}

func newResponse(status int, raw []byte) *Response {
	var value any
	if len(bytes.TrimSpace(raw)) == 0 || go_json.Unmarshal(raw, &value) != nil || value == nil {
		return &Response{StatusCode: status, Raw: emptyObject, Value: map[string]any{}}
	}
	return &Response{StatusCode: status, Raw: raw, Value: value}
}

// Object returns the body as a JSON object, or nil if it is another kind.
func (r *Response) Object() map[string]any {
	obj, _ := r.Value.(map[string]any)
	return obj
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := go_json.Unmarshal(r.Raw, v); err != nil {
		return &DecodeError{Target: typeName(v), Err: err}
	}
	return nil
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// unwrap returns the first non-null member named by keys, or the whole body
// when none is present. The API wraps single entities inconsistently.
func unwrap(raw []byte, keys ...string) []byte {
	var envelope map[string]go_json.RawMessage
	if err := go_json.Unmarshal(raw, &envelope); err != nil {
		return raw
	}
	for _, key := range keys {
		if v, ok := envelope[key]; ok && !isNull(v) {
			return v
		}
	}
	return raw
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeEntity[T any](resp *Response, keys ...string) (*T, error) {
	var out T
	if err := go_json.Unmarshal(unwrap(resp.Raw, keys...), &out); err != nil {
		return nil, &DecodeError{Target: fmt.Sprintf("%T", out), Err: err}
	}
	return &out, nil
}

func decodeList[T any](resp *Response, key string) (*PaginatedResponse[T], error) {
	var envelope map[string]go_json.RawMessage
	if err := go_json.Unmarshal(resp.Raw, &envelope); err != nil {
		// A bare array is a list without pagination.
		var items []T
		if err := go_json.Unmarshal(resp.Raw, &items); err != nil {
			return nil, &DecodeError{Target: fmt.Sprintf("[]%T", *new(T)), Err: err}
		}
		return &PaginatedResponse[T]{Data: items, Pagination: defaultPagination(len(items))}, nil
	}

	out := &PaginatedResponse[T]{Data: []T{}}

	for _, k := range []string{key, "data"} {
		if v, ok := envelope[k]; ok && !isNull(v) {
			if err := go_json.Unmarshal(v, &out.Data); err != nil {
				return nil, &DecodeError{Target: fmt.Sprintf("[]%T", *new(T)), Err: err}
			}
			break
		}
	}

	out.Pagination = defaultPagination(0)
	if v, ok := envelope["pagination"]; ok && !isNull(v) {
		if err := go_json.Unmarshal(v, &out.Pagination); err != nil {
			return nil, &DecodeError{Target: "Pagination", Err: err}
		}
	}

	if v, ok := envelope["message"]; ok && !isNull(v) {
		_ = go_json.Unmarshal(v, &out.Message)
	}

	return out, nil
}
