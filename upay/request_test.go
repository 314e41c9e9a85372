package upay

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "/"},
		{input: "/", want: "/"},
		{input: "payment-links", want: "/payment-links"},
		{input: "/payment-links", want: "/payment-links"},
		{input: "//payment-links", want: "/payment-links"},
		{input: "transactions/tx_1/refund", want: "/transactions/tx_1/refund"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := normalizePath(tt.input); got != tt.want {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeQuery(t *testing.T) {
	t.Parallel()
	var nilLimit *int
	two := 2
	tests := []struct {
		name    string
		params  Query
		want    string
		wantErr bool
	}{
		{name: "nil params", params: nil, want: ""},
		{name: "empty params", params: Query{}, want: ""},
		{name: "nil value dropped", params: Query{"page": 2, "limit": nil}, want: "page=2"},
		{name: "typed nil pointer dropped", params: Query{"page": &two, "limit": nilLimit}, want: "page=2"},
		{name: "all nil", params: Query{"limit": nil}, want: ""},
		{name: "keys sorted", params: Query{"status": "PAID", "limit": 10, "page": 1}, want: "limit=10&page=1&status=PAID"},
		{name: "escaped", params: Query{"q": "a b&c"}, want: "q=a+b%26c"},
		{name: "bool", params: Query{"active": true}, want: "active=true"},
		{name: "float", params: Query{"ratio": 1.5}, want: "ratio=1.5"},
		{name: "named string type", params: Query{"status": TransactionStatusPaid}, want: "status=PAID"},
		{
			name:   "time",
			params: Query{"since": time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
			want:   "since=2026-01-02T03%3A04%3A05Z",
		},
		{name: "unsupported type", params: Query{"ids": []string{"a"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := encodeQuery(tt.params)
			if (err != nil) != tt.wantErr {
				t.Fatalf("encodeQuery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("encodeQuery() error = %T, want *ValidationError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("encodeQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		baseURL  string
		version  string
		endpoint string
		query    Query
		want     string
		wantErr  bool
	}{
		{
			name:     "endpoint without slash",
			baseURL:  "https://host.example",
			version:  "v1",
			endpoint: "payment-links",
			want:     "https://host.example/api/v1/payment-links",
		},
		{
			name:     "endpoint with slash",
			baseURL:  "https://host.example",
			version:  "v1",
			endpoint: "/payment-links",
			want:     "https://host.example/api/v1/payment-links",
		},
		{
			name:     "with query",
			baseURL:  "https://host.example",
			version:  "v2",
			endpoint: "/transactions",
			query:    Query{"page": 2, "limit": nil},
			want:     "https://host.example/api/v2/transactions?page=2",
		},
		{
			name:     "unparseable base",
			baseURL:  "http://[::1",
			version:  "v1",
			endpoint: "/x",
			wantErr:  true,
		},
		{
			name:     "relative base",
			baseURL:  "host.example",
			version:  "v1",
			endpoint: "/x",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := buildURL(tt.baseURL, tt.version, tt.endpoint, tt.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var urlErr *InvalidURLError
				if !errors.As(err, &urlErr) {
					t.Errorf("buildURL() error = %T, want *InvalidURLError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("buildURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
