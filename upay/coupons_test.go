package upay

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCouponsValidate(t *testing.T) {
	t.Parallel()

	pct := 10.0
	tests := []struct {
		name string
		body string
		want *CouponValidation
	}{
		{
			name: "valid coupon",
			body: `{"valid":true,"discountAmount":1000,"finalAmount":9000,"coupon":{"discountPercentage":10}}`,
			want: &CouponValidation{Valid: true, DiscountCents: 1000, DiscountPercentage: &pct, FinalAmountCents: 9000},
		},
		{
			name: "invalid coupon with error",
			body: `{"valid":false,"error":"Cupom expirado"}`,
			want: &CouponValidation{Valid: false, FinalAmountCents: 10000, Message: "Cupom expirado"},
		},
		{
			name: "message fallback",
			body: `{"valid":false,"message":"Cupom inexistente"}`,
			want: &CouponValidation{Valid: false, FinalAmountCents: 10000, Message: "Cupom inexistente"},
		},
		{
			name: "empty body",
			body: ``,
			want: &CouponValidation{FinalAmountCents: 10000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newTestClient(t, http.StatusOK, tt.body)
			got, err := c.Coupons.Validate(context.Background(), &ValidateCouponRequest{Code: " SAVE10 ", AmountCents: 10000})
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}

			req := rec.last(t)
			if req.Path != "/api/v1/coupons/validate" {
				t.Errorf("path = %q, want /api/v1/coupons/validate", req.Path)
			}
			if auth := req.Header.Get("Authorization"); auth != "" {
				t.Errorf("Authorization = %q, want none", auth)
			}
			if want := `{"code":"SAVE10","amountCents":10000,"productIds":[]}`; req.Body != want {
				t.Errorf("body = %s, want %s", req.Body, want)
			}
		})
	}
}

func TestCouponsValidateErrors(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusOK, `{}`)
	_, err := c.Coupons.Validate(context.Background(), &ValidateCouponRequest{Code: "  ", AmountCents: 50})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	want := map[string]string{"code": "is required", "amountCents": "must be at least 100"}
	if diff := cmp.Diff(want, verr.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	if n := len(rec.all()); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

func TestCouponsValidateAPIError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.StatusBadRequest, `{"message":"Cupom inválido"}`)
	_, err := c.Coupons.Validate(context.Background(), &ValidateCouponRequest{Code: "X", AmountCents: 100})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Validate() error = %v, want *APIError", err)
	}
	if apiErr.Message != "Cupom inválido" {
		t.Errorf("Message = %q, want Cupom inválido", apiErr.Message)
	}
}
