package upay

import (
	"context"
	"strings"
)

type couponService struct {
	transport *Transport
}

type couponResult struct {
	Valid          bool          `json:"valid"`
	DiscountAmount int64         `json:"discountAmount"`
	FinalAmount    int64         `json:"finalAmount"`
	Error          string        `json:"error"`
	Message        string        `json:"message"`
	Coupon         *couponDetail `json:"coupon"`
}

type couponDetail struct {
	DiscountPercentage *float64 `json:"discountPercentage"`
}

func (s *couponService) Validate(ctx context.Context, req *ValidateCouponRequest) (*CouponValidation, error) {
	const route = "/coupons/validate"

	if req == nil {
		return nil, nilRequestError()
	}
	body := *req
	body.Code = strings.TrimSpace(body.Code)
	if body.ProductIDs == nil {
		body.ProductIDs = []string{}
	}
	if err := validate(&body); err != nil {
		return nil, err
	}

	resp, err := s.transport.PostPublic(ctx, route, &body)
	if err != nil {
		return nil, err
	}

	var result couponResult
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}

	out := &CouponValidation{
		Valid:            result.Valid,
		DiscountCents:    result.DiscountAmount,
		FinalAmountCents: result.FinalAmount,
		Message:          result.Error,
	}
	if out.FinalAmountCents == 0 {
		out.FinalAmountCents = body.AmountCents
	}
	if out.Message == "" {
		out.Message = result.Message
	}
	if result.Coupon != nil {
		out.DiscountPercentage = result.Coupon.DiscountPercentage
	}
	return out, nil
}
