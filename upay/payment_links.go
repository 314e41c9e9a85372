package upay

import (
	"context"
	"net/url"
	"strings"
)

const defaultCheckoutURL = "https://checkout.upaybr.com"

type paymentLinkService struct {
	transport   *Transport
	checkoutURL string
}

func (s *paymentLinkService) Create(ctx context.Context, req *CreatePaymentLinkRequest) (*PaymentLink, error) {
	const route = "/payment-links"

	if req == nil {
		return nil, nilRequestError()
	}
	body := *req
	body.Title = strings.TrimSpace(body.Title)
	if body.Currency == "" {
		body.Currency = DefaultCurrency
	}
	if body.Status == "" {
		body.Status = PaymentLinkStatusActive
	}
	if err := validate(&body); err != nil {
		return nil, err
	}

	resp, err := s.transport.Post(ctx, route, &body)
	if err != nil {
		return nil, err
	}
	return decodeEntity[PaymentLink](resp, "paymentLink", "data")
}

func (s *paymentLinkService) List(ctx context.Context, params *PaymentLinkListParams) (*PaginatedResponse[PaymentLink], error) {
	const route = "/payment-links"

	if params == nil {
		params = &PaymentLinkListParams{}
	}
	if err := validate(params); err != nil {
		return nil, err
	}

	query := params.query()
	query["status"] = optional(string(params.Status))

	resp, err := s.transport.Get(ctx, route, query)
	if err != nil {
		return nil, err
	}
	return decodeList[PaymentLink](resp, "paymentLinks")
}

func (s *paymentLinkService) Get(ctx context.Context, id string) (*PaymentLink, error) {
	const route = "/payment-links"

	path, err := resourcePath(route, "id", id)
	if err != nil {
		return nil, err
	}

	resp, err := s.transport.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[PaymentLink](resp, "paymentLink", "data")
}

func (s *paymentLinkService) GetBySlug(ctx context.Context, slug string) (*PaymentLink, error) {
	const route = "/payment-links/slug"

	path, err := resourcePath(route, "slug", slug)
	if err != nil {
		return nil, err
	}

	resp, err := s.transport.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[PaymentLink](resp, "paymentLink", "data")
}

func (s *paymentLinkService) Update(ctx context.Context, id string, req *UpdatePaymentLinkRequest) (*PaymentLink, error) {
	const route = "/payment-links"

	path, err := resourcePath(route, "id", id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	resp, err := s.transport.Patch(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return decodeEntity[PaymentLink](resp, "paymentLink", "data")
}

func (s *paymentLinkService) Delete(ctx context.Context, id string) error {
	const route = "/payment-links"

	path, err := resourcePath(route, "id", id)
	if err != nil {
		return err
	}

	_, err = s.transport.Delete(ctx, path)
	return err
}

func (s *paymentLinkService) CheckoutURL(slug string) string {
	return s.checkoutURL + "/" + url.PathEscape(slug)
}
