package upay

import "context"

type PaymentLinkService interface {
	Create(ctx context.Context, req *CreatePaymentLinkRequest) (*PaymentLink, error)
	List(ctx context.Context, params *PaymentLinkListParams) (*PaginatedResponse[PaymentLink], error)
	Get(ctx context.Context, id string) (*PaymentLink, error)
	GetBySlug(ctx context.Context, slug string) (*PaymentLink, error)
	Update(ctx context.Context, id string, req *UpdatePaymentLinkRequest) (*PaymentLink, error)
	Delete(ctx context.Context, id string) error
	// CheckoutURL is computed locally; no request is sent.
	CheckoutURL(slug string) string
}

type TransactionService interface {
	Create(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error)
	List(ctx context.Context, params *TransactionListParams) (*PaginatedResponse[Transaction], error)
	Get(ctx context.Context, id string) (*Transaction, error)
	Process(ctx context.Context, id string, req *ProcessTransactionRequest) (*Transaction, error)
	Capture(ctx context.Context, id string) (*Transaction, error)
	Cancel(ctx context.Context, id string) (*Transaction, error)
	// Refund refunds amountCents, or the full amount when nil.
	Refund(ctx context.Context, id string, amountCents *int64) (*Transaction, error)
}

type ProductService interface {
	Create(ctx context.Context, req *CreateProductRequest) (*Product, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[Product], error)
	Get(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, id string, req *UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type CouponService interface {
	// Validate checks a coupon code without credentials.
	Validate(ctx context.Context, req *ValidateCouponRequest) (*CouponValidation, error)
}

type CustomerService interface {
	Create(ctx context.Context, req *CreateCustomerRequest) (*Customer, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[Customer], error)
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*Customer, error)
}
