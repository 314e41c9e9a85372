package upay

import "time"

type PaymentLinkSettings struct {
	PixEnabled               *bool    `json:"pixEnabled,omitempty"`
	BoletoEnabled            *bool    `json:"boletoEnabled,omitempty"`
	CreditCardEnabled        *bool    `json:"creditCardEnabled,omitempty"`
	MaxInstallments          *int     `json:"maxInstallments,omitempty" validate:"omitempty,gt=0"`
	InterestFreeInstallments *int     `json:"interestFreeInstallments,omitempty"`
	InterestRate             *float64 `json:"interestRate,omitempty"`
	RequirePhone             *bool    `json:"requirePhone,omitempty"`
	RequireAddress           *bool    `json:"requireAddress,omitempty"`
}

type PaymentLinkItem struct {
	ProductID string `json:"productId" validate:"notblank"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

type PaymentLink struct {
	ID          string               `json:"id"`
	Slug        string               `json:"slug"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	AmountCents int64                `json:"amountCents"`
	Currency    string               `json:"currency"`
	Status      PaymentLinkStatus    `json:"status"`
	ExpiresAt   *time.Time           `json:"expiresAt,omitempty"`
	RedirectURL string               `json:"redirectUrl,omitempty"`
	Settings    *PaymentLinkSettings `json:"settings,omitempty"`
	Products    []PaymentLinkProduct `json:"products,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type PaymentLinkProduct struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   ProductSnapshot `json:"product"`
}

// ProductSnapshot is the product summary embedded in other resources.
type ProductSnapshot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

// CreatePaymentLinkRequest needs either AmountCents or Products.
type CreatePaymentLinkRequest struct {
	Title         string               `json:"title" validate:"notblank,min=3"`
	Description   string               `json:"description,omitempty"`
	AmountCents   int64                `json:"amountCents,omitempty" validate:"required_without=Products,omitempty,min=100"`
	Products      []PaymentLinkItem    `json:"products,omitempty" validate:"required_without=AmountCents,omitempty,dive"`
	Currency      string               `json:"currency,omitempty"`
	ExpiresAt     *time.Time           `json:"expiresAt,omitempty"`
	RedirectURL   string               `json:"redirectUrl,omitempty" validate:"omitempty,url"`
	Settings      *PaymentLinkSettings `json:"settings,omitempty"`
	Status        PaymentLinkStatus    `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	MetaPixelCode string               `json:"metaPixelCode,omitempty"`
	StockQuantity *int                 `json:"stockQuantity,omitempty" validate:"omitempty,min=0"`
	StockEnabled  *bool                `json:"stockEnabled,omitempty"`
}

// UpdatePaymentLinkRequest sends only the fields that are set.
type UpdatePaymentLinkRequest struct {
	Title       *string              `json:"title,omitempty" validate:"omitempty,notblank,min=3"`
	Description *string              `json:"description,omitempty"`
	AmountCents *int64               `json:"amountCents,omitempty" validate:"omitempty,min=100"`
	Status      *PaymentLinkStatus   `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	ExpiresAt   *time.Time           `json:"expiresAt,omitempty"`
	RedirectURL *string              `json:"redirectUrl,omitempty" validate:"omitempty,url"`
	Settings    *PaymentLinkSettings `json:"settings,omitempty"`
}

type PaymentLinkListParams struct {
	ListParams
	Status PaymentLinkStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type Transaction struct {
	ID            string               `json:"id"`
	DisplayID     string               `json:"displayId,omitempty"`
	Product       string               `json:"product"`
	AmountCents   int64                `json:"amountCents"`
	Status        TransactionStatus    `json:"status"`
	PaymentMethod PaymentMethod        `json:"paymentMethod"`
	Client        *Customer            `json:"client,omitempty"`
	PaymentLink   *PaymentLinkSnapshot `json:"paymentLink,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	PaidAt        *time.Time           `json:"paidAt,omitempty"`
	PixQRCode     string               `json:"pixQrCode,omitempty"`
	PixCopyPaste  string               `json:"pixCopyPaste,omitempty"`
	BoletoBarcode string               `json:"boletoBarcode,omitempty"`
	BoletoURL     string               `json:"boletoUrl,omitempty"`
	Metadata      map[string]any       `json:"metadata,omitempty"`
}

type PaymentLinkSnapshot struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// TransactionClient registers the buyer inline; Email is mandatory.
type TransactionClient struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"notblank,email"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type CreateTransactionRequest struct {
	Product       string             `json:"product" validate:"notblank"`
	AmountCents   int64              `json:"amountCents" validate:"min=100"`
	PaymentMethod PaymentMethod      `json:"paymentMethod,omitempty" validate:"omitempty,oneof=PIX CREDIT_CARD BOLETO"`
	ClientID      string             `json:"clientId,omitempty"`
	Client        *TransactionClient `json:"client,omitempty"`
	PaymentLinkID string             `json:"paymentLinkId,omitempty"`
	Metadata      map[string]any     `json:"metadata,omitempty"`
	CouponCode    string             `json:"couponCode,omitempty"`
}

// CardData carries raw card details for credit card processing.
type CardData struct {
	Number      string `json:"number" validate:"notblank"`
	HolderName  string `json:"holderName,omitempty"`
	ExpiryMonth string `json:"expiryMonth" validate:"notblank"`
	ExpiryYear  string `json:"expiryYear" validate:"notblank"`
	CVV         string `json:"cvv" validate:"notblank"`
	Brand       string `json:"brand,omitempty"`
}

type ProcessTransactionRequest struct {
	CardData     *CardData `json:"cardData,omitempty"`
	Installments int       `json:"installments,omitempty" validate:"omitempty,min=1"`
}

type TransactionListParams struct {
	ListParams
	Status        TransactionStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING PAID FAILED CANCELLED REFUNDED"`
	PaymentMethod PaymentMethod     `json:"paymentMethod,omitempty" validate:"omitempty,oneof=PIX CREDIT_CARD BOLETO"`
	ClientID      string            `json:"clientId,omitempty"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Stock       *int      `json:"stock,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	SKU         string    `json:"sku,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents" validate:"min=100"`
	Stock       *int   `json:"stock,omitempty" validate:"omitempty,min=0"`
	ImageURL    string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	SKU         string `json:"sku,omitempty"`
	Category    string `json:"category,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"priceCents,omitempty" validate:"omitempty,min=100"`
	Stock       *int    `json:"stock,omitempty" validate:"omitempty,min=0"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	SKU         *string `json:"sku,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// Customer is a buyer registered with the merchant (the API's "client").
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Document  string    `json:"document,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank,email"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type UpdateCustomerRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,notblank"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Document *string `json:"document,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type ValidateCouponRequest struct {
	Code          string   `json:"code" validate:"notblank"`
	AmountCents   int64    `json:"amountCents" validate:"min=100"`
	PaymentLinkID string   `json:"paymentLinkId,omitempty"`
	ProductIDs    []string `json:"productIds"`
}

// CouponValidation is the normalized result of a coupon check.
type CouponValidation struct {
	Valid              bool     `json:"valid"`
	DiscountCents      int64    `json:"discountCents"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	FinalAmountCents   int64    `json:"finalAmountCents"`
	Message            string   `json:"message,omitempty"`
}
