package upay

type PaymentLinkStatus string

const (
	PaymentLinkStatusActive   PaymentLinkStatus = "ACTIVE"
	PaymentLinkStatusInactive PaymentLinkStatus = "INACTIVE"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusPaid      TransactionStatus = "PAID"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
	TransactionStatusRefunded  TransactionStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodBoleto     PaymentMethod = "BOLETO"
)

// DefaultCurrency is applied to payment links created without a currency.
const DefaultCurrency = "BRL"

// MinAmountCents is the smallest chargeable amount (R$ 1,00).
const MinAmountCents = 100
