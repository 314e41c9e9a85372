package upay

import (
	"context"
)

type transactionService struct {
	transport *Transport
}

func (s *transactionService) Create(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error) {
	const route = "/transactions"

	if req == nil {
		return nil, nilRequestError()
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	resp, err := s.transport.Post(ctx, route, req)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Transaction](resp, "transaction", "data")
}

func (s *transactionService) List(ctx context.Context, params *TransactionListParams) (*PaginatedResponse[Transaction], error) {
	const route = "/transactions"

	if params == nil {
		params = &TransactionListParams{}
	}
	if err := validate(params); err != nil {
		return nil, err
	}

	query := params.query()
	query["status"] = optional(string(params.Status))
	query["paymentMethod"] = optional(string(params.PaymentMethod))
	query["clientId"] = optional(params.ClientID)

	resp, err := s.transport.Get(ctx, route, query)
	if err != nil {
		return nil, err
	}
	return decodeList[Transaction](resp, "transactions")
}

func (s *transactionService) Get(ctx context.Context, id string) (*Transaction, error) {
	const route = "/transactions"

	path, err := resourcePath(route, "id", id)
	if err != nil {
		return nil, err
	}

	resp, err := s.transport.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Transaction](resp, "transaction", "data")
}

// Process sends req, which may be nil for payment methods that need no
// extra data.
func (s *transactionService) Process(ctx context.Context, id string, req *ProcessTransactionRequest) (*Transaction, error) {
	path, err := resourcePath("/transactions", "id", id, "process")
	if err != nil {
		return nil, err
	}

	var body any
	if req != nil {
		if err := validate(req); err != nil {
			return nil, err
		}
		body = req
	}

	return s.action(ctx, path, body)
}

func (s *transactionService) Capture(ctx context.Context, id string) (*Transaction, error) {
	path, err := resourcePath("/transactions", "id", id, "capture")
	if err != nil {
		return nil, err
	}
	return s.action(ctx, path, nil)
}

func (s *transactionService) Cancel(ctx context.Context, id string) (*Transaction, error) {
	path, err := resourcePath("/transactions", "id", id, "cancel")
	if err != nil {
		return nil, err
	}
	return s.action(ctx, path, nil)
}

func (s *transactionService) Refund(ctx context.Context, id string, amountCents *int64) (*Transaction, error) {
	path, err := resourcePath("/transactions", "id", id, "refund")
	if err != nil {
		return nil, err
	}

	body := struct {
		AmountCents *int64 `json:"amountCents,omitempty" validate:"omitempty,gt=0"`
	}{AmountCents: amountCents}
	if err := validate(&body); err != nil {
		return nil, err
	}

	return s.action(ctx, path, &body)
}

func (s *transactionService) action(ctx context.Context, path string, body any) (*Transaction, error) {
	resp, err := s.transport.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Transaction](resp, "transaction", "data")
}
