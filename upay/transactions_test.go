package upay

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransactionsCreate(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusCreated,
		`{"transaction":{"id":"tx_1","product":"Course","amountCents":5000,"status":"PENDING","paymentMethod":"PIX","pixCopyPaste":"000201"}}`)

	got, err := c.Transactions.Create(context.Background(), &CreateTransactionRequest{
		Product:       "Course",
		AmountCents:   5000,
		PaymentMethod: PaymentMethodPix,
		Client:        &TransactionClient{Name: "Ana", Email: "ana@example.com"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := &Transaction{
		ID:            "tx_1",
		Product:       "Course",
		AmountCents:   5000,
		Status:        TransactionStatusPending,
		PaymentMethod: PaymentMethodPix,
		PixCopyPaste:  "000201",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Create() mismatch (-want +got):\n%s", diff)
	}

	wantBody := `{"product":"Course","amountCents":5000,"paymentMethod":"PIX","client":{"name":"Ana","email":"ana@example.com"}}`
	if body := rec.last(t).Body; body != wantBody {
		t.Errorf("body = %s, want %s", body, wantBody)
	}
}

func TestTransactionsCreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *CreateTransactionRequest
		want map[string]string
	}{
		{
			name: "missing product",
			req:  &CreateTransactionRequest{AmountCents: 100},
			want: map[string]string{"product": "is required"},
		},
		{
			name: "amount below minimum",
			req:  &CreateTransactionRequest{Product: "Course", AmountCents: 50},
			want: map[string]string{"amountCents": "must be at least 100"},
		},
		{
			name: "client without email",
			req:  &CreateTransactionRequest{Product: "Course", AmountCents: 100, Client: &TransactionClient{Name: "Ana"}},
			want: map[string]string{"client.email": "is required"},
		},
		{
			name: "unknown payment method",
			req:  &CreateTransactionRequest{Product: "Course", AmountCents: 100, PaymentMethod: "CASH"},
			want: map[string]string{"paymentMethod": "must be one of [PIX CREDIT_CARD BOLETO]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newTestClient(t, http.StatusOK, `{}`)
			_, err := c.Transactions.Create(context.Background(), tt.req)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create() error = %v, want *ValidationError", err)
			}
			if diff := cmp.Diff(tt.want, verr.Fields); diff != "" {
				t.Errorf("Fields mismatch (-want +got):\n%s", diff)
			}
			if n := len(rec.all()); n != 0 {
				t.Errorf("server saw %d requests, want 0", n)
			}
		})
	}
}

func TestTransactionsList(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusOK,
		`{"transactions":[{"id":"tx_1","status":"PAID"}],"pagination":{"total":1,"page":1,"limit":20,"hasNext":false}}`)

	got, err := c.Transactions.List(context.Background(), &TransactionListParams{
		ListParams:    ListParams{Limit: Int(20)},
		Status:        TransactionStatusPaid,
		PaymentMethod: PaymentMethodCreditCard,
		ClientID:      "cl_1",
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := &PaginatedResponse[Transaction]{
		Data:       []Transaction{{ID: "tx_1", Status: TransactionStatusPaid}},
		Pagination: Pagination{Total: 1, Page: 1, Limit: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	if got.HasMore() {
		t.Error("HasMore() = true, want false")
	}

	wantQuery := "clientId=cl_1&limit=20&paymentMethod=CREDIT_CARD&status=PAID"
	if q := rec.last(t).Query; q != wantQuery {
		t.Errorf("query = %q, want %q", q, wantQuery)
	}
}

func TestTransactionsActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		call     func(TransactionService) (*Transaction, error)
		wantPath string
		wantBody string
	}{
		{
			name:     "get",
			call:     func(s TransactionService) (*Transaction, error) { return s.Get(context.Background(), "tx_1") },
			wantPath: "/api/v1/transactions/tx_1",
		},
		{
			name: "process with card",
			call: func(s TransactionService) (*Transaction, error) {
				return s.Process(context.Background(), "tx_1", &ProcessTransactionRequest{
					CardData:     &CardData{Number: "4111111111111111", ExpiryMonth: "12", ExpiryYear: "2030", CVV: "123"},
					Installments: 3,
				})
			},
			wantPath: "/api/v1/transactions/tx_1/process",
			wantBody: `{"cardData":{"number":"4111111111111111","expiryMonth":"12","expiryYear":"2030","cvv":"123"},"installments":3}`,
		},
		{
			name:     "process without data",
			call:     func(s TransactionService) (*Transaction, error) { return s.Process(context.Background(), "tx_1", nil) },
			wantPath: "/api/v1/transactions/tx_1/process",
		},
		{
			name:     "capture",
			call:     func(s TransactionService) (*Transaction, error) { return s.Capture(context.Background(), "tx_1") },
			wantPath: "/api/v1/transactions/tx_1/capture",
		},
		{
			name:     "cancel",
			call:     func(s TransactionService) (*Transaction, error) { return s.Cancel(context.Background(), "tx_1") },
			wantPath: "/api/v1/transactions/tx_1/cancel",
		},
		{
			name:     "partial refund",
			call:     func(s TransactionService) (*Transaction, error) { return s.Refund(context.Background(), "tx_1", Int64(1500)) },
			wantPath: "/api/v1/transactions/tx_1/refund",
			wantBody: `{"amountCents":1500}`,
		},
		{
			name:     "full refund",
			call:     func(s TransactionService) (*Transaction, error) { return s.Refund(context.Background(), "tx_1", nil) },
			wantPath: "/api/v1/transactions/tx_1/refund",
			wantBody: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newTestClient(t, http.StatusOK, `{"data":{"id":"tx_1","status":"PAID"}}`)
			got, err := tt.call(c.Transactions)
			if err != nil {
				t.Fatalf("call error = %v", err)
			}
			if got.ID != "tx_1" || got.Status != TransactionStatusPaid {
				t.Errorf("transaction = %+v, want tx_1 PAID", got)
			}

			req := rec.last(t)
			if req.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", req.Path, tt.wantPath)
			}
			if req.Body != tt.wantBody {
				t.Errorf("body = %q, want %q", req.Body, tt.wantBody)
			}
		})
	}
}

func TestTransactionsRefundInvalidAmount(t *testing.T) {
	t.Parallel()

	for _, amount := range []int64{0, -100} {
		c, rec := newTestClient(t, http.StatusOK, `{}`)
		_, err := c.Transactions.Refund(context.Background(), "tx_1", Int64(amount))

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Refund(%d) error = %v, want *ValidationError", amount, err)
		}
		if diff := cmp.Diff(map[string]string{"amountCents": "must be greater than 0"}, verr.Fields); diff != "" {
			t.Errorf("Refund(%d) Fields mismatch (-want +got):\n%s", amount, diff)
		}
		if n := len(rec.all()); n != 0 {
			t.Errorf("server saw %d requests, want 0", n)
		}
	}
}

func TestTransactionsDecodeError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.StatusOK, `{"transaction":{"id":42}}`)
	_, err := c.Transactions.Get(context.Background(), "tx_1")

	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("Get() error = %v, want *DecodeError", err)
	}
}
