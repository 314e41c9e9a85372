package webhook

import (
	"errors"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
)

type EventType string

const (
	EventTransactionCreated   EventType = "transaction.created"
	EventTransactionPaid      EventType = "transaction.paid"
	EventTransactionFailed    EventType = "transaction.failed"
	EventTransactionCancelled EventType = "transaction.cancelled"
	EventTransactionRefunded  EventType = "transaction.refunded"
	EventPaymentLinkCreated   EventType = "payment_link.created"
	EventPaymentLinkUpdated   EventType = "payment_link.updated"
	EventPaymentLinkDeleted   EventType = "payment_link.deleted"
)

// Known reports whether t is one of the documented event types.
func (t EventType) Known() bool {
	switch t {
	case EventTransactionCreated, EventTransactionPaid, EventTransactionFailed,
		EventTransactionCancelled, EventTransactionRefunded,
		EventPaymentLinkCreated, EventPaymentLinkUpdated, EventPaymentLinkDeleted:
		return true
	}
	return false
}

var ErrMalformedEvent = errors.New("webhook: malformed event")

type Event struct {
	ID        string             `json:"id"`
	Type      EventType          `json:"type"`
	Data      go_json.RawMessage `json:"data"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ParseEvent decodes a delivery body. Unknown event types are accepted so
// receivers keep working when new types are introduced.
func ParseEvent(body []byte) (*Event, error) {
	var e Event
	if err := go_json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	if e.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedEvent)
	}
	return &e, nil
}

// DecodeData unmarshals the event payload, typically into *upay.Transaction
// or *upay.PaymentLink.
func (e *Event) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("%w: no data", ErrMalformedEvent)
	}
	if err := go_json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decoding %s data: %w", e.Type, err)
	}
	return nil
}
