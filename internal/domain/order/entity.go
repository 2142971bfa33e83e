package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidState = errors.New("order is not in a state that allows this transition")
	ErrNoItems      = errors.New("order must contain at least one line item")
)

// LineItem binds an offering, a quantity and the unit price snapshotted at
// reservation time. The snapshot is immutable: a price change on the batch
// after checkout never affects an existing order.
type LineItem struct {
	ID             uuid.UUID
	BatchID        uuid.UUID
	Quantity       int32
	UnitPriceCents int64
}

type Order struct {
	id            uuid.UUID
	customer      CustomerInfo
	quote         Quote
	status        Status
	paymentMethod PaymentMethod
	paymentRef    *string
	userID        *uuid.UUID
	items         []LineItem
	createdAt     time.Time
}

// NewOrder builds an order whose initial status follows the payment method:
// instant methods start PENDING, offline methods start PENDING_APPROVAL.
func NewOrder(
	customer CustomerInfo,
	quote Quote,
	method PaymentMethod,
	userID *uuid.UUID,
	items []LineItem,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	status := StatusPending
	if method.IsOffline() {
		status = StatusPendingApproval
	}

	return &Order{
		id:            uuid.New(),
		customer:      customer.Normalized(),
		quote:         quote,
		status:        status,
		paymentMethod: method,
		userID:        userID,
		items:         items,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	customer CustomerInfo,
	quote Quote,
	status Status,
	method PaymentMethod,
	paymentRef *string,
	userID *uuid.UUID,
	items []LineItem,
	createdAt time.Time,
) *Order {
	return &Order{
		id:            id,
		customer:      customer,
		quote:         quote,
		status:        status,
		paymentMethod: method,
		paymentRef:    paymentRef,
		userID:        userID,
		items:         items,
		createdAt:     createdAt,
	}
}

// MarkPaid confirms payment. Valid from PENDING (webhook) and
// PENDING_APPROVAL (producer approval). Callers treat an already-PAID order
// as an idempotent no-op before reaching this method.
func (o *Order) MarkPaid() error {
	switch o.status {
	case StatusPending, StatusPendingApproval:
		o.status = StatusPaid
		return nil
	default:
		return ErrInvalidState
	}
}

// Reject is the producer's denial of an offline-payment order. Only valid
// from PENDING_APPROVAL; the caller releases held inventory in the same
// transaction.
func (o *Order) Reject() error {
	if o.status != StatusPendingApproval {
		return ErrInvalidState
	}
	o.status = StatusRejected
	return nil
}

// Expire sweeps an abandoned instant-payment order whose payment never
// arrived. Only valid from PENDING; ends REJECTED like a producer denial so
// downstream views need no extra state.
func (o *Order) Expire() error {
	if o.status != StatusPending {
		return ErrInvalidState
	}
	o.status = StatusRejected
	return nil
}

func (o *Order) SetPaymentRef(ref string) {
	o.paymentRef = &ref
}

func (o *Order) IsPaid() bool { return o.status == StatusPaid }

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) Customer() CustomerInfo       { return o.customer }
func (o *Order) Pricing() Quote               { return o.quote }
func (o *Order) Total() Money                 { return o.quote.Total }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentRef() *string          { return o.paymentRef }
func (o *Order) UserID() *uuid.UUID           { return o.userID }
func (o *Order) Items() []LineItem            { return o.items }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }

// Ticket is one redeemable admission unit. Instant-payment tickets get a
// signed credential at creation; approval-flow tickets stay placeholders
// until the order is confirmed.
type Ticket struct {
	ID          uuid.UUID
	Code        string
	SignedToken *string
	IsUsed      bool
	OrderID     uuid.UUID
	BatchID     uuid.UUID
	SeatID      *uuid.UUID
}

func NewTicket(orderID, batchID uuid.UUID, seatID *uuid.UUID) *Ticket {
	return &Ticket{
		ID:      uuid.New(),
		Code:    uuid.NewString(),
		OrderID: orderID,
		BatchID: batchID,
		SeatID:  seatID,
	}
}
