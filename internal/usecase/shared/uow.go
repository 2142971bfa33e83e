package shared

import (
	"context"
	"time"

	"ticketera/internal/domain/inventory"
	"ticketera/internal/domain/order"
	"ticketera/internal/domain/promo"
	"ticketera/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTxRetryExhausted marks a transaction abandoned after its
// serialization-conflict retries ran out. Callers treat it as a retryable
// conflict rather than a hard failure.
var ErrTxRetryExhausted = errs.New("transaction failed after max retries")

// UnitOfWork runs fn inside a single database transaction. The transaction
// holds every row lock taken through the Tx repositories until commit or
// rollback; retryable serialization conflicts are handled by the
// implementation, so fn may run more than once and must be side-effect free
// outside the transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write repositories bound to the open transaction.
// FindForUpdate methods acquire pessimistic row locks; the lock order across
// entities is batch, then seats (sorted by id), then promo code.
type Tx interface {
	Batches() BatchRepository
	Seats() SeatRepository
	Promos() PromoRepository
	Orders() OrderRepository
	Tickets() TicketRepository
	Outbox() OutboxRepository
}

type BatchRepository interface {
	FindForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Batch, error)
	UpdateSoldQuantity(ctx context.Context, b *inventory.Batch) error
}

type SeatRepository interface {
	FindForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Seat, error)
	UpdateStatus(ctx context.Context, s *inventory.Seat) error
}

type PromoRepository interface {
	FindByCodeForUpdate(ctx context.Context, code string) (*promo.Code, error)
	UpdateUsedCount(ctx context.Context, c *promo.Code) error
}

type OrderRepository interface {
	// Create persists the order and its line items.
	Create(ctx context.Context, o *order.Order) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	Find(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindIDByPaymentRef(ctx context.Context, ref string) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
	SetPaymentRef(ctx context.Context, id uuid.UUID, ref string) error
	// ListStalePendingIDs returns PENDING orders created before the cutoff,
	// oldest first, for the housekeeping sweep.
	ListStalePendingIDs(ctx context.Context, before time.Time, limit int32) ([]uuid.UUID, error)
}

type TicketRepository interface {
	Create(ctx context.Context, t *order.Ticket) error
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*order.Ticket, error)
	SetSignedToken(ctx context.Context, id uuid.UUID, token string) error
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
}

// OutboxRepository enqueues durable delivery jobs. Enqueueing inside the
// confirming transaction is what makes fulfillment at-least-once.
type OutboxRepository interface {
	Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
