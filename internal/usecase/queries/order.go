package queries

import (
	"context"
	"time"

	"ticketera/internal/infra"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/pkg/identity"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errs.New("not found")
	ErrUnauthorized = errs.New("not authorized")
)

// Read models (DTO for read side)
type OrderItemView struct {
	BatchID        uuid.UUID `json:"batch_id"`
	BatchName      string    `json:"batch_name"`
	EventName      string    `json:"event_name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type OrderView struct {
	ID               uuid.UUID        `json:"id"`
	Status           string           `json:"status"`
	PaymentMethod    string           `json:"payment_method"`
	CustomerName     string           `json:"customer_name"`
	CustomerEmail    string           `json:"customer_email"`
	CustomerPhone    *string          `json:"customer_phone,omitempty"`
	UserID           *uuid.UUID       `json:"user_id,omitempty"`
	SubtotalCents    int64            `json:"subtotal_cents"`
	DiscountCents    int64            `json:"discount_cents"`
	ServiceFeeCents  int64            `json:"service_fee_cents"`
	TotalCents       int64            `json:"total_cents"`
	PaymentRef       *string          `json:"payment_ref,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	Items            []*OrderItemView `json:"items"`
}

type PendingOrderListItem struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalCents    int64     `json:"total_cents"`
	TicketCount   int32     `json:"ticket_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, role identity.Role, id uuid.UUID) (*OrderView, error)
	ListPendingForProducer(ctx context.Context, producerID uuid.UUID) ([]*PendingOrderListItem, error)
}

type OrderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindPendingApprovalByProducer(ctx context.Context, producerID uuid.UUID) ([]*PendingOrderListItem, error)
	ProducerOwnsAnyOrderItem(ctx context.Context, orderID, producerID uuid.UUID) (bool, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

// GetByID returns the order to its buyer, to an admin, or to a producer
// with at least one offering in it. Anyone else gets NotFound rather than
// Unauthorized so order ids are not probeable.
func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, role identity.Role, id uuid.UUID) (*OrderView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if role == identity.RoleAdmin {
		return view, nil
	}
	if view.UserID != nil && *view.UserID == actorID {
		return view, nil
	}
	if role == identity.RoleProducer {
		owns, err := q.repo.ProducerOwnsAnyOrderItem(ctx, id, actorID)
		if err != nil {
			return nil, err
		}
		if owns {
			return view, nil
		}
	}
	return nil, ErrNotFound
}

func (q *orderQueriesImpl) ListPendingForProducer(ctx context.Context, producerID uuid.UUID) ([]*PendingOrderListItem, error) {
	return q.repo.FindPendingApprovalByProducer(ctx, producerID)
}
