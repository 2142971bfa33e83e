package commands

import (
	"context"

	"ticketera/internal/domain/order"

	"github.com/google/uuid"
)

// PaymentLink is the opaque result of the external payment collaborator.
type PaymentLink struct {
	URL       string
	PaymentID string
}

// PaymentProvider generates checkout links. It may be slow or fail; callers
// must tolerate both without touching committed order state.
type PaymentProvider interface {
	GeneratePaymentLink(ctx context.Context, o *order.Order) (*PaymentLink, error)
}

// OwnershipReads answers producer-scoped authorization questions. Approval
// requires the approver to own every offering referenced by the order.
type OwnershipReads interface {
	ProducerOwnsAllOrderItems(ctx context.Context, orderID, producerID uuid.UUID) (bool, error)
}
