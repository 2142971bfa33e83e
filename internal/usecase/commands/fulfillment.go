package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"ticketera/internal/domain/order"
	"ticketera/internal/infra"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobKindTicketDelivery = "ticket_delivery"

	TopicEmail    = "email"
	TopicWhatsApp = "whatsapp"
)

// DeliveryJob is the outbox payload for one ticket delivery.
type DeliveryJob struct {
	OrderID  uuid.UUID `json:"order_id"`
	TicketID uuid.UUID `json:"ticket_id"`
}

// ConfirmPayment transitions the order to PAID, signs any ticket credentials
// that are still missing and enqueues delivery jobs in the same transaction.
// Calling it on an already paid order is a no-op so that webhook retries and
// a manual approval racing a webhook stay safe.
func (u *orderUseCaseImpl) ConfirmPayment(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	// Cheap pre-check outside the lock; the transaction re-reads under
	// FOR UPDATE and decides for real.
	if o, err := u.findOrder(ctx, orderID); err != nil {
		return nil, err
	} else if o.IsPaid() {
		return o, nil
	}

	var confirmed *order.Order
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		confirmed = nil

		o, err := tx.Orders().FindForUpdate(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if o.IsPaid() {
			confirmed = o
			return nil
		}
		if err := o.MarkPaid(); err != nil {
			return errs.Mark(err, ErrInvalidOrderState)
		}
		if err := tx.Orders().UpdateStatus(ctx, o.ID(), order.StatusPaid); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		tickets, err := tx.Tickets().FindByOrder(ctx, o.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, t := range tickets {
			if t.SignedToken == nil {
				token, err := u.signer.Sign(t.ID, t.Code, t.BatchID, t.OrderID)
				if err != nil {
					return errs.Wrap(err, "failed to sign ticket credential")
				}
				if err := tx.Tickets().SetSignedToken(ctx, t.ID, token); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
				t.SignedToken = &token
			}

			if err := u.enqueueDelivery(ctx, tx, o, t); err != nil {
				return err
			}
		}

		confirmed = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

func (u *orderUseCaseImpl) enqueueDelivery(ctx context.Context, tx shared.Tx, o *order.Order, t *order.Ticket) error {
	payload, err := json.Marshal(DeliveryJob{OrderID: o.ID(), TicketID: t.ID})
	if err != nil {
		return errs.Wrap(err, "failed to encode delivery job")
	}

	if err := tx.Outbox().Enqueue(ctx, JobKindTicketDelivery, TopicEmail, payload, u.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if o.Customer().Phone != "" {
		if err := tx.Outbox().Enqueue(ctx, JobKindTicketDelivery, TopicWhatsApp, payload, u.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

// HandlePaymentWebhook resolves the provider's payment id to an order and
// confirms it when the provider reports approval. Unknown statuses are
// acknowledged without action so the provider stops retrying.
func (u *orderUseCaseImpl) HandlePaymentWebhook(ctx context.Context, externalID, status string) error {
	if status != "approved" {
		slog.Info("ignoring payment webhook", "payment_id", externalID, "status", status)
		return nil
	}

	orderID, err := u.orders.FindIDByPaymentRef(ctx, externalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	_, err = u.ConfirmPayment(ctx, orderID)
	return err
}
