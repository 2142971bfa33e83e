package commands

import (
	"context"

	"ticketera/internal/domain/order"
	"ticketera/internal/infra"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

// Approve confirms an offline-payment order after the approver's ownership
// of every line item has been verified. Only PENDING_APPROVAL orders can be
// approved; an already paid order fails the state check rather than
// silently passing through.
func (u *orderUseCaseImpl) Approve(ctx context.Context, orderID, approverID uuid.UUID) (*order.Order, error) {
	o, err := u.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := u.authorizeApprover(ctx, orderID, approverID); err != nil {
		return nil, err
	}
	if o.Status() != order.StatusPendingApproval {
		return nil, ErrInvalidOrderState
	}
	return u.ConfirmPayment(ctx, orderID)
}

// Reject declines an offline-payment order and returns everything it held:
// batch counters go back down, explicitly selected seats are freed and the
// placeholder tickets are deleted, all in one transaction.
func (u *orderUseCaseImpl) Reject(ctx context.Context, orderID, approverID uuid.UUID) error {
	if _, err := u.findOrder(ctx, orderID); err != nil {
		return err
	}
	if err := u.authorizeApprover(ctx, orderID, approverID); err != nil {
		return err
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := o.Reject(); err != nil {
			return errs.Mark(err, ErrInvalidOrderState)
		}
		if err := tx.Orders().UpdateStatus(ctx, o.ID(), order.StatusRejected); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return u.releaseOrderResources(ctx, tx, o)
	})
}

// authorizeApprover requires the approver to own every event in the order.
// A mixed-producer order cannot be approved unilaterally by either party.
func (u *orderUseCaseImpl) authorizeApprover(ctx context.Context, orderID, approverID uuid.UUID) error {
	owns, err := u.ownership.ProducerOwnsAllOrderItems(ctx, orderID, approverID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !owns {
		return ErrUnauthorized
	}
	return nil
}

// releaseOrderResources undoes a reservation inside the caller's
// transaction. Batch counters clamp at zero rather than failing: a counter
// already corrected by other means must not block the rejection itself.
func (u *orderUseCaseImpl) releaseOrderResources(ctx context.Context, tx shared.Tx, o *order.Order) error {
	for _, item := range o.Items() {
		batch, err := tx.Batches().FindForUpdate(ctx, item.BatchID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := batch.Release(item.Quantity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Batches().UpdateSoldQuantity(ctx, batch); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	tickets, err := tx.Tickets().FindByOrder(ctx, o.ID())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, t := range tickets {
		if t.SeatID == nil {
			continue
		}
		seat, err := tx.Seats().FindForUpdate(ctx, *t.SeatID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		seat.Free()
		if err := tx.Seats().UpdateStatus(ctx, seat); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Tickets().DeleteByOrder(ctx, o.ID()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
