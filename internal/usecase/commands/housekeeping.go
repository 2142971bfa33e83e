package commands

import (
	"context"
	"log/slog"

	"ticketera/internal/domain/order"
	"ticketera/internal/infra"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

const sweepBatchSize = 100

// ExpireStalePending rejects PENDING orders whose payment never arrived
// within the configured TTL and releases the stock they held. Each order is
// swept in its own transaction so one conflicting row cannot stall the whole
// batch. Returns the number of orders expired.
func (u *orderUseCaseImpl) ExpireStalePending(ctx context.Context) (int, error) {
	cutoff := u.clock.Now().Add(-u.pendingOrderTTL)

	ids, err := u.orders.ListStalePendingIDs(ctx, cutoff, sweepBatchSize)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	expired := 0
	for _, id := range ids {
		if err := u.expireOne(ctx, id); err != nil {
			slog.Error("failed to expire stale order", "order_id", id, "error", err.Error())
			continue
		}
		expired++
	}
	return expired, nil
}

func (u *orderUseCaseImpl) expireOne(ctx context.Context, orderID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// The order may have been paid between the listing and the lock.
		if err := o.Expire(); err != nil {
			return nil
		}
		if err := tx.Orders().UpdateStatus(ctx, o.ID(), order.StatusRejected); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return u.releaseOrderResources(ctx, tx, o)
	})
}
