//go:build unit

package commands_test

import (
	"context"
	"time"

	"ticketera/internal/domain/order"
	"ticketera/tests/common/builder"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestExpireStalePending
// ================================================================================

func (s *OrderUseCaseTestSuite) TestExpireStalePendingSweepsAbandonedOrder() {
	b := builder.NewOrderBuilder()
	stale := b.BuildOrder(order.StatusPending)
	batch := b.BuildBatch()
	ticket := b.BuildTicket(nil)

	cutoff := s.clk.Now().Add(-24 * time.Hour)
	s.poolOrders.EXPECT().ListStalePendingIDs(gomock.Any(), cutoff, int32(100)).
		Return([]uuid.UUID{b.OrderID}, nil)

	s.expectTx()
	s.orders.EXPECT().FindForUpdate(gomock.Any(), b.OrderID).Return(stale, nil)
	s.orders.EXPECT().UpdateStatus(gomock.Any(), b.OrderID, order.StatusRejected).Return(nil)
	s.batches.EXPECT().FindForUpdate(gomock.Any(), b.BatchID).Return(batch, nil)
	s.batches.EXPECT().UpdateSoldQuantity(gomock.Any(), batch).Return(nil)
	s.tickets.EXPECT().FindByOrder(gomock.Any(), b.OrderID).Return([]*order.Ticket{ticket}, nil)
	s.tickets.EXPECT().DeleteByOrder(gomock.Any(), b.OrderID).Return(nil)

	expired, err := s.uc.ExpireStalePending(context.Background())

	s.Require().NoError(err)
	s.Equal(1, expired)
	s.Equal(order.StatusRejected, stale.Status())
}

func (s *OrderUseCaseTestSuite) TestExpireStalePendingSkipsOrderPaidSinceListing() {
	b := builder.NewOrderBuilder()
	paidMeanwhile := b.BuildOrder(order.StatusPaid)

	cutoff := s.clk.Now().Add(-24 * time.Hour)
	s.poolOrders.EXPECT().ListStalePendingIDs(gomock.Any(), cutoff, int32(100)).
		Return([]uuid.UUID{b.OrderID}, nil)

	// The order was paid between the listing and the lock; nothing changes.
	s.expectTx()
	s.orders.EXPECT().FindForUpdate(gomock.Any(), b.OrderID).Return(paidMeanwhile, nil)

	_, err := s.uc.ExpireStalePending(context.Background())

	s.Require().NoError(err)
	s.Equal(order.StatusPaid, paidMeanwhile.Status())
}

func (s *OrderUseCaseTestSuite) TestExpireStalePendingNothingToSweep() {
	cutoff := s.clk.Now().Add(-24 * time.Hour)
	s.poolOrders.EXPECT().ListStalePendingIDs(gomock.Any(), cutoff, int32(100)).
		Return(nil, nil)

	expired, err := s.uc.ExpireStalePending(context.Background())

	s.Require().NoError(err)
	s.Equal(0, expired)
}
