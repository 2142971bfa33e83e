//go:build unit

package commands_test

import (
	"context"

	"ticketera/internal/domain/inventory"
	"ticketera/internal/domain/order"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/usecase/commands"
	"ticketera/tests/common/builder"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestApprove
// ================================================================================

func (s *OrderUseCaseTestSuite) TestApproveConfirmsOfflineOrder() {
	b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.PaymentMethod = order.MethodBankTransfer
	})
	awaiting := b.BuildOrder(order.StatusPendingApproval)
	locked := b.BuildOrder(order.StatusPendingApproval)
	ticket := b.BuildTicket(nil)

	// Approve re-reads through ConfirmPayment's own pre-check.
	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(awaiting, nil).Times(2)
	s.ownership.EXPECT().ProducerOwnsAllOrderItems(gomock.Any(), b.OrderID, b.ProducerID).Return(true, nil)

	s.expectTx()
	s.orders.EXPECT().FindForUpdate(gomock.Any(), b.OrderID).Return(locked, nil)
	s.orders.EXPECT().UpdateStatus(gomock.Any(), b.OrderID, order.StatusPaid).Return(nil)
	s.tickets.EXPECT().FindByOrder(gomock.Any(), b.OrderID).Return([]*order.Ticket{ticket}, nil)
	s.tickets.EXPECT().SetSignedToken(gomock.Any(), ticket.ID, gomock.Any()).Return(nil)
	s.outbox.EXPECT().
		Enqueue(gomock.Any(), commands.JobKindTicketDelivery, commands.TopicEmail, gomock.Any(), s.clk.Now()).
		Return(nil)

	approved, err := s.uc.Approve(context.Background(), b.OrderID, b.ProducerID)

	s.Require().NoError(err)
	s.Equal(order.StatusPaid, approved.Status())
}

func (s *OrderUseCaseTestSuite) TestApproveForeignProducer() {
	b := builder.NewOrderBuilder()
	awaiting := b.BuildOrder(order.StatusPendingApproval)
	stranger := uuid.New()

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(awaiting, nil)
	s.ownership.EXPECT().ProducerOwnsAllOrderItems(gomock.Any(), b.OrderID, stranger).Return(false, nil)

	_, err := s.uc.Approve(context.Background(), b.OrderID, stranger)

	s.True(errs.Is(err, commands.ErrUnauthorized))
}

func (s *OrderUseCaseTestSuite) TestApprovePendingInstantOrderIsInvalid() {
	b := builder.NewOrderBuilder()
	pending := b.BuildOrder(order.StatusPending)

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(pending, nil)
	s.ownership.EXPECT().ProducerOwnsAllOrderItems(gomock.Any(), b.OrderID, b.ProducerID).Return(true, nil)

	_, err := s.uc.Approve(context.Background(), b.OrderID, b.ProducerID)

	s.True(errs.Is(err, commands.ErrInvalidOrderState))
}

func (s *OrderUseCaseTestSuite) TestApprovePaidOrderIsInvalid() {
	b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.PaymentMethod = order.MethodBankTransfer
	})
	paid := b.BuildOrder(order.StatusPaid)

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(paid, nil)
	s.ownership.EXPECT().ProducerOwnsAllOrderItems(gomock.Any(), b.OrderID, b.ProducerID).Return(true, nil)

	approved, err := s.uc.Approve(context.Background(), b.OrderID, b.ProducerID)

	s.Nil(approved)
	s.True(errs.Is(err, commands.ErrInvalidOrderState))
}

// ================================================================================
// TestReject
// ================================================================================

func (s *OrderUseCaseTestSuite) TestRejectReleasesStockSeatsAndTickets() {
	b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.PaymentMethod = order.MethodBankTransfer
	})
	awaiting := b.BuildOrder(order.StatusPendingApproval)
	locked := b.BuildOrder(order.StatusPendingApproval)
	batch := b.BuildSeatedBatch()
	soldBefore := batch.SoldQuantity()

	seatID := uuid.New()
	seat := inventory.ReconstructSeat(seatID, b.BatchID, "A", "1", inventory.SeatSold)
	ticket := b.BuildTicket(&seatID)

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(awaiting, nil)
	s.ownership.EXPECT().ProducerOwnsAllOrderItems(gomock.Any(), b.OrderID, b.ProducerID).Return(true, nil)

	s.expectTx()
	s.orders.EXPECT().FindForUpdate(gomock.Any(), b.OrderID).Return(locked, nil)
	s.orders.EXPECT().UpdateStatus(gomock.Any(), b.OrderID, order.StatusRejected).Return(nil)
	s.batches.EXPECT().FindForUpdate(gomock.Any(), b.BatchID).Return(batch, nil)
	s.batches.EXPECT().UpdateSoldQuantity(gomock.Any(), batch).Return(nil)
	s.tickets.EXPECT().FindByOrder(gomock.Any(), b.OrderID).Return([]*order.Ticket{ticket}, nil)
	s.seats.EXPECT().FindForUpdate(gomock.Any(), seatID).Return(seat, nil)
	s.seats.EXPECT().UpdateStatus(gomock.Any(), seat).Return(nil)
	s.tickets.EXPECT().DeleteByOrder(gomock.Any(), b.OrderID).Return(nil)

	err := s.uc.Reject(context.Background(), b.OrderID, b.ProducerID)

	s.Require().NoError(err)
	s.Equal(soldBefore-b.Quantity, batch.SoldQuantity())
	s.Equal(inventory.SeatAvailable, seat.Status())
}

func (s *OrderUseCaseTestSuite) TestRejectForeignProducer() {
	b := builder.NewOrderBuilder()
	awaiting := b.BuildOrder(order.StatusPendingApproval)
	stranger := uuid.New()

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(awaiting, nil)
	s.ownership.EXPECT().ProducerOwnsAllOrderItems(gomock.Any(), b.OrderID, stranger).Return(false, nil)

	err := s.uc.Reject(context.Background(), b.OrderID, stranger)

	s.True(errs.Is(err, commands.ErrUnauthorized))
}

func (s *OrderUseCaseTestSuite) TestRejectPaidOrderIsInvalid() {
	b := builder.NewOrderBuilder()
	paid := b.BuildOrder(order.StatusPaid)
	locked := b.BuildOrder(order.StatusPaid)

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(paid, nil)
	s.ownership.EXPECT().ProducerOwnsAllOrderItems(gomock.Any(), b.OrderID, b.ProducerID).Return(true, nil)

	s.expectTx()
	s.orders.EXPECT().FindForUpdate(gomock.Any(), b.OrderID).Return(locked, nil)

	err := s.uc.Reject(context.Background(), b.OrderID, b.ProducerID)

	s.True(errs.Is(err, commands.ErrInvalidOrderState))
}
