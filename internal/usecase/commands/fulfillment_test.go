//go:build unit

package commands_test

import (
	"context"

	"ticketera/internal/domain/order"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/usecase/commands"
	"ticketera/tests/common/builder"

	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestConfirmPayment
// ================================================================================

func (s *OrderUseCaseTestSuite) TestConfirmPaymentSignsAndEnqueuesDelivery() {
	b := builder.NewOrderBuilder()
	pending := b.BuildOrder(order.StatusPending)
	locked := b.BuildOrder(order.StatusPending)
	ticket := b.BuildTicket(nil)

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(pending, nil)

	s.expectTx()
	s.orders.EXPECT().FindForUpdate(gomock.Any(), b.OrderID).Return(locked, nil)
	s.orders.EXPECT().UpdateStatus(gomock.Any(), b.OrderID, order.StatusPaid).Return(nil)
	s.tickets.EXPECT().FindByOrder(gomock.Any(), b.OrderID).Return([]*order.Ticket{ticket}, nil)
	s.tickets.EXPECT().SetSignedToken(gomock.Any(), ticket.ID, gomock.Any()).Return(nil)
	s.outbox.EXPECT().
		Enqueue(gomock.Any(), commands.JobKindTicketDelivery, commands.TopicEmail, gomock.Any(), s.clk.Now()).
		Return(nil)

	confirmed, err := s.uc.ConfirmPayment(context.Background(), b.OrderID)

	s.Require().NoError(err)
	s.Equal(order.StatusPaid, confirmed.Status())
	s.NotNil(ticket.SignedToken)
}

func (s *OrderUseCaseTestSuite) TestConfirmPaymentEnqueuesWhatsAppWhenPhonePresent() {
	b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.CustomerPhone = "+5491122334455"
	})
	pending := b.BuildOrder(order.StatusPending)
	locked := b.BuildOrder(order.StatusPending)
	ticket := b.BuildTicket(nil)

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(pending, nil)

	s.expectTx()
	s.orders.EXPECT().FindForUpdate(gomock.Any(), b.OrderID).Return(locked, nil)
	s.orders.EXPECT().UpdateStatus(gomock.Any(), b.OrderID, order.StatusPaid).Return(nil)
	s.tickets.EXPECT().FindByOrder(gomock.Any(), b.OrderID).Return([]*order.Ticket{ticket}, nil)
	s.tickets.EXPECT().SetSignedToken(gomock.Any(), ticket.ID, gomock.Any()).Return(nil)
	s.outbox.EXPECT().
		Enqueue(gomock.Any(), commands.JobKindTicketDelivery, commands.TopicEmail, gomock.Any(), s.clk.Now()).
		Return(nil)
	s.outbox.EXPECT().
		Enqueue(gomock.Any(), commands.JobKindTicketDelivery, commands.TopicWhatsApp, gomock.Any(), s.clk.Now()).
		Return(nil)

	_, err := s.uc.ConfirmPayment(context.Background(), b.OrderID)

	s.Require().NoError(err)
}

func (s *OrderUseCaseTestSuite) TestConfirmPaymentIdempotentOnPaidOrder() {
	b := builder.NewOrderBuilder()
	paid := b.BuildOrder(order.StatusPaid)

	// Pre-check short-circuits; no transaction, no double delivery.
	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(paid, nil)

	confirmed, err := s.uc.ConfirmPayment(context.Background(), b.OrderID)

	s.Require().NoError(err)
	s.Equal(order.StatusPaid, confirmed.Status())
}

func (s *OrderUseCaseTestSuite) TestConfirmPaymentRejectedOrderIsInvalid() {
	b := builder.NewOrderBuilder()
	rejected := b.BuildOrder(order.StatusRejected)
	locked := b.BuildOrder(order.StatusRejected)

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(rejected, nil)

	s.expectTx()
	s.orders.EXPECT().FindForUpdate(gomock.Any(), b.OrderID).Return(locked, nil)

	_, err := s.uc.ConfirmPayment(context.Background(), b.OrderID)

	s.True(errs.Is(err, commands.ErrInvalidOrderState))
}

func (s *OrderUseCaseTestSuite) TestConfirmPaymentUnknownOrder() {
	b := builder.NewOrderBuilder()

	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(nil, notFoundErr())

	_, err := s.uc.ConfirmPayment(context.Background(), b.OrderID)

	s.True(errs.Is(err, commands.ErrOrderNotFound))
}

// ================================================================================
// TestHandlePaymentWebhook
// ================================================================================

func (s *OrderUseCaseTestSuite) TestWebhookIgnoresNonApprovedStatus() {
	err := s.uc.HandlePaymentWebhook(context.Background(), "payment-123", "pending")
	s.NoError(err)
}

func (s *OrderUseCaseTestSuite) TestWebhookUnknownPaymentRef() {
	s.poolOrders.EXPECT().FindIDByPaymentRef(gomock.Any(), "payment-404").
		Return(builder.NewOrderBuilder().OrderID, notFoundErr())

	err := s.uc.HandlePaymentWebhook(context.Background(), "payment-404", "approved")

	s.True(errs.Is(err, commands.ErrOrderNotFound))
}

func (s *OrderUseCaseTestSuite) TestWebhookApprovedConfirmsOrder() {
	b := builder.NewOrderBuilder()
	paid := b.BuildOrder(order.StatusPaid)

	s.poolOrders.EXPECT().FindIDByPaymentRef(gomock.Any(), "payment-123").Return(b.OrderID, nil)
	s.poolOrders.EXPECT().Find(gomock.Any(), b.OrderID).Return(paid, nil)

	err := s.uc.HandlePaymentWebhook(context.Background(), "payment-123", "approved")

	s.NoError(err)
}
