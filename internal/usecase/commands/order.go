package commands

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"ticketera/internal/domain/inventory"
	"ticketera/internal/domain/order"
	"ticketera/internal/domain/promo"
	"ticketera/internal/infra"
	"ticketera/internal/pkg/clock"
	"ticketera/internal/pkg/credential"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/pkg/qr"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBatchNotFound           = errs.New("batch not found")
	ErrSeatNotFound            = errs.New("seat not found")
	ErrOrderNotFound           = errs.New("order not found")
	ErrPromoNotFound           = errs.New("promo code not found")
	ErrSoldOut                 = errs.New("not enough tickets remaining")
	ErrManuallyClosed          = errs.New("batch is closed for sale")
	ErrSalesClosed             = errs.New("sales window has ended")
	ErrSeatTaken               = errs.New("seat is already taken")
	ErrSeatMismatch            = errs.New("seat selection does not match quantity")
	ErrEmptyOrder              = errs.New("order has no items")
	ErrInvalidPromo            = errs.New("invalid promo code")
	ErrUnauthorized            = errs.New("not authorized for this order")
	ErrInvalidOrderState       = errs.New("order state does not allow this operation")
	ErrReservationConflict     = errs.New("reservation conflict, retry the request")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type OrderItemParams struct {
	BatchID  uuid.UUID
	Quantity int32
	SeatIDs  []uuid.UUID
}

type CreateOrderParams struct {
	Items         []OrderItemParams
	Customer      order.CustomerInfo
	PromoCode     *string
	PaymentMethod order.PaymentMethod
	UserID        *uuid.UUID
}

// TicketArtifact is a minted ticket plus the eagerly rendered redemption
// artifact for the instant-payment response.
type TicketArtifact struct {
	Ticket    *order.Ticket
	SeatLabel *string
	QRCode    *string
}

type CreateOrderResult struct {
	Order       *order.Order
	Quote       order.Quote
	Tickets     []TicketArtifact
	PaymentLink *string
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (*CreateOrderResult, error)
	ConfirmPayment(ctx context.Context, orderID uuid.UUID) (*order.Order, error)
	Approve(ctx context.Context, orderID, approverID uuid.UUID) (*order.Order, error)
	Reject(ctx context.Context, orderID, approverID uuid.UUID) error
	RequestPaymentLink(ctx context.Context, orderID uuid.UUID) (*PaymentLink, error)
	HandlePaymentWebhook(ctx context.Context, externalID, status string) error
	ExpireStalePending(ctx context.Context) (int, error)
}

type orderUseCaseImpl struct {
	uow       shared.UnitOfWork
	orders    shared.OrderRepository // pool-bound, for reads and post-commit writes
	tickets   shared.TicketRepository
	payments  PaymentProvider
	ownership OwnershipReads
	signer    credential.Signer
	clock     clock.Clock

	serviceFeeBp    int32
	pendingOrderTTL time.Duration
}

func NewOrderUseCase(
	uow shared.UnitOfWork,
	orders shared.OrderRepository,
	tickets shared.TicketRepository,
	payments PaymentProvider,
	ownership OwnershipReads,
	signer credential.Signer,
	clk clock.Clock,
	serviceFeeBp int32,
	pendingOrderTTL time.Duration,
) OrderCommands {
	return &orderUseCaseImpl{
		uow:             uow,
		orders:          orders,
		tickets:         tickets,
		payments:        payments,
		ownership:       ownership,
		signer:          signer,
		clock:           clk,
		serviceFeeBp:    serviceFeeBp,
		pendingOrderTTL: pendingOrderTTL,
	}
}

// ticketSpec describes a ticket to mint after the reservation commits.
type ticketSpec struct {
	batchID   uuid.UUID
	seatID    *uuid.UUID
	seatLabel *string
}

// CreateOrder is the reservation coordinator. One transaction spans stock
// deduction, seat sale, promo consumption and order persistence; ticket
// minting, the payment link and credential signing happen after commit and
// never unwind the committed order.
func (u *orderUseCaseImpl) CreateOrder(ctx context.Context, params CreateOrderParams) (*CreateOrderResult, error) {
	var (
		createdOrder *order.Order
		quote        order.Quote
		specs        []ticketSpec
	)

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Reset on retry: the transaction may run more than once.
		createdOrder = nil
		specs = specs[:0]

		lines := make([]order.LinePrice, 0, len(params.Items))
		items := make([]order.LineItem, 0, len(params.Items))

		for _, item := range params.Items {
			batch, err := tx.Batches().FindForUpdate(ctx, item.BatchID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrBatchNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			if err := batch.Reserve(item.Quantity, u.clock.Now()); err != nil {
				return mapReserveErr(err)
			}
			if err := tx.Batches().UpdateSoldQuantity(ctx, batch); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			// Price snapshotted at reservation time, under the same row lock.
			lines = append(lines, order.LinePrice{UnitPriceCents: batch.PriceCents(), Quantity: item.Quantity})
			items = append(items, order.LineItem{
				ID:             uuid.New(),
				BatchID:        batch.ID(),
				Quantity:       item.Quantity,
				UnitPriceCents: batch.PriceCents(),
			})

			itemSpecs, err := u.reserveSeats(ctx, tx, batch, item)
			if err != nil {
				return err
			}
			specs = append(specs, itemSpecs...)
		}

		var discountBp int32
		if params.PromoCode != nil {
			code, err := u.consumePromo(ctx, tx, *params.PromoCode)
			if err != nil {
				return err
			}
			discountBp = code.DiscountBp()
		}

		quote = order.NewQuote(lines, discountBp, u.serviceFeeBp)

		o, err := order.NewOrder(params.Customer, quote, params.PaymentMethod, params.UserID, items)
		if err != nil {
			return errs.Mark(err, ErrEmptyOrder)
		}
		if err := tx.Orders().Create(ctx, o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		createdOrder = o
		return nil
	})
	if err != nil {
		// Contention that outlived the lock timeout or the retry budget is
		// not a hard failure; the same request may well succeed if resent.
		if errs.Is(err, shared.ErrTxRetryExhausted) || infra.IsKind(err, infra.KindLockTimeout) {
			return nil, errs.Mark(err, ErrReservationConflict)
		}
		return nil, err
	}

	return u.fulfillAfterCommit(ctx, createdOrder, quote, specs), nil
}

// reserveSeats locks and sells the explicitly selected seats of one line
// item, or produces general-admission ticket specs when the batch is not
// seated. Seat ids are locked in sorted order so two overlapping selections
// cannot deadlock each other.
func (u *orderUseCaseImpl) reserveSeats(ctx context.Context, tx shared.Tx, batch *inventory.Batch, item OrderItemParams) ([]ticketSpec, error) {
	if len(item.SeatIDs) == 0 {
		if batch.Seated() {
			return nil, ErrSeatMismatch
		}
		specs := make([]ticketSpec, item.Quantity)
		for i := range specs {
			specs[i] = ticketSpec{batchID: batch.ID()}
		}
		return specs, nil
	}

	if int32(len(item.SeatIDs)) != item.Quantity {
		return nil, ErrSeatMismatch
	}

	seatIDs := slices.Clone(item.SeatIDs)
	slices.SortFunc(seatIDs, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	specs := make([]ticketSpec, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		seat, err := tx.Seats().FindForUpdate(ctx, seatID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrSeatNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if seat.BatchID() != batch.ID() {
			return nil, ErrSeatMismatch
		}
		if err := seat.Sell(); err != nil {
			return nil, errs.Mark(err, ErrSeatTaken)
		}
		if err := tx.Seats().UpdateStatus(ctx, seat); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		id := seat.ID()
		label := seat.Label()
		specs = append(specs, ticketSpec{batchID: batch.ID(), seatID: &id, seatLabel: &label})
	}
	return specs, nil
}

// consumePromo re-validates the code under its row lock and spends one use.
// The read-only preview may have passed with stale data; this check is the
// one that counts.
func (u *orderUseCaseImpl) consumePromo(ctx context.Context, tx shared.Tx, codeValue string) (*promo.Code, error) {
	code, err := tx.Promos().FindByCodeForUpdate(ctx, codeValue)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := code.Consume(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidPromo)
	}
	if err := tx.Promos().UpdateUsedCount(ctx, code); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return code, nil
}

// fulfillAfterCommit mints tickets and, for the instant-payment flow,
// requests the payment link and renders signed QR artifacts for immediate
// display. Everything here is best-effort: the sale is already committed and
// failures are logged, never propagated.
func (u *orderUseCaseImpl) fulfillAfterCommit(ctx context.Context, o *order.Order, quote order.Quote, specs []ticketSpec) *CreateOrderResult {
	result := &CreateOrderResult{
		Order:   o,
		Quote:   quote,
		Tickets: make([]TicketArtifact, 0, len(specs)),
	}

	for _, spec := range specs {
		t := order.NewTicket(o.ID(), spec.batchID, spec.seatID)
		if err := u.tickets.Create(ctx, t); err != nil {
			slog.Error("failed to mint ticket after commit",
				"order_id", o.ID(), "batch_id", spec.batchID, "error", err.Error())
			continue
		}
		result.Tickets = append(result.Tickets, TicketArtifact{Ticket: t, SeatLabel: spec.seatLabel})
	}

	if o.Status() != order.StatusPending {
		// Approval flow: placeholder tickets only, no credentials yet.
		return result
	}

	if link, err := u.payments.GeneratePaymentLink(ctx, o); err != nil {
		slog.Error("payment link request failed, order stays pending",
			"order_id", o.ID(), "error", err.Error())
	} else {
		if err := u.orders.SetPaymentRef(ctx, o.ID(), link.PaymentID); err != nil {
			slog.Error("failed to persist payment reference",
				"order_id", o.ID(), "error", err.Error())
		} else {
			o.SetPaymentRef(link.PaymentID)
		}
		result.PaymentLink = &link.URL
	}

	for i := range result.Tickets {
		t := result.Tickets[i].Ticket
		token, err := u.signer.Sign(t.ID, t.Code, t.BatchID, t.OrderID)
		if err != nil {
			slog.Error("failed to sign ticket credential", "ticket_id", t.ID, "error", err.Error())
			continue
		}
		if err := u.tickets.SetSignedToken(ctx, t.ID, token); err != nil {
			slog.Error("failed to persist ticket credential", "ticket_id", t.ID, "error", err.Error())
			continue
		}
		t.SignedToken = &token

		if dataURL, err := qr.DataURL(token); err != nil {
			slog.Error("failed to render ticket QR", "ticket_id", t.ID, "error", err.Error())
		} else {
			result.Tickets[i].QRCode = &dataURL
		}
	}

	return result
}

// RequestPaymentLink retries the provider call for a PENDING order whose
// original link request failed.
func (u *orderUseCaseImpl) RequestPaymentLink(ctx context.Context, orderID uuid.UUID) (*PaymentLink, error) {
	o, err := u.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status() != order.StatusPending {
		return nil, ErrInvalidOrderState
	}

	link, err := u.payments.GeneratePaymentLink(ctx, o)
	if err != nil {
		return nil, errs.Wrap(err, "payment provider failed")
	}
	if err := u.orders.SetPaymentRef(ctx, o.ID(), link.PaymentID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return link, nil
}

func (u *orderUseCaseImpl) findOrder(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	o, err := u.orders.Find(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return o, nil
}

func mapReserveErr(err error) error {
	switch {
	case errs.Is(err, inventory.ErrSoldOut):
		return errs.Mark(err, ErrSoldOut)
	case errs.Is(err, inventory.ErrManuallyClosed):
		return errs.Mark(err, ErrManuallyClosed)
	case errs.Is(err, inventory.ErrSalesClosed):
		return errs.Mark(err, ErrSalesClosed)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
