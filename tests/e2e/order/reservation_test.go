//go:build e2e

package order_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticketera/internal/domain/order"
	"ticketera/internal/infra/payment"
	"ticketera/internal/infra/readstore"
	"ticketera/internal/infra/repository"
	"ticketera/internal/infra/uow"
	"ticketera/internal/pkg/clock"
	"ticketera/internal/pkg/credential"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/usecase/commands"
	"ticketera/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ReservationSuite drives the reservation coordinator against a real
// PostgreSQL instance so the row-lock discipline is exercised for real,
// not against mocks.
type ReservationSuite struct {
	e2e.SharedSuite
	uc commands.OrderCommands
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	s.uc = commands.NewOrderUseCase(
		uow.NewPostgresUoW(s.DB),
		repository.NewOrderRepository(s.DB),
		repository.NewTicketRepository(s.DB),
		payment.NewMercadoPagoProvider(s.Config.Payment.CheckoutBaseURL),
		readstore.NewOrderReadStore(s.DB),
		credential.NewSigner(s.Config.Tickets.SigningSecret),
		clock.NewRealClock(),
		s.Config.Pricing.ServiceFeeBasisPoints,
		s.Config.Worker.PendingOrderTTL,
	)
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(ReservationSuite))
}

// ------------------------------------------------------------
// fixtures
// ------------------------------------------------------------

type batchFixture struct {
	BatchID uuid.UUID
	SeatIDs []uuid.UUID
}

// seedBatch inserts a producer, an event and one batch with the given
// capacity. When seatLabels is non-empty the batch is seated and one
// AVAILABLE seat per label is created in row A.
func (s *ReservationSuite) seedBatch(totalQuantity int32, priceCents int64, seatLabels ...string) batchFixture {
	ctx := context.Background()

	producerID := uuid.New()
	_, err := s.DB.Exec(ctx,
		`INSERT INTO users (id, email, full_name, role) VALUES ($1, $2, 'Producer', 'producer')`,
		producerID, producerID.String()+"@example.com")
	s.Require().NoError(err)

	eventID := uuid.New()
	_, err = s.DB.Exec(ctx,
		`INSERT INTO events (id, title, producer_id) VALUES ($1, 'Test Event', $2)`,
		eventID, producerID)
	s.Require().NoError(err)

	fx := batchFixture{BatchID: uuid.New()}
	_, err = s.DB.Exec(ctx,
		`INSERT INTO batches (id, event_id, name, price_cents, total_quantity, seated, sales_end_date)
		 VALUES ($1, $2, 'General', $3, $4, $5, $6)`,
		fx.BatchID, eventID, priceCents, totalQuantity, len(seatLabels) > 0, time.Now().Add(24*time.Hour))
	s.Require().NoError(err)

	for _, label := range seatLabels {
		seatID := uuid.New()
		_, err = s.DB.Exec(ctx,
			`INSERT INTO seats (id, batch_id, row_label, seat_number) VALUES ($1, $2, 'A', $3)`,
			seatID, fx.BatchID, label)
		s.Require().NoError(err)
		fx.SeatIDs = append(fx.SeatIDs, seatID)
	}

	return fx
}

func (s *ReservationSuite) seedPromo(code string, discountBp, maxUses int32) {
	_, err := s.DB.Exec(context.Background(),
		`INSERT INTO promo_codes (code, discount_bp, max_uses) VALUES ($1, $2, $3)`,
		code, discountBp, maxUses)
	s.Require().NoError(err)
}

func createParams(batchID uuid.UUID, quantity int32, seatIDs []uuid.UUID, promoCode *string) commands.CreateOrderParams {
	return commands.CreateOrderParams{
		Items: []commands.OrderItemParams{
			{BatchID: batchID, Quantity: quantity, SeatIDs: seatIDs},
		},
		Customer: order.CustomerInfo{
			Name:  "Concurrent Buyer",
			Email: "buyer@example.com",
		},
		PromoCode:     promoCode,
		PaymentMethod: order.MethodMercadoPago,
	}
}

// runConcurrently fires one CreateOrder per params entry, all released at
// once, and collects the per-call results.
func (s *ReservationSuite) runConcurrently(params []commands.CreateOrderParams) []error {
	var (
		start = make(chan struct{})
		wg    sync.WaitGroup
		errsC = make([]error, len(params))
	)
	for i := range params {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := s.uc.CreateOrder(context.Background(), params[i])
			errsC[i] = err
		}(i)
	}
	close(start)
	wg.Wait()
	return errsC
}

// ------------------------------------------------------------
// properties
// ------------------------------------------------------------

func (s *ReservationSuite) TestConcurrentOrdersNeverOversell() {
	const (
		capacity   = int32(10)
		contenders = 20
	)
	fx := s.seedBatch(capacity, 100_00)

	params := make([]commands.CreateOrderParams, contenders)
	for i := range params {
		params[i] = createParams(fx.BatchID, 1, nil, nil)
	}

	results := s.runConcurrently(params)

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errs.Is(err, commands.ErrSoldOut), "loser must fail sold-out, got: %v", err)
	}
	s.Equal(int(capacity), succeeded, "exactly capacity orders must win")

	var soldQuantity int32
	err := s.DB.QueryRow(context.Background(),
		`SELECT sold_quantity FROM batches WHERE id = $1`, fx.BatchID).Scan(&soldQuantity)
	s.Require().NoError(err)
	s.Equal(capacity, soldQuantity)

	var ticketCount int
	err = s.DB.QueryRow(context.Background(),
		`SELECT count(*) FROM tickets WHERE batch_id = $1`, fx.BatchID).Scan(&ticketCount)
	s.Require().NoError(err)
	s.Equal(int(capacity), ticketCount, "one ticket per sold unit, never more")
}

func (s *ReservationSuite) TestConcurrentSeatSelectionHasOneWinner() {
	const contenders = 8
	fx := s.seedBatch(10, 100_00, "1")
	seat := fx.SeatIDs[0]

	params := make([]commands.CreateOrderParams, contenders)
	for i := range params {
		params[i] = createParams(fx.BatchID, 1, []uuid.UUID{seat}, nil)
	}

	results := s.runConcurrently(params)

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errs.Is(err, commands.ErrSeatTaken), "loser must fail seat-taken, got: %v", err)
	}
	s.Equal(1, succeeded, "a seat can only be sold once")

	var status string
	err := s.DB.QueryRow(context.Background(),
		`SELECT status FROM seats WHERE id = $1`, seat).Scan(&status)
	s.Require().NoError(err)
	s.Equal("SOLD", status)

	var soldQuantity int32
	err = s.DB.QueryRow(context.Background(),
		`SELECT sold_quantity FROM batches WHERE id = $1`, fx.BatchID).Scan(&soldQuantity)
	s.Require().NoError(err)
	s.Equal(int32(1), soldQuantity)
}

func (s *ReservationSuite) TestConcurrentPromoRedemptionHonorsBudget() {
	const (
		contenders = 10
		code       = "LASTONE"
	)
	fx := s.seedBatch(100, 100_00)
	s.seedPromo(code, 2000, 1)

	params := make([]commands.CreateOrderParams, contenders)
	for i := range params {
		promo := code
		params[i] = createParams(fx.BatchID, 1, nil, &promo)
	}

	results := s.runConcurrently(params)

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errs.Is(err, commands.ErrInvalidPromo), "loser must fail invalid-promo, got: %v", err)
	}
	s.Equal(1, succeeded, "a single-use promo admits exactly one order")

	var usedCount int32
	err := s.DB.QueryRow(context.Background(),
		`SELECT used_count FROM promo_codes WHERE code = $1`, code).Scan(&usedCount)
	s.Require().NoError(err)
	s.Equal(int32(1), usedCount)

	var discounted int
	err = s.DB.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE discount_cents > 0`, // only this test's order carries a discount
	).Scan(&discounted)
	s.Require().NoError(err)
	s.Equal(1, discounted)
}
