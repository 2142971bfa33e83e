//go:build unit

package builder

import (
	"time"

	"ticketera/internal/domain/inventory"
	"ticketera/internal/domain/order"
	"ticketera/internal/domain/promo"
	reqdto "ticketera/internal/handler/dto/request"
	"ticketera/internal/usecase/commands"

	"github.com/google/uuid"
)

// OrderBuilder assembles consistent order fixtures across the domain,
// usecase and handler layers.
type OrderBuilder struct {
	OrderID       uuid.UUID
	BatchID       uuid.UUID
	EventID       uuid.UUID
	ProducerID    uuid.UUID
	UserID        uuid.UUID
	Quantity      int32
	PriceCents    int64
	ServiceFeeBp  int32
	PaymentMethod order.PaymentMethod
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		OrderID:       uuid.New(),
		BatchID:       uuid.New(),
		EventID:       uuid.New(),
		ProducerID:    uuid.New(),
		UserID:        uuid.New(),
		Quantity:      2,
		PriceCents:    50_00,
		ServiceFeeBp:  1500,
		PaymentMethod: order.MethodMercadoPago,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "",
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildBatch() *inventory.Batch {
	return inventory.ReconstructBatch(
		b.BatchID, b.EventID, b.ProducerID,
		"General Admission", b.PriceCents,
		100, 10,
		nil, nil,
		false, false,
	)
}

func (b *OrderBuilder) BuildSeatedBatch() *inventory.Batch {
	return inventory.ReconstructBatch(
		b.BatchID, b.EventID, b.ProducerID,
		"VIP Seated", b.PriceCents,
		50, 5,
		nil, nil,
		false, true,
	)
}

func (b *OrderBuilder) BuildSeat(id uuid.UUID, row, number string) *inventory.Seat {
	return inventory.ReconstructSeat(id, b.BatchID, row, number, inventory.SeatAvailable)
}

func (b *OrderBuilder) BuildPromo(code string, discountBp int32) *promo.Code {
	return promo.ReconstructCode(uuid.New(), code, discountBp, nil, 0, nil, true)
}

func (b *OrderBuilder) BuildQuote() order.Quote {
	lines := []order.LinePrice{{UnitPriceCents: b.PriceCents, Quantity: b.Quantity}}
	return order.NewQuote(lines, 0, b.ServiceFeeBp)
}

func (b *OrderBuilder) BuildCustomer() order.CustomerInfo {
	return order.CustomerInfo{
		Name:  b.CustomerName,
		Email: b.CustomerEmail,
		Phone: b.CustomerPhone,
	}
}

func (b *OrderBuilder) BuildOrder(status order.Status) *order.Order {
	userID := b.UserID
	return order.ReconstructOrder(
		b.OrderID,
		b.BuildCustomer(),
		b.BuildQuote(),
		status,
		b.PaymentMethod,
		nil,
		&userID,
		[]order.LineItem{{
			ID:             uuid.New(),
			BatchID:        b.BatchID,
			Quantity:       b.Quantity,
			UnitPriceCents: b.PriceCents,
		}},
		b.CreatedAt,
	)
}

func (b *OrderBuilder) BuildTicket(seatID *uuid.UUID) *order.Ticket {
	return order.NewTicket(b.OrderID, b.BatchID, seatID)
}

func (b *OrderBuilder) BuildCreateParams() commands.CreateOrderParams {
	userID := b.UserID
	return commands.CreateOrderParams{
		Items: []commands.OrderItemParams{{
			BatchID:  b.BatchID,
			Quantity: b.Quantity,
		}},
		Customer:      b.BuildCustomer(),
		PaymentMethod: b.PaymentMethod,
		UserID:        &userID,
	}
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Items: []reqdto.OrderItemRequest{{
			BatchID:  b.BatchID,
			Quantity: b.Quantity,
		}},
		Customer: reqdto.CustomerRequest{
			Name:  b.CustomerName,
			Email: b.CustomerEmail,
			Phone: b.CustomerPhone,
		},
		PaymentMethod: b.PaymentMethod.String(),
	}
}
