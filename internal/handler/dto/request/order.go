package request

import (
	"ticketera/internal/domain/order"
	"ticketera/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	BatchID  uuid.UUID   `json:"batch_id" binding:"required"`
	Quantity int32       `json:"quantity" binding:"required,min=1"`
	SeatIDs  []uuid.UUID `json:"seat_ids"`
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	DocID string `json:"doc_id"`
}

type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Customer      CustomerRequest    `json:"customer"`
	PromoCode     *string            `json:"promo_code"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
}

func (r *CreateOrderRequest) ToParams(userID *uuid.UUID) commands.CreateOrderParams {
	items := make([]commands.OrderItemParams, len(r.Items))
	for i, item := range r.Items {
		items[i] = commands.OrderItemParams{
			BatchID:  item.BatchID,
			Quantity: item.Quantity,
			SeatIDs:  item.SeatIDs,
		}
	}
	return commands.CreateOrderParams{
		Items: items,
		Customer: order.CustomerInfo{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
			DocID: r.Customer.DocID,
		},
		PromoCode:     r.PromoCode,
		PaymentMethod: order.PaymentMethod(r.PaymentMethod),
		UserID:        userID,
	}
}

type ValidatePromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// PaymentWebhookRequest mirrors the provider's callback body.
type PaymentWebhookRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}
