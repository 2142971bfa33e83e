package response

import (
	"time"

	"ticketera/internal/usecase/commands"
	"ticketera/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	SubtotalCents   int64 `json:"subtotal_cents"`
	DiscountCents   int64 `json:"discount_cents"`
	ServiceFeeCents int64 `json:"service_fee_cents"`
	TotalCents      int64 `json:"total_cents"`
}

type TicketResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	SeatLabel *string   `json:"seat_label,omitempty"`
	QRCode    *string   `json:"qr_code,omitempty"`
}

type CreateOrderResponse struct {
	ID            uuid.UUID        `json:"id"`
	Status        string           `json:"status"`
	PaymentMethod string           `json:"payment_method"`
	Pricing       QuoteResponse    `json:"pricing"`
	Tickets       []TicketResponse `json:"tickets"`
	PaymentLink   *string          `json:"payment_link,omitempty"`
}

func FromCreateOrderResult(result *commands.CreateOrderResult) *CreateOrderResponse {
	tickets := make([]TicketResponse, len(result.Tickets))
	for i, artifact := range result.Tickets {
		tickets[i] = TicketResponse{
			ID:        artifact.Ticket.ID,
			Code:      artifact.Ticket.Code,
			SeatLabel: artifact.SeatLabel,
			QRCode:    artifact.QRCode,
		}
	}
	return &CreateOrderResponse{
		ID:            result.Order.ID(),
		Status:        result.Order.Status().String(),
		PaymentMethod: result.Order.PaymentMethod().String(),
		Pricing: QuoteResponse{
			SubtotalCents:   result.Quote.Subtotal.Cents(),
			DiscountCents:   result.Quote.Discount.Cents(),
			ServiceFeeCents: result.Quote.ServiceFee.Cents(),
			TotalCents:      result.Quote.Total.Cents(),
		},
		Tickets:     tickets,
		PaymentLink: result.PaymentLink,
	}
}

type OrderStatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type PaymentLinkResponse struct {
	PaymentLink string `json:"payment_link"`
	PaymentID   string `json:"payment_id"`
}

type PromoResponse struct {
	Code            string     `json:"code"`
	DiscountPercent float64    `json:"discount_percent"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
}

func FromPromoView(view *queries.PromoView) *PromoResponse {
	return &PromoResponse{
		Code:            view.Code,
		DiscountPercent: view.DiscountPercent,
		ValidUntil:      view.ValidUntil,
	}
}
