package readstore

import (
	"context"

	"ticketera/internal/fulfillment"
	"ticketera/internal/infra"
	"ticketera/internal/infra/db"

	"github.com/google/uuid"
)

type DeliveryReadStore struct {
	db db.DBTX
}

func NewDeliveryReadStore(dbtx db.DBTX) *DeliveryReadStore {
	return &DeliveryReadStore{db: dbtx}
}

var _ fulfillment.DeliveryReads = (*DeliveryReadStore)(nil)

const findTicketDeliverySQL = `
SELECT o.customer_name, o.customer_email, o.customer_phone,
       e.title, b.name, s.row_label, s.seat_number, t.signed_token
FROM tickets t
JOIN orders o ON o.id = t.order_id
JOIN batches b ON b.id = t.batch_id
JOIN events e ON e.id = b.event_id
LEFT JOIN seats s ON s.id = t.seat_id
WHERE t.id = $1`

func (s *DeliveryReadStore) FindTicketDelivery(ctx context.Context, ticketID uuid.UUID) (*fulfillment.TicketDeliveryInfo, error) {
	var (
		info                 fulfillment.TicketDeliveryInfo
		rowLabel, seatNumber *string
	)
	err := s.db.QueryRow(ctx, findTicketDeliverySQL, ticketID).Scan(
		&info.CustomerName, &info.CustomerEmail, &info.CustomerPhone,
		&info.EventName, &info.BatchName, &rowLabel, &seatNumber, &info.SignedToken)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found for delivery", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read ticket delivery info", err)
	}
	if rowLabel != nil && seatNumber != nil {
		label := *rowLabel + "-" + *seatNumber
		info.SeatLabel = &label
	}
	return &info, nil
}
