package readstore

import (
	"context"

	"ticketera/internal/infra"
	"ticketera/internal/infra/db"
	"ticketera/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketReadStore struct {
	db db.DBTX
}

func NewTicketReadStore(dbtx db.DBTX) *TicketReadStore {
	return &TicketReadStore{db: dbtx}
}

var _ queries.TicketViewRepo = (*TicketReadStore)(nil)

const findPaidTicketsSQL = `
SELECT t.id, t.code, t.order_id, t.batch_id, e.title, b.name,
       s.row_label, s.seat_number, t.is_used, t.signed_token
FROM tickets t
JOIN orders o ON o.id = t.order_id
JOIN batches b ON b.id = t.batch_id
JOIN events e ON e.id = b.event_id
LEFT JOIN seats s ON s.id = t.seat_id
WHERE o.user_id = $1 AND o.status = 'PAID'
ORDER BY t.created_at DESC`

func (s *TicketReadStore) FindPaidByUser(ctx context.Context, userID uuid.UUID) ([]*queries.TicketView, error) {
	rows, err := s.db.Query(ctx, findPaidTicketsSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read user tickets", err)
	}
	defer rows.Close()

	var views []*queries.TicketView
	for rows.Next() {
		var (
			view                 queries.TicketView
			rowLabel, seatNumber *string
		)
		if err := rows.Scan(&view.ID, &view.Code, &view.OrderID, &view.BatchID,
			&view.EventName, &view.BatchName, &rowLabel, &seatNumber,
			&view.IsUsed, &view.Token); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket view", err)
		}
		if rowLabel != nil && seatNumber != nil {
			label := *rowLabel + "-" + *seatNumber
			view.SeatLabel = &label
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ticket views", err)
	}
	return views, nil
}

const findRedemptionSQL = `
SELECT t.id, t.code, e.title, b.name, s.row_label, s.seat_number,
       o.customer_name, t.is_used, e.producer_id, o.status = 'PAID'
FROM tickets t
JOIN orders o ON o.id = t.order_id
JOIN batches b ON b.id = t.batch_id
JOIN events e ON e.id = b.event_id
LEFT JOIN seats s ON s.id = t.seat_id
WHERE t.id = $1`

func (s *TicketReadStore) FindRedemptionByID(ctx context.Context, ticketID uuid.UUID) (*queries.TicketRedemptionRow, error) {
	var (
		row                  queries.TicketRedemptionRow
		rowLabel, seatNumber *string
	)
	err := s.db.QueryRow(ctx, findRedemptionSQL, ticketID).Scan(
		&row.Scan.TicketID, &row.Code, &row.Scan.EventName, &row.Scan.BatchName,
		&rowLabel, &seatNumber, &row.Scan.Customer, &row.Scan.IsUsed,
		&row.ProducerID, &row.OrderPaid)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read ticket redemption", err)
	}
	if rowLabel != nil && seatNumber != nil {
		label := *rowLabel + "-" + *seatNumber
		row.Scan.SeatLabel = &label
	}
	return &row, nil
}

func (s *TicketReadStore) SetSignedToken(ctx context.Context, ticketID uuid.UUID, token string) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE tickets SET signed_token = $2 WHERE id = $1`, ticketID, token); err != nil {
		return infra.WrapRepoErr("failed to persist lazily signed token", err)
	}
	return nil
}
