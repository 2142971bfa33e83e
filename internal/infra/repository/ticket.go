package repository

import (
	"context"

	"ticketera/internal/domain/order"
	"ticketera/internal/infra"
	"ticketera/internal/infra/db"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(dbtx db.DBTX) *TicketRepository {
	return &TicketRepository{db: dbtx}
}

var _ shared.TicketRepository = (*TicketRepository)(nil)

func (r *TicketRepository) Create(ctx context.Context, t *order.Ticket) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tickets (id, code, signed_token, is_used, order_id, batch_id, seat_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Code, t.SignedToken, t.IsUsed, t.OrderID, t.BatchID, t.SeatID)
	if err != nil {
		return infra.WrapRepoErr("failed to insert ticket", err)
	}
	return nil
}

func (r *TicketRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*order.Ticket, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, code, signed_token, is_used, order_id, batch_id, seat_id
		 FROM tickets WHERE order_id = $1 ORDER BY created_at`,
		orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tickets by order", err)
	}
	defer rows.Close()

	var tickets []*order.Ticket
	for rows.Next() {
		var t order.Ticket
		if err := rows.Scan(&t.ID, &t.Code, &t.SignedToken, &t.IsUsed, &t.OrderID, &t.BatchID, &t.SeatID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket", err)
		}
		tickets = append(tickets, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tickets", err)
	}
	return tickets, nil
}

func (r *TicketRepository) SetSignedToken(ctx context.Context, id uuid.UUID, token string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tickets SET signed_token = $2 WHERE id = $1`,
		id, token)
	if err != nil {
		return infra.WrapRepoErr("failed to set ticket token", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TicketRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE order_id = $1`, orderID); err != nil {
		return infra.WrapRepoErr("failed to delete tickets by order", err)
	}
	return nil
}
