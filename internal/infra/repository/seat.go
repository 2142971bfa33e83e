package repository

import (
	"context"

	"ticketera/internal/domain/inventory"
	"ticketera/internal/infra"
	"ticketera/internal/infra/db"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

type SeatRepository struct {
	db db.DBTX
}

func NewSeatRepository(dbtx db.DBTX) *SeatRepository {
	return &SeatRepository{db: dbtx}
}

var _ shared.SeatRepository = (*SeatRepository)(nil)

func (r *SeatRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Seat, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, batch_id, row_label, seat_number, status FROM seats WHERE id = $1 FOR UPDATE`,
		id)

	var (
		seatID, batchID      uuid.UUID
		rowLabel, seatNumber string
		status               string
	)
	if err := row.Scan(&seatID, &batchID, &rowLabel, &seatNumber, &status); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seat not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock seat", err)
	}

	return inventory.ReconstructSeat(seatID, batchID, rowLabel, seatNumber, inventory.SeatStatus(status)), nil
}

func (r *SeatRepository) UpdateStatus(ctx context.Context, s *inventory.Seat) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE seats SET status = $2 WHERE id = $1`,
		s.ID(), string(s.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update seat status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("seat disappeared under lock", nil, infra.KindNotFound)
	}
	return nil
}
