package repository

import (
	"context"
	"time"

	"ticketera/internal/domain/inventory"
	"ticketera/internal/infra"
	"ticketera/internal/infra/db"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

type BatchRepository struct {
	db db.DBTX
}

func NewBatchRepository(dbtx db.DBTX) *BatchRepository {
	return &BatchRepository{db: dbtx}
}

var _ shared.BatchRepository = (*BatchRepository)(nil)

const findBatchForUpdateSQL = `
SELECT b.id, b.event_id, e.producer_id, b.name, b.price_cents,
       b.total_quantity, b.sold_quantity, b.start_date, b.sales_end_date,
       b.manual_sold_out, b.seated
FROM batches b
JOIN events e ON e.id = b.event_id
WHERE b.id = $1
FOR UPDATE OF b`

func (r *BatchRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	row := r.db.QueryRow(ctx, findBatchForUpdateSQL, id)

	var (
		batchID, eventID, producerID uuid.UUID
		name                         string
		priceCents                   int64
		totalQty, soldQty            int32
		startDate, salesEndDate      *time.Time
		manualSoldOut, seated        bool
	)
	if err := row.Scan(&batchID, &eventID, &producerID, &name, &priceCents,
		&totalQty, &soldQty, &startDate, &salesEndDate, &manualSoldOut, &seated); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("batch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock batch", err)
	}

	return inventory.ReconstructBatch(batchID, eventID, producerID, name, priceCents,
		totalQty, soldQty, startDate, salesEndDate, manualSoldOut, seated), nil
}

func (r *BatchRepository) UpdateSoldQuantity(ctx context.Context, b *inventory.Batch) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE batches SET sold_quantity = $2 WHERE id = $1`,
		b.ID(), b.SoldQuantity())
	if err != nil {
		return infra.WrapRepoErr("failed to update batch sold quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("batch disappeared under lock", nil, infra.KindNotFound)
	}
	return nil
}
