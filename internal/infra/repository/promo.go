package repository

import (
	"context"
	"time"

	"ticketera/internal/domain/promo"
	"ticketera/internal/infra"
	"ticketera/internal/infra/db"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromoRepository struct {
	db db.DBTX
}

func NewPromoRepository(dbtx db.DBTX) *PromoRepository {
	return &PromoRepository{db: dbtx}
}

var _ shared.PromoRepository = (*PromoRepository)(nil)

func (r *PromoRepository) FindByCodeForUpdate(ctx context.Context, code string) (*promo.Code, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, code, discount_bp, max_uses, used_count, valid_until, is_active
		 FROM promo_codes WHERE code = $1 FOR UPDATE`,
		code)
	return scanPromo(row)
}

func (r *PromoRepository) UpdateUsedCount(ctx context.Context, c *promo.Code) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE promo_codes SET used_count = $2 WHERE id = $1`,
		c.ID(), c.UsedCount())
	if err != nil {
		return infra.WrapRepoErr("failed to update promo used count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promo code disappeared under lock", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPromo(row rowScanner) (*promo.Code, error) {
	var (
		id         uuid.UUID
		code       string
		discountBp int32
		maxUses    *int32
		usedCount  int32
		validUntil *time.Time
		active     bool
	)
	if err := row.Scan(&id, &code, &discountBp, &maxUses, &usedCount, &validUntil, &active); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan promo code", err)
	}
	return promo.ReconstructCode(id, code, discountBp, maxUses, usedCount, validUntil, active), nil
}
