package readstore

import (
	"context"
	"time"

	"ticketera/internal/domain/promo"
	"ticketera/internal/infra"
	"ticketera/internal/infra/db"
	"ticketera/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromoReadStore struct {
	db db.DBTX
}

func NewPromoReadStore(dbtx db.DBTX) *PromoReadStore {
	return &PromoReadStore{db: dbtx}
}

var _ queries.PromoViewRepo = (*PromoReadStore)(nil)

// FindByCode reads without a lock: the preview endpoint must never block a
// checkout that is consuming the same code.
func (s *PromoReadStore) FindByCode(ctx context.Context, code string) (*promo.Code, error) {
	var (
		id         uuid.UUID
		codeValue  string
		discountBp int32
		maxUses    *int32
		usedCount  int32
		validUntil *time.Time
		active     bool
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, code, discount_bp, max_uses, used_count, valid_until, is_active
		 FROM promo_codes WHERE code = $1`,
		code).Scan(&id, &codeValue, &discountBp, &maxUses, &usedCount, &validUntil, &active)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read promo code", err)
	}
	return promo.ReconstructCode(id, codeValue, discountBp, maxUses, usedCount, validUntil, active), nil
}
