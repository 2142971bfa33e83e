package queries

import (
	"context"
	"time"

	"ticketera/internal/domain/promo"
	"ticketera/internal/infra"
	"ticketera/internal/pkg/clock"
	"ticketera/internal/pkg/errs"
)

var ErrPromoInvalid = errs.New("promo code is not usable")

type PromoView struct {
	Code            string     `json:"code"`
	DiscountBp      int32      `json:"discount_bp"`
	DiscountPercent float64    `json:"discount_percent"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
}

type PromoQueries interface {
	// Validate is the read-only pre-check. A passing result is advisory:
	// checkout re-validates under a row lock before consuming a use.
	Validate(ctx context.Context, code string) (*PromoView, error)
}

type PromoViewRepo interface {
	FindByCode(ctx context.Context, code string) (*promo.Code, error)
}

type promoQueriesImpl struct {
	repo  PromoViewRepo
	clock clock.Clock
}

func NewPromoQueries(repo PromoViewRepo, clk clock.Clock) PromoQueries {
	return &promoQueriesImpl{repo: repo, clock: clk}
}

func (q *promoQueriesImpl) Validate(ctx context.Context, code string) (*PromoView, error) {
	c, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := c.Validate(q.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrPromoInvalid)
	}
	return &PromoView{
		Code:            c.Value(),
		DiscountBp:      c.DiscountBp(),
		DiscountPercent: c.DiscountPercent(),
		ValidUntil:      c.ValidUntil(),
	}, nil
}
