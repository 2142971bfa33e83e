package promo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInactive     = errors.New("promo code is inactive")
	ErrExpired      = errors.New("promo code has expired")
	ErrLimitReached = errors.New("promo code usage limit reached")
)

// Code is a promotional discount with an optional usage budget. Validate is
// the read-only pre-check used by the apply-code preview; Consume repeats the
// same checks and spends one use.  The coordinator calls Consume under the
// code's row lock because a preview result may be stale by commit time.
type Code struct {
	id         uuid.UUID
	code       string
	discountBp int32
	maxUses    *int32
	usedCount  int32
	validUntil *time.Time
	active     bool
}

func ReconstructCode(
	id uuid.UUID,
	code string,
	discountBp int32,
	maxUses *int32,
	usedCount int32,
	validUntil *time.Time,
	active bool,
) *Code {
	return &Code{
		id:         id,
		code:       code,
		discountBp: discountBp,
		maxUses:    maxUses,
		usedCount:  usedCount,
		validUntil: validUntil,
		active:     active,
	}
}

func (c *Code) Validate(now time.Time) error {
	if !c.active {
		return ErrInactive
	}
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return ErrLimitReached
	}
	if c.validUntil != nil && now.After(*c.validUntil) {
		return ErrExpired
	}
	return nil
}

func (c *Code) Consume(now time.Time) error {
	if err := c.Validate(now); err != nil {
		return err
	}
	c.usedCount++
	return nil
}

func (c *Code) ID() uuid.UUID          { return c.id }
func (c *Code) Value() string          { return c.code }
func (c *Code) DiscountBp() int32      { return c.discountBp }
func (c *Code) MaxUses() *int32        { return c.maxUses }
func (c *Code) UsedCount() int32       { return c.usedCount }
func (c *Code) ValidUntil() *time.Time { return c.validUntil }
func (c *Code) Active() bool           { return c.active }

// DiscountPercent is the human-facing percentage (basis points / 100).
func (c *Code) DiscountPercent() float64 {
	return float64(c.discountBp) / 100.0
}
