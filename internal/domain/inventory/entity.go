package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSoldOut        = errors.New("not enough tickets remaining")
	ErrManuallyClosed = errors.New("batch is manually marked sold out")
	ErrSalesClosed    = errors.New("sales for this batch have ended")
	ErrInvalidRelease = errors.New("release quantity must be positive")
)

// Batch is a priced, capacity-limited tier of purchasable units for an
// event. It is created by catalog management; this service only moves
// soldQuantity inside the reservation transaction that holds its row lock.
type Batch struct {
	id            uuid.UUID
	eventID       uuid.UUID
	producerID    uuid.UUID
	name          string
	priceCents    int64
	totalQuantity int32
	soldQuantity  int32
	startDate     *time.Time
	salesEndDate  *time.Time
	manualSoldOut bool
	seated        bool
}

func ReconstructBatch(
	id, eventID, producerID uuid.UUID,
	name string,
	priceCents int64,
	totalQuantity, soldQuantity int32,
	startDate, salesEndDate *time.Time,
	manualSoldOut, seated bool,
) *Batch {
	return &Batch{
		id:            id,
		eventID:       eventID,
		producerID:    producerID,
		name:          name,
		priceCents:    priceCents,
		totalQuantity: totalQuantity,
		soldQuantity:  soldQuantity,
		startDate:     startDate,
		salesEndDate:  salesEndDate,
		manualSoldOut: manualSoldOut,
		seated:        seated,
	}
}

// Reserve takes quantity units off the remaining capacity. Check order
// matters: the manual flag and the sales window reject before capacity is
// even considered, so a closed batch never reports SoldOut.
func (b *Batch) Reserve(quantity int32, now time.Time) error {
	if b.manualSoldOut {
		return ErrManuallyClosed
	}
	if b.salesEndDate != nil && now.After(*b.salesEndDate) {
		return ErrSalesClosed
	}
	if b.totalQuantity-b.soldQuantity < quantity {
		return ErrSoldOut
	}
	b.soldQuantity += quantity
	return nil
}

// Release returns quantity units to the pool, clamping at zero so a
// double release can never drive the sold count negative.
func (b *Batch) Release(quantity int32) error {
	if quantity <= 0 {
		return ErrInvalidRelease
	}
	b.soldQuantity -= quantity
	if b.soldQuantity < 0 {
		b.soldQuantity = 0
	}
	return nil
}

func (b *Batch) Remaining() int32 {
	return b.totalQuantity - b.soldQuantity
}

func (b *Batch) ID() uuid.UUID            { return b.id }
func (b *Batch) EventID() uuid.UUID       { return b.eventID }
func (b *Batch) ProducerID() uuid.UUID    { return b.producerID }
func (b *Batch) Name() string             { return b.name }
func (b *Batch) PriceCents() int64        { return b.priceCents }
func (b *Batch) TotalQuantity() int32     { return b.totalQuantity }
func (b *Batch) SoldQuantity() int32      { return b.soldQuantity }
func (b *Batch) StartDate() *time.Time    { return b.startDate }
func (b *Batch) SalesEndDate() *time.Time { return b.salesEndDate }
func (b *Batch) ManualSoldOut() bool      { return b.manualSoldOut }
func (b *Batch) Seated() bool             { return b.seated }
