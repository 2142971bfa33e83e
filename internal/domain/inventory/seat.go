package inventory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrSeatTaken = errors.New("seat is already taken")

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	// SeatLocked exists in the schema for hold-then-checkout flows; the
	// reservation path models exclusivity with the row lock instead and
	// moves seats straight from AVAILABLE to SOLD.
	SeatLocked SeatStatus = "LOCKED"
	SeatSold   SeatStatus = "SOLD"
)

type Seat struct {
	id         uuid.UUID
	batchID    uuid.UUID
	rowLabel   string
	seatNumber string
	status     SeatStatus
}

func ReconstructSeat(id, batchID uuid.UUID, rowLabel, seatNumber string, status SeatStatus) *Seat {
	return &Seat{
		id:         id,
		batchID:    batchID,
		rowLabel:   rowLabel,
		seatNumber: seatNumber,
		status:     status,
	}
}

// Sell transitions the seat from AVAILABLE to SOLD. Exactly one committed
// order ever makes this transition for a given seat.
func (s *Seat) Sell() error {
	if s.status != SeatAvailable {
		return ErrSeatTaken
	}
	s.status = SeatSold
	return nil
}

// Free returns the seat to the pool after a rejected order.
func (s *Seat) Free() {
	s.status = SeatAvailable
}

func (s *Seat) Label() string {
	return fmt.Sprintf("%s-%s", s.rowLabel, s.seatNumber)
}

func (s *Seat) ID() uuid.UUID      { return s.id }
func (s *Seat) BatchID() uuid.UUID { return s.batchID }
func (s *Seat) RowLabel() string   { return s.rowLabel }
func (s *Seat) SeatNumber() string { return s.seatNumber }
func (s *Seat) Status() SeatStatus { return s.status }
