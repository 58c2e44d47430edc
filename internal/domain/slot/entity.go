package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStationIDRequired = errors.New("station id is required")
	ErrRJIDRequired      = errors.New("rj id is required")
	ErrInvalidSlotTime   = errors.New("invalid slot time")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

// Slot is a bookable advertising time window at a station, hosted by an RJ.
// Availability flips AVAILABLE -> BOOKED exactly once, on reservation;
// there is no transition back.
type Slot struct {
	id        uuid.UUID
	stationID uuid.UUID
	rjID      uuid.UUID
	slotTime  time.Time
	price     Money
	status    Status
}

func NewSlot(stationID, rjID uuid.UUID, slotTime time.Time, priceCents int64) (*Slot, error) {
	if stationID == uuid.Nil {
		return nil, ErrStationIDRequired
	}
	if rjID == uuid.Nil {
		return nil, ErrRJIDRequired
	}
	if slotTime.IsZero() {
		return nil, ErrInvalidSlotTime
	}
	price, err := NewMoney(priceCents)
	if err != nil {
		return nil, ErrNegativePrice
	}

	return &Slot{
		id:        uuid.New(),
		stationID: stationID,
		rjID:      rjID,
		slotTime:  slotTime.UTC(),
		price:     price,
		status:    StatusAvailable,
	}, nil
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) StationID() uuid.UUID { return s.stationID }
func (s *Slot) RJID() uuid.UUID      { return s.rjID }
func (s *Slot) SlotTime() time.Time  { return s.slotTime }
func (s *Slot) Price() Money         { return s.price }
func (s *Slot) Status() Status       { return s.status }

func (s *Slot) IsAvailable() bool {
	return s.status == StatusAvailable
}
