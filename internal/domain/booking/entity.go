package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUserIDRequired    = errors.New("user id is required")
	ErrStationIDRequired = errors.New("station id is required")
	ErrRJIDRequired      = errors.New("rj id is required")
	ErrSlotIDRequired    = errors.New("slot id is required")
)

// Booking is a user's claim on a slot. It is immutable after creation;
// no update or cancel path exists.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	stationID uuid.UUID
	rjID      uuid.UUID
	slotID    uuid.UUID
	status    Status
}

func NewBooking(userID, stationID, rjID, slotID uuid.UUID) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	if stationID == uuid.Nil {
		return nil, ErrStationIDRequired
	}
	if rjID == uuid.Nil {
		return nil, ErrRJIDRequired
	}
	if slotID == uuid.Nil {
		return nil, ErrSlotIDRequired
	}

	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		stationID: stationID,
		rjID:      rjID,
		slotID:    slotID,
		status:    StatusPending,
	}, nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) StationID() uuid.UUID { return b.stationID }
func (b *Booking) RJID() uuid.UUID      { return b.rjID }
func (b *Booking) SlotID() uuid.UUID    { return b.slotID }
func (b *Booking) Status() Status       { return b.status }
