//go:build unit || e2e

package builder

import (
	"time"

	reqdto "airtime/internal/handler/dto/request"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	UserEmail   string
	StationID   uuid.UUID
	StationName string
	RJID        uuid.UUID
	RJName      string
	SlotID      uuid.UUID
	SlotTime    time.Time
	PriceCents  int64
	Status      string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		UserEmail:   "test@example.com",
		StationID:   uuid.New(),
		StationName: "Radio One",
		RJID:        uuid.New(),
		RJName:      "Alex Morning",
		SlotID:      uuid.New(),
		SlotTime:    time.Now().Add(48 * time.Hour).Truncate(time.Second),
		PriceCents:  250000,
		Status:      "PENDING",
	}
}

func (b *BookingBuilder) WithSlotID(slotID uuid.UUID) *BookingBuilder {
	b.SlotID = slotID
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SlotID: b.SlotID,
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:          b.ID,
		UserID:      b.UserID,
		UserEmail:   b.UserEmail,
		StationID:   b.StationID,
		StationName: b.StationName,
		RJID:        b.RJID,
		RJName:      b.RJName,
		SlotID:      b.SlotID,
		SlotTime:    b.SlotTime,
		PriceCents:  b.PriceCents,
		Status:      b.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          b.ID,
		UserID:      b.UserID,
		StationName: b.StationName,
		RJName:      b.RJName,
		SlotID:      b.SlotID,
		SlotTime:    b.SlotTime,
		Status:      b.Status,
		CreatedAt:   time.Now(),
	}
}
