//go:build unit || e2e

package builder

import (
	"time"

	reqdto "airtime/internal/handler/dto/request"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID                 uuid.UUID
	StationID          uuid.UUID
	StationName        string
	RJID               uuid.UUID
	RJName             string
	SlotTime           time.Time
	PriceCents         int64
	AvailabilityStatus string
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:                 uuid.New(),
		StationID:          uuid.New(),
		StationName:        "Radio One",
		RJID:               uuid.New(),
		RJName:             "Alex Morning",
		SlotTime:           time.Now().Add(48 * time.Hour).Truncate(time.Second),
		PriceCents:         250000,
		AvailabilityStatus: "AVAILABLE",
	}
}

func (s *SlotBuilder) WithStationID(stationID uuid.UUID) *SlotBuilder {
	s.StationID = stationID
	return s
}

func (s *SlotBuilder) WithRJID(rjID uuid.UUID) *SlotBuilder {
	s.RJID = rjID
	return s
}

func (s *SlotBuilder) WithSlotTime(t time.Time) *SlotBuilder {
	s.SlotTime = t
	return s
}

func (s *SlotBuilder) AsBooked() *SlotBuilder {
	s.AvailabilityStatus = "BOOKED"
	return s
}

func (s *SlotBuilder) BuildDTO() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		StationID:  s.StationID,
		RJID:       s.RJID,
		SlotTime:   s.SlotTime,
		PriceCents: s.PriceCents,
	}
}

func (s *SlotBuilder) BuildReadModel() *queries.SlotView {
	now := time.Now()
	return &queries.SlotView{
		ID:                 s.ID,
		StationID:          s.StationID,
		StationName:        s.StationName,
		RJID:               s.RJID,
		RJName:             s.RJName,
		SlotTime:           s.SlotTime,
		PriceCents:         s.PriceCents,
		AvailabilityStatus: s.AvailabilityStatus,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
