package response

import (
	"time"

	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID                 uuid.UUID `json:"id"`
	StationID          uuid.UUID `json:"stationId"`
	StationName        string    `json:"stationName"`
	RJID               uuid.UUID `json:"rjId"`
	RJName             string    `json:"rjName"`
	SlotTime           time.Time `json:"slotTime"`
	PriceCents         int64     `json:"priceCents"`
	AvailabilityStatus string    `json:"availabilityStatus"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromSlotView(rm *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:                 rm.ID,
		StationID:          rm.StationID,
		StationName:        rm.StationName,
		RJID:               rm.RJID,
		RJName:             rm.RJName,
		SlotTime:           rm.SlotTime,
		PriceCents:         rm.PriceCents,
		AvailabilityStatus: rm.AvailabilityStatus,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}
