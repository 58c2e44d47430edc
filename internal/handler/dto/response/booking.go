package response

import (
	"time"

	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	UserEmail   string    `json:"userEmail"`
	StationID   uuid.UUID `json:"stationId"`
	StationName string    `json:"stationName"`
	RJID        uuid.UUID `json:"rjId"`
	RJName      string    `json:"rjName"`
	SlotID      uuid.UUID `json:"slotId"`
	SlotTime    time.Time `json:"slotTime"`
	PriceCents  int64     `json:"priceCents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	StationName string    `json:"stationName"`
	RJName      string    `json:"rjName"`
	SlotID      uuid.UUID `json:"slotId"`
	SlotTime    time.Time `json:"slotTime"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          rm.ID,
		UserID:      rm.UserID,
		UserEmail:   rm.UserEmail,
		StationID:   rm.StationID,
		StationName: rm.StationName,
		RJID:        rm.RJID,
		RJName:      rm.RJName,
		SlotID:      rm.SlotID,
		SlotTime:    rm.SlotTime,
		PriceCents:  rm.PriceCents,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:          rm.ID,
		UserID:      rm.UserID,
		StationName: rm.StationName,
		RJName:      rm.RJName,
		SlotID:      rm.SlotID,
		SlotTime:    rm.SlotTime,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
	}
}
