package response

import (
	"time"

	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdContentResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"bookingId"`
	UserID        uuid.UUID `json:"userId"`
	FilePath      string    `json:"filePath"`
	AdDescription string    `json:"adDescription"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromAdContentView(rm *queries.AdContentView) *AdContentResponse {
	return &AdContentResponse{
		ID:            rm.ID,
		BookingID:     rm.BookingID,
		UserID:        rm.UserID,
		FilePath:      rm.FilePath,
		AdDescription: rm.AdDescription,
		CreatedAt:     rm.CreatedAt,
	}
}
