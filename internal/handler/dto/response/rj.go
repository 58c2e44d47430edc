package response

import (
	"time"

	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type RJResponse struct {
	ID          uuid.UUID `json:"id"`
	StationID   uuid.UUID `json:"stationId"`
	StationName string    `json:"stationName"`
	RJName      string    `json:"rjName"`
	ShowName    string    `json:"showName"`
	ShowTiming  string    `json:"showTiming"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromRJView(rm *queries.RJView) *RJResponse {
	return &RJResponse{
		ID:          rm.ID,
		StationID:   rm.StationID,
		StationName: rm.StationName,
		RJName:      rm.RJName,
		ShowName:    rm.ShowName,
		ShowTiming:  rm.ShowTiming,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}
