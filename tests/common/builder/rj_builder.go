//go:build unit || e2e

package builder

import (
	"time"

	reqdto "airtime/internal/handler/dto/request"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type RJBuilder struct {
	ID         uuid.UUID
	StationID  uuid.UUID
	RJName     string
	ShowName   string
	ShowTiming string
}

func NewRJBuilder() *RJBuilder {
	return &RJBuilder{
		ID:         uuid.New(),
		StationID:  uuid.New(),
		RJName:     "Alex Morning",
		ShowName:   "Morning Drive",
		ShowTiming: "07:00-10:00",
	}
}

func (r *RJBuilder) WithStationID(stationID uuid.UUID) *RJBuilder {
	r.StationID = stationID
	return r
}

func (r *RJBuilder) BuildDTO() reqdto.CreateRJRequest {
	return reqdto.CreateRJRequest{
		StationID:  r.StationID,
		RJName:     r.RJName,
		ShowName:   r.ShowName,
		ShowTiming: r.ShowTiming,
	}
}

func (r *RJBuilder) BuildReadModel() *queries.RJView {
	now := time.Now()
	return &queries.RJView{
		ID:          r.ID,
		StationID:   r.StationID,
		StationName: "Radio One",
		RJName:      r.RJName,
		ShowName:    r.ShowName,
		ShowTiming:  r.ShowTiming,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
