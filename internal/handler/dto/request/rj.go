package request

import (
	"airtime/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRJRequest struct {
	StationID  uuid.UUID `json:"station_id" binding:"required"`
	RJName     string    `json:"rj_name" binding:"required"`
	ShowName   string    `json:"show_name" binding:"required"`
	ShowTiming string    `json:"show_timing" binding:"required"`
}

func (r *CreateRJRequest) ToCommand() commands.CreateRJRequest {
	return commands.CreateRJRequest{
		StationID:  r.StationID,
		RJName:     r.RJName,
		ShowName:   r.ShowName,
		ShowTiming: r.ShowTiming,
	}
}
