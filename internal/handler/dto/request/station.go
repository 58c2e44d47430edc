package request

import (
	"airtime/internal/usecase/commands"
)

type CreateStationRequest struct {
	StationName  string `json:"station_name" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	ContactPhone string `json:"contact_phone" binding:"required"`
}

func (r *CreateStationRequest) ToCommand() commands.CreateStationRequest {
	return commands.CreateStationRequest{
		StationName:  r.StationName,
		Location:     r.Location,
		Description:  r.Description,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
	}
}
