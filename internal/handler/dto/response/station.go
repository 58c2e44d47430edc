package response

import (
	"time"

	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type StationResponse struct {
	ID             uuid.UUID `json:"id"`
	StationName    string    `json:"stationName"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	ContactEmail   string    `json:"contactEmail"`
	ContactPhone   string    `json:"contactPhone"`
	ApprovalStatus string    `json:"approvalStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ApprovalResponse struct {
	ID          uuid.UUID  `json:"id"`
	StationID   uuid.UUID  `json:"stationId"`
	StationName string     `json:"stationName"`
	AdminID     *uuid.UUID `json:"adminId,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromStationView(rm *queries.StationView) *StationResponse {
	return &StationResponse{
		ID:             rm.ID,
		StationName:    rm.StationName,
		Location:       rm.Location,
		Description:    rm.Description,
		ContactEmail:   rm.ContactEmail,
		ContactPhone:   rm.ContactPhone,
		ApprovalStatus: rm.ApprovalStatus,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}

func FromApprovalView(rm *queries.ApprovalView) *ApprovalResponse {
	return &ApprovalResponse{
		ID:          rm.ID,
		StationID:   rm.StationID,
		StationName: rm.StationName,
		AdminID:     rm.AdminID,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}
