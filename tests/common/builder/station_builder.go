//go:build unit || e2e

package builder

import (
	"time"

	reqdto "airtime/internal/handler/dto/request"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type StationBuilder struct {
	ID             uuid.UUID
	StationName    string
	Location       string
	Description    string
	ContactEmail   string
	ContactPhone   string
	ApprovalStatus string
}

func NewStationBuilder() *StationBuilder {
	return &StationBuilder{
		ID:             uuid.New(),
		StationName:    "Radio One",
		Location:       "Mumbai",
		Description:    "Citywide FM station",
		ContactEmail:   "contact@radioone.example.com",
		ContactPhone:   "+91-22-5550100",
		ApprovalStatus: "PENDING",
	}
}

func (s *StationBuilder) AsApproved() *StationBuilder {
	s.ApprovalStatus = "APPROVED"
	return s
}

func (s *StationBuilder) BuildDTO() reqdto.CreateStationRequest {
	return reqdto.CreateStationRequest{
		StationName:  s.StationName,
		Location:     s.Location,
		Description:  s.Description,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
	}
}

func (s *StationBuilder) BuildReadModel() *queries.StationView {
	now := time.Now()
	return &queries.StationView{
		ID:             s.ID,
		StationName:    s.StationName,
		Location:       s.Location,
		Description:    s.Description,
		ContactEmail:   s.ContactEmail,
		ContactPhone:   s.ContactPhone,
		ApprovalStatus: s.ApprovalStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
