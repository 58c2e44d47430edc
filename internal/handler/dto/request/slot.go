package request

import (
	"time"

	"airtime/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateSlotRequest struct {
	StationID  uuid.UUID `json:"station_id" binding:"required"`
	RJID       uuid.UUID `json:"rj_id" binding:"required"`
	SlotTime   time.Time `json:"slot_time" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"required,min=0"`
}

func (r *CreateSlotRequest) ToCommand() commands.CreateSlotRequest {
	return commands.CreateSlotRequest{
		StationID:  r.StationID,
		RJID:       r.RJID,
		SlotTime:   r.SlotTime,
		PriceCents: r.PriceCents,
	}
}

type UpdateSlotRequest struct {
	SlotTime   time.Time `json:"slot_time" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"required,min=0"`
}

func (r *UpdateSlotRequest) ToCommand() commands.UpdateSlotRequest {
	return commands.UpdateSlotRequest{
		SlotTime:   r.SlotTime,
		PriceCents: r.PriceCents,
	}
}
