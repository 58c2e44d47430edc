package request

import (
	"airtime/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
}

func (r *CreateBookingRequest) ToCommand() commands.ReserveSlotRequest {
	return commands.ReserveSlotRequest{
		SlotID: r.SlotID,
	}
}
