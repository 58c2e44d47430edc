package request

import (
	"airtime/internal/usecase/commands"

	"github.com/google/uuid"
)

type UploadAdContentRequest struct {
	BookingID     uuid.UUID `json:"booking_id" binding:"required"`
	FilePath      string    `json:"file_path" binding:"required"`
	AdDescription string    `json:"ad_description" binding:"required"`
}

func (r *UploadAdContentRequest) ToCommand() commands.UploadAdContentRequest {
	return commands.UploadAdContentRequest{
		BookingID:     r.BookingID,
		FilePath:      r.FilePath,
		AdDescription: r.AdDescription,
	}
}
