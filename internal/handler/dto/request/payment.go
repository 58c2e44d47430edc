package request

import (
	"airtime/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID     uuid.UUID `json:"booking_id" binding:"required"`
	AmountCents   int64     `json:"amount_cents" binding:"required"`
	TransactionID string    `json:"transaction_id" binding:"required"`
}

func (r *CreatePaymentRequest) ToCommand() commands.CreatePaymentRequest {
	return commands.CreatePaymentRequest{
		BookingID:     r.BookingID,
		AmountCents:   r.AmountCents,
		TransactionID: r.TransactionID,
	}
}
