package response

import (
	"time"

	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"bookingId"`
	UserID        uuid.UUID `json:"userId"`
	AmountCents   int64     `json:"amountCents"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	BookingStatus string    `json:"bookingStatus"`
	SlotTime      time.Time `json:"slotTime"`
	StationName   string    `json:"stationName"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:            rm.ID,
		BookingID:     rm.BookingID,
		UserID:        rm.UserID,
		AmountCents:   rm.AmountCents,
		TransactionID: rm.TransactionID,
		Status:        rm.Status,
		BookingStatus: rm.BookingStatus,
		SlotTime:      rm.SlotTime,
		StationName:   rm.StationName,
		CreatedAt:     rm.CreatedAt,
	}
}
