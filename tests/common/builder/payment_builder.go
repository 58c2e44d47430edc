//go:build unit || e2e

package builder

import (
	"time"

	reqdto "airtime/internal/handler/dto/request"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	UserID        uuid.UUID
	AmountCents   int64
	TransactionID string
	Status        string
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:            uuid.New(),
		BookingID:     uuid.New(),
		UserID:        uuid.New(),
		AmountCents:   250000,
		TransactionID: "txn-12345",
		Status:        "PENDING",
	}
}

func (p *PaymentBuilder) WithBookingID(bookingID uuid.UUID) *PaymentBuilder {
	p.BookingID = bookingID
	return p
}

func (p *PaymentBuilder) AsCompleted() *PaymentBuilder {
	p.Status = "COMPLETED"
	return p
}

func (p *PaymentBuilder) BuildDTO() reqdto.CreatePaymentRequest {
	return reqdto.CreatePaymentRequest{
		BookingID:     p.BookingID,
		AmountCents:   p.AmountCents,
		TransactionID: p.TransactionID,
	}
}

func (p *PaymentBuilder) BuildReadModel() *queries.PaymentView {
	return &queries.PaymentView{
		ID:            p.ID,
		BookingID:     p.BookingID,
		UserID:        p.UserID,
		AmountCents:   p.AmountCents,
		TransactionID: p.TransactionID,
		Status:        p.Status,
		BookingStatus: "PENDING",
		SlotTime:      time.Now().Add(48 * time.Hour),
		StationName:   "Radio One",
		CreatedAt:     time.Now(),
	}
}
