package payment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrBookingIDRequired     = errors.New("booking id is required")
	ErrUserIDRequired        = errors.New("user id is required")
	ErrTransactionIDRequired = errors.New("transaction id is required")
)

// Payment records a monetary transaction against a booking. The amount and
// transaction id are caller-supplied opaque values; no check against the slot
// price is performed.
type Payment struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	userID        uuid.UUID
	amountCents   int64
	transactionID string
	status        Status
}

func NewPayment(bookingID, userID uuid.UUID, amountCents int64, transactionID string) (*Payment, error) {
	if bookingID == uuid.Nil {
		return nil, ErrBookingIDRequired
	}
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, ErrTransactionIDRequired
	}

	return &Payment{
		id:            uuid.New(),
		bookingID:     bookingID,
		userID:        userID,
		amountCents:   amountCents,
		transactionID: transactionID,
		status:        StatusPending,
	}, nil
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) UserID() uuid.UUID     { return p.userID }
func (p *Payment) AmountCents() int64    { return p.amountCents }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) Status() Status        { return p.status }
