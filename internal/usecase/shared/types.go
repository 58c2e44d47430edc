package shared

import (
	"github.com/google/uuid"
)

type BookingSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	StationID uuid.UUID
	RJID      uuid.UUID
	SlotID    uuid.UUID
	Status    string
}

type PaymentSnapshot struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Status      string
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}

type StationSnapshot struct {
	ID             uuid.UUID
	StationName    string
	ApprovalStatus string
}

type RJSnapshot struct {
	ID        uuid.UUID
	StationID uuid.UUID
}
