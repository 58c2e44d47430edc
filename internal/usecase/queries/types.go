package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	RJID        uuid.UUID `json:"rj_id"`
	RJName      string    `json:"rj_name"`
	SlotID      uuid.UUID `json:"slot_id"`
	SlotTime    time.Time `json:"slot_time"`
	PriceCents  int64     `json:"price_cents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	StationName string    `json:"station_name"`
	RJName      string    `json:"rj_name"`
	SlotID      uuid.UUID `json:"slot_id"`
	SlotTime    time.Time `json:"slot_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	UserID        uuid.UUID `json:"user_id"`
	AmountCents   int64     `json:"amount_cents"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	BookingStatus string    `json:"booking_status"`
	SlotTime      time.Time `json:"slot_time"`
	StationName   string    `json:"station_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type SlotView struct {
	ID                 uuid.UUID `json:"id"`
	StationID          uuid.UUID `json:"station_id"`
	StationName        string    `json:"station_name"`
	RJID               uuid.UUID `json:"rj_id"`
	RJName             string    `json:"rj_name"`
	SlotTime           time.Time `json:"slot_time"`
	PriceCents         int64     `json:"price_cents"`
	AvailabilityStatus string    `json:"availability_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type StationView struct {
	ID             uuid.UUID `json:"id"`
	StationName    string    `json:"station_name"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	ContactEmail   string    `json:"contact_email"`
	ContactPhone   string    `json:"contact_phone"`
	ApprovalStatus string    `json:"approval_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RJView struct {
	ID          uuid.UUID `json:"id"`
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	RJName      string    `json:"rj_name"`
	ShowName    string    `json:"show_name"`
	ShowTiming  string    `json:"show_timing"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AdContentView struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	UserID        uuid.UUID `json:"user_id"`
	FilePath      string    `json:"file_path"`
	AdDescription string    `json:"ad_description"`
	CreatedAt     time.Time `json:"created_at"`
}

type ApprovalView struct {
	ID          uuid.UUID  `json:"id"`
	StationID   uuid.UUID  `json:"station_id"`
	StationName string     `json:"station_name"`
	AdminID     *uuid.UUID `json:"admin_id,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}
