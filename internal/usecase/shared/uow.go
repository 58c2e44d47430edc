package shared

import (
	"context"
	"time"

	"airtime/internal/domain/adcontent"
	"airtime/internal/domain/booking"
	"airtime/internal/domain/payment"
	"airtime/internal/domain/rj"
	"airtime/internal/domain/slot"
	"airtime/internal/domain/station"
	"airtime/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Stations() StationRepository
	Approvals() ApprovalRepository
	RJs() RJRepository
	Slots() SlotRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	AdContents() AdContentRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*PaymentSnapshot, error)
	PaymentByBookingAndUser(ctx context.Context, bookingID, userID uuid.UUID) (*PaymentSnapshot, error)
	CompletedPaymentExists(ctx context.Context, bookingID uuid.UUID) (bool, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	StationByID(ctx context.Context, id uuid.UUID) (*StationSnapshot, error)
	RJByID(ctx context.Context, id uuid.UUID) (*RJSnapshot, error)
}

// Minimal snapshot for command read operations
type SlotSnapshot struct {
	ID                 uuid.UUID
	StationID          uuid.UUID
	RJID               uuid.UUID
	SlotTime           time.Time
	PriceCents         int64
	AvailabilityStatus string
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, email, passwordHash, firstName, lastName, role string) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type StationRepository interface {
	Create(ctx context.Context, tx db.DBTX, st *station.Station) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, st *station.Station) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ApprovalRepository interface {
	Create(ctx context.Context, tx db.DBTX, stationID uuid.UUID) (uuid.UUID, error)
	UpdateStatusByStation(ctx context.Context, tx db.DBTX, stationID, adminID uuid.UUID, status station.ApprovalStatus) (int64, error)
}

type RJRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *rj.RJ) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, r *rj.RJ) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type SlotRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *slot.Slot) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, s *slot.Slot) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// MarkBooked flips an AVAILABLE slot to BOOKED; returns rows affected so the
	// caller can tell an already-booked slot from a missing one.
	MarkBooked(ctx context.Context, tx db.DBTX, slotID uuid.UUID) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) (uuid.UUID, error)
	// MarkCompleted transitions PENDING -> COMPLETED; returns rows affected so
	// the caller can reject a second completion attempt.
	MarkCompleted(ctx context.Context, tx db.DBTX, paymentID uuid.UUID) (int64, error)
}

type AdContentRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *adcontent.AdContent) (uuid.UUID, error)
}
