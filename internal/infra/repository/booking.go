package repository

import (
	"context"

	"airtime/internal/domain/booking"
	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, user_id, station_id, rj_id, slot_id, booking_status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(), b.UserID(), b.StationID(), b.RJID(), b.SlotID(), b.Status().String(),
	).Scan(&id)
	if err != nil {
		// UNIQUE(slot_id) backstop; normally MarkBooked loses the race first
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("slot already booked", err, infra.KindConflict)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("related record not found", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}
