package readstore

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

const paymentViewSQL = `
SELECT p.id, p.booking_id, p.user_id, p.amount_cents, p.transaction_id,
       p.payment_status, b.booking_status, sl.slot_time, s.station_name, p.created_at
FROM payments p
JOIN bookings b ON b.id = p.booking_id
JOIN advertisement_slots sl ON sl.id = b.slot_id
JOIN radio_stations s ON s.id = b.station_id
`

const findPaymentByIDSQL = paymentViewSQL + `
WHERE p.id = $1
`

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	var view queries.PaymentView
	err := r.db.QueryRow(ctx, findPaymentByIDSQL, id).Scan(
		&view.ID, &view.BookingID, &view.UserID, &view.AmountCents, &view.TransactionID,
		&view.Status, &view.BookingStatus, &view.SlotTime, &view.StationName, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}

	return &view, nil
}

const findPaymentByBookingAndUserSQL = paymentViewSQL + `
WHERE p.booking_id = $1 AND p.user_id = $2
`

// FindByBookingAndUser relies on UNIQUE(booking_id, user_id): at most one row.
func (r *PaymentReadStore) FindByBookingAndUser(ctx context.Context, bookingID, userID uuid.UUID) (*queries.PaymentView, error) {
	var view queries.PaymentView
	err := r.db.QueryRow(ctx, findPaymentByBookingAndUserSQL, bookingID, userID).Scan(
		&view.ID, &view.BookingID, &view.UserID, &view.AmountCents, &view.TransactionID,
		&view.Status, &view.BookingStatus, &view.SlotTime, &view.StationName, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by booking and user", err)
	}

	return &view, nil
}

const completedPaymentExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM payments
    WHERE booking_id = $1 AND payment_status = 'COMPLETED'
)
`

func (r *PaymentReadStore) CompletedExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, completedPaymentExistsSQL, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check completed payment", err)
	}

	return exists, nil
}

const findPaymentsByUserSQL = paymentViewSQL + `
WHERE p.user_id = $1
ORDER BY p.created_at DESC, p.id DESC
`

func (r *PaymentReadStore) FindByUserID(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := dbtx.Query(ctx, findPaymentsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by user", err)
	}
	defer rows.Close()

	var result []*queries.PaymentView
	for rows.Next() {
		var view queries.PaymentView
		if err := rows.Scan(
			&view.ID, &view.BookingID, &view.UserID, &view.AmountCents, &view.TransactionID,
			&view.Status, &view.BookingStatus, &view.SlotTime, &view.StationName, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}

	return result, nil
}
