package readstore

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingByIDSQL = `
SELECT b.id, b.user_id, u.email, b.station_id, s.station_name,
       b.rj_id, r.rj_name, b.slot_id, sl.slot_time, sl.price_cents,
       b.booking_status, b.created_at, b.updated_at
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN radio_stations s ON s.id = b.station_id
JOIN rjs r ON r.id = b.rj_id
JOIN advertisement_slots sl ON sl.id = b.slot_id
WHERE b.id = $1
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&view.ID, &view.UserID, &view.UserEmail, &view.StationID, &view.StationName,
		&view.RJID, &view.RJName, &view.SlotID, &view.SlotTime, &view.PriceCents,
		&view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &view, nil
}

const findAllBookingsSQL = `
SELECT b.id, b.user_id, s.station_name, r.rj_name,
       b.slot_id, sl.slot_time, b.booking_status, b.created_at
FROM bookings b
JOIN radio_stations s ON s.id = b.station_id
JOIN rjs r ON r.id = b.rj_id
JOIN advertisement_slots sl ON sl.id = b.slot_id
ORDER BY b.created_at DESC, b.id DESC
`

func (r *BookingReadStore) FindAll(ctx context.Context, dbtx db.DBTX) ([]*queries.BookingListItem, error) {
	rows, err := dbtx.Query(ctx, findAllBookingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.StationName, &item.RJName,
			&item.SlotID, &item.SlotTime, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}
