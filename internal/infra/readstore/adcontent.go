package readstore

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdContentReadStore struct {
	db db.DBTX
}

func NewAdContentReadStore(dbtx db.DBTX) *AdContentReadStore {
	return &AdContentReadStore{db: dbtx}
}

const findAdContentByIDSQL = `
SELECT id, booking_id, user_id, file_path, ad_description, created_at
FROM ad_contents
WHERE id = $1
`

func (r *AdContentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdContentView, error) {
	var view queries.AdContentView
	err := r.db.QueryRow(ctx, findAdContentByIDSQL, id).Scan(
		&view.ID, &view.BookingID, &view.UserID, &view.FilePath,
		&view.AdDescription, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ad content not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ad content by ID", err)
	}

	return &view, nil
}

const findAdContentsByBookingSQL = `
SELECT id, booking_id, user_id, file_path, ad_description, created_at
FROM ad_contents
WHERE booking_id = $1
ORDER BY created_at DESC, id DESC
`

func (r *AdContentReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*queries.AdContentView, error) {
	rows, err := r.db.Query(ctx, findAdContentsByBookingSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ad contents by booking", err)
	}
	defer rows.Close()

	var result []*queries.AdContentView
	for rows.Next() {
		var view queries.AdContentView
		if err := rows.Scan(
			&view.ID, &view.BookingID, &view.UserID, &view.FilePath,
			&view.AdDescription, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ad content row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ad content rows", err)
	}

	return result, nil
}
