package readstore

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
)

type StationReadStore struct {
	db db.DBTX
}

func NewStationReadStore(dbtx db.DBTX) *StationReadStore {
	return &StationReadStore{db: dbtx}
}

// The approval status shown is the latest request for the station.
const stationViewSQL = `
SELECT s.id, s.station_name, s.location, s.description, s.contact_email, s.contact_phone,
       COALESCE(
           (SELECT a.approval_status FROM admin_approval_requests a
            WHERE a.station_id = s.id
            ORDER BY a.created_at DESC LIMIT 1),
           'PENDING'
       ) AS approval_status,
       s.created_at, s.updated_at
FROM radio_stations s
`

const findStationByIDSQL = stationViewSQL + `
WHERE s.id = $1
`

func (r *StationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StationView, error) {
	var view queries.StationView
	err := r.db.QueryRow(ctx, findStationByIDSQL, id).Scan(
		&view.ID, &view.StationName, &view.Location, &view.Description,
		&view.ContactEmail, &view.ContactPhone, &view.ApprovalStatus,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("station not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find station by ID", err)
	}

	return &view, nil
}

// Listing is public, so only approved stations are exposed. Pending and
// rejected stations surface through the admin approval listings instead.
const findApprovedStationsSQL = `
SELECT * FROM (` + stationViewSQL + `) v
WHERE v.approval_status = 'APPROVED'
ORDER BY v.created_at DESC, v.id DESC
`

func (r *StationReadStore) FindAll(ctx context.Context) ([]*queries.StationView, error) {
	rows, err := r.db.Query(ctx, findApprovedStationsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stations", err)
	}
	defer rows.Close()

	var result []*queries.StationView
	for rows.Next() {
		var view queries.StationView
		if err := rows.Scan(
			&view.ID, &view.StationName, &view.Location, &view.Description,
			&view.ContactEmail, &view.ContactPhone, &view.ApprovalStatus,
			&view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan station row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate station rows", err)
	}

	return result, nil
}

const findApprovalsByStatusSQL = `
SELECT a.id, a.station_id, s.station_name, a.admin_id, a.approval_status, a.created_at, a.updated_at
FROM admin_approval_requests a
JOIN radio_stations s ON s.id = a.station_id
WHERE a.approval_status = $1
ORDER BY a.created_at ASC, a.id ASC
`

func (r *StationReadStore) FindApprovalsByStatus(ctx context.Context, status string) ([]*queries.ApprovalView, error) {
	rows, err := r.db.Query(ctx, findApprovalsByStatusSQL, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approval requests", err)
	}
	defer rows.Close()

	var result []*queries.ApprovalView
	for rows.Next() {
		var view queries.ApprovalView
		if err := rows.Scan(
			&view.ID, &view.StationID, &view.StationName, &view.AdminID,
			&view.Status, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approval row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate approval rows", err)
	}

	return result, nil
}
