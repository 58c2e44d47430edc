package readstore

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"
	"airtime/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RJReadStore struct {
	db db.DBTX
}

func NewRJReadStore(dbtx db.DBTX) *RJReadStore {
	return &RJReadStore{db: dbtx}
}

const rjViewSQL = `
SELECT r.id, r.station_id, s.station_name, r.rj_name, r.show_name, r.show_timing,
       r.created_at, r.updated_at
FROM rjs r
JOIN radio_stations s ON s.id = r.station_id
`

const findRJByIDSQL = rjViewSQL + `
WHERE r.id = $1
`

func (r *RJReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RJView, error) {
	var view queries.RJView
	err := r.db.QueryRow(ctx, findRJByIDSQL, id).Scan(
		&view.ID, &view.StationID, &view.StationName, &view.RJName,
		&view.ShowName, &view.ShowTiming, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rj not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rj by ID", err)
	}

	return &view, nil
}

const findAllRJsSQL = rjViewSQL + `
ORDER BY r.created_at DESC, r.id DESC
`

func (r *RJReadStore) FindAll(ctx context.Context) ([]*queries.RJView, error) {
	rows, err := r.db.Query(ctx, findAllRJsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rjs", err)
	}
	defer rows.Close()

	return scanRJViews(rows)
}

const findRJsByStationSQL = rjViewSQL + `
WHERE r.station_id = $1
ORDER BY r.created_at DESC, r.id DESC
`

func (r *RJReadStore) FindByStationID(ctx context.Context, stationID uuid.UUID) ([]*queries.RJView, error) {
	rows, err := r.db.Query(ctx, findRJsByStationSQL, stationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rjs by station", err)
	}
	defer rows.Close()

	return scanRJViews(rows)
}

func scanRJViews(rows pgx.Rows) ([]*queries.RJView, error) {
	var result []*queries.RJView
	for rows.Next() {
		var view queries.RJView
		if err := rows.Scan(
			&view.ID, &view.StationID, &view.StationName, &view.RJName,
			&view.ShowName, &view.ShowTiming, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rj row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rj rows", err)
	}

	return result, nil
}
