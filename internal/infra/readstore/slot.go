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

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

const slotViewSQL = `
SELECT sl.id, sl.station_id, s.station_name, sl.rj_id, r.rj_name,
       sl.slot_time, sl.price_cents, sl.availability_status, sl.created_at, sl.updated_at
FROM advertisement_slots sl
JOIN radio_stations s ON s.id = sl.station_id
JOIN rjs r ON r.id = sl.rj_id
`

const findSlotByIDSQL = slotViewSQL + `
WHERE sl.id = $1
`

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	var view queries.SlotView
	err := r.db.QueryRow(ctx, findSlotByIDSQL, id).Scan(
		&view.ID, &view.StationID, &view.StationName, &view.RJID, &view.RJName,
		&view.SlotTime, &view.PriceCents, &view.AvailabilityStatus, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	return &view, nil
}

const findAllSlotsSQL = slotViewSQL + `
ORDER BY sl.slot_time ASC, sl.id ASC
`

const findAvailableSlotsSQL = slotViewSQL + `
WHERE sl.availability_status = 'AVAILABLE'
ORDER BY sl.slot_time ASC, sl.id ASC
`

func (r *SlotReadStore) FindAll(ctx context.Context, availableOnly bool) ([]*queries.SlotView, error) {
	sql := findAllSlotsSQL
	if availableOnly {
		sql = findAvailableSlotsSQL
	}

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	return scanSlotViews(rows)
}

const findSlotsByStationSQL = slotViewSQL + `
WHERE sl.station_id = $1
ORDER BY sl.slot_time ASC, sl.id ASC
`

func (r *SlotReadStore) FindByStationID(ctx context.Context, stationID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, findSlotsByStationSQL, stationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots by station", err)
	}
	defer rows.Close()

	return scanSlotViews(rows)
}

func scanSlotViews(rows pgx.Rows) ([]*queries.SlotView, error) {
	var result []*queries.SlotView
	for rows.Next() {
		var view queries.SlotView
		if err := rows.Scan(
			&view.ID, &view.StationID, &view.StationName, &view.RJID, &view.RJName,
			&view.SlotTime, &view.PriceCents, &view.AvailabilityStatus, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}

	return result, nil
}
