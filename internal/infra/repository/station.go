package repository

import (
	"context"

	"airtime/internal/domain/station"
	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StationRepository struct{}

func NewStationRepository() *StationRepository {
	return &StationRepository{}
}

const createStationSQL = `
INSERT INTO radio_stations (id, station_name, location, description, contact_email, contact_phone)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *StationRepository) Create(ctx context.Context, tx db.DBTX, st *station.Station) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createStationSQL,
		st.ID(), st.StationName(), st.Location(), st.Description(), st.ContactEmail(), st.ContactPhone(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("station already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create station", err)
	}

	return id, nil
}

const updateStationSQL = `
UPDATE radio_stations
SET station_name = $2, location = $3, description = $4, contact_email = $5, contact_phone = $6, updated_at = now()
WHERE id = $1
`

func (r *StationRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, st *station.Station) error {
	tag, err := tx.Exec(ctx, updateStationSQL,
		id, st.StationName(), st.Location(), st.Description(), st.ContactEmail(), st.ContactPhone(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update station", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("station not found", nil, infra.KindNotFound)
	}

	return nil
}

const deleteStationSQL = `
DELETE FROM radio_stations WHERE id = $1
`

func (r *StationRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteStationSQL, id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("station still referenced", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete station", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("station not found", nil, infra.KindNotFound)
	}

	return nil
}
