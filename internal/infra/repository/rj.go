package repository

import (
	"context"

	"airtime/internal/domain/rj"
	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RJRepository struct{}

func NewRJRepository() *RJRepository {
	return &RJRepository{}
}

const createRJSQL = `
INSERT INTO rjs (id, station_id, rj_name, show_name, show_timing)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *RJRepository) Create(ctx context.Context, tx db.DBTX, entity *rj.RJ) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createRJSQL,
		entity.ID(), entity.StationID(), entity.RJName(), entity.ShowName(), entity.ShowTiming(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("station not found", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create rj", err)
	}

	return id, nil
}

const updateRJSQL = `
UPDATE rjs
SET rj_name = $2, show_name = $3, show_timing = $4, updated_at = now()
WHERE id = $1
`

func (r *RJRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, entity *rj.RJ) error {
	tag, err := tx.Exec(ctx, updateRJSQL, id, entity.RJName(), entity.ShowName(), entity.ShowTiming())
	if err != nil {
		return infra.WrapRepoErr("failed to update rj", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rj not found", nil, infra.KindNotFound)
	}

	return nil
}

const deleteRJSQL = `
DELETE FROM rjs WHERE id = $1
`

func (r *RJRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteRJSQL, id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("rj still referenced", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete rj", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rj not found", nil, infra.KindNotFound)
	}

	return nil
}
