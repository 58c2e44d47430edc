package repository

import (
	"context"

	"airtime/internal/domain/station"
	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ApprovalRepository struct{}

func NewApprovalRepository() *ApprovalRepository {
	return &ApprovalRepository{}
}

const createApprovalSQL = `
INSERT INTO admin_approval_requests (station_id, approval_status)
VALUES ($1, 'PENDING')
RETURNING id
`

// Create opens a pending request; admin_id stays NULL until an admin decides.
func (r *ApprovalRepository) Create(ctx context.Context, tx db.DBTX, stationID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createApprovalSQL, stationID).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("station not found", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create approval request", err)
	}

	return id, nil
}

const updateApprovalStatusSQL = `
UPDATE admin_approval_requests
SET approval_status = $3, admin_id = $2, updated_at = now()
WHERE station_id = $1 AND approval_status = 'PENDING'
`

// UpdateStatusByStation resolves the pending request for a station. Zero rows
// means there is no pending request left to decide.
func (r *ApprovalRepository) UpdateStatusByStation(ctx context.Context, tx db.DBTX, stationID, adminID uuid.UUID, status station.ApprovalStatus) (int64, error) {
	tag, err := tx.Exec(ctx, updateApprovalStatusSQL, stationID, adminID, status.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update approval status", err)
	}

	return tag.RowsAffected(), nil
}
