package repository

import (
	"context"

	"airtime/internal/domain/adcontent"
	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AdContentRepository struct{}

func NewAdContentRepository() *AdContentRepository {
	return &AdContentRepository{}
}

const createAdContentSQL = `
INSERT INTO ad_contents (id, booking_id, user_id, file_path, ad_description)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *AdContentRepository) Create(ctx context.Context, tx db.DBTX, a *adcontent.AdContent) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createAdContentSQL,
		a.ID(), a.BookingID(), a.UserID(), a.FilePath(), a.AdDescription(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking or user not found", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create ad content", err)
	}

	return id, nil
}
