package repository

import (
	"context"

	"airtime/internal/domain/slot"
	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

const createSlotSQL = `
INSERT INTO advertisement_slots (id, station_id, rj_id, slot_time, price_cents, availability_status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *SlotRepository) Create(ctx context.Context, tx db.DBTX, s *slot.Slot) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createSlotSQL,
		s.ID(), s.StationID(), s.RJID(), s.SlotTime(), s.Price().Cents(), s.Status().String(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("slot already exists for this rj and time", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("station or rj not found", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create slot", err)
	}

	return id, nil
}

const updateSlotSQL = `
UPDATE advertisement_slots
SET slot_time = $2, price_cents = $3, updated_at = now()
WHERE id = $1
`

func (r *SlotRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, s *slot.Slot) error {
	tag, err := tx.Exec(ctx, updateSlotSQL, id, s.SlotTime(), s.Price().Cents())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("slot already exists for this rj and time", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}

const deleteSlotSQL = `
DELETE FROM advertisement_slots WHERE id = $1
`

func (r *SlotRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteSlotSQL, id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("slot still referenced", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}

const markSlotBookedSQL = `
UPDATE advertisement_slots
SET availability_status = 'BOOKED', updated_at = now()
WHERE id = $1 AND availability_status = 'AVAILABLE'
`

// MarkBooked is the single point where a slot is claimed. The conditional
// update makes concurrent reservations race on the row: exactly one caller
// sees rows affected = 1.
func (r *SlotRepository) MarkBooked(ctx context.Context, tx db.DBTX, slotID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, markSlotBookedSQL, slotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark slot booked", err)
	}

	return tag.RowsAffected(), nil
}
