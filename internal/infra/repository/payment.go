package repository

import (
	"context"

	"airtime/internal/domain/payment"
	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

const createPaymentSQL = `
INSERT INTO payments (id, booking_id, user_id, amount_cents, transaction_id, payment_status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createPaymentSQL,
		p.ID(), p.BookingID(), p.UserID(), p.AmountCents(), p.TransactionID(), p.Status().String(),
	).Scan(&id)
	if err != nil {
		// UNIQUE(booking_id, user_id) closes the duplicate-payment race
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("payment already exists for this booking and user", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking or user not found", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}

	return id, nil
}

const markPaymentCompletedSQL = `
UPDATE payments
SET payment_status = 'COMPLETED', updated_at = now()
WHERE id = $1 AND payment_status <> 'COMPLETED'
`

// MarkCompleted succeeds at most once per payment; a second attempt affects
// zero rows.
func (r *PaymentRepository) MarkCompleted(ctx context.Context, tx db.DBTX, paymentID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, markPaymentCompletedSQL, paymentID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark payment completed", err)
	}

	return tag.RowsAffected(), nil
}
