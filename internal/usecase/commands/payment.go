package commands

import (
	"context"
	"errors"

	"airtime/internal/domain/payment"
	"airtime/internal/infra"
	"airtime/internal/pkg/errs"
	"airtime/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDuplicatePayment        = errs.New("payment already exists for this booking")
	ErrPaymentAlreadyInitiated = errs.New("payment already initiated for this booking")
	ErrPaymentNotFound         = errs.New("payment not found")
	ErrPaymentAlreadyCompleted = errs.New("payment already completed")
)

type CreatePaymentRequest struct {
	BookingID     uuid.UUID
	AmountCents   int64
	TransactionID string
}

type CreatePaymentResult struct {
	PaymentID uuid.UUID
}

type PaymentCommands interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest, userID uuid.UUID) (*CreatePaymentResult, error)
	CompletePayment(ctx context.Context, paymentID uuid.UUID) error
}

type paymentUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentUseCase(uow shared.UnitOfWork) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow}
}

// CreatePayment records a PENDING payment against a booking. The unique pair
// (booking, user) is enforced by the database, so concurrent duplicates
// collapse into a single row; the loser learns which state it collided with.
func (uc *paymentUseCaseImpl) CreatePayment(ctx context.Context, req CreatePaymentRequest, userID uuid.UUID) (*CreatePaymentResult, error) {
	var createdID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Reads().BookingByID(ctx, req.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		entity, derr := payment.NewPayment(req.BookingID, userID, req.AmountCents, req.TransactionID)
		if derr != nil {
			return derr
		}

		id, derr := tx.Payments().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicatePayment
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicatePayment) {
			return nil, uc.classifyDuplicate(ctx, req.BookingID, userID)
		}
		return nil, err
	}

	return &CreatePaymentResult{PaymentID: createdID}, nil
}

// classifyDuplicate tells an in-flight payment from a settled one. The failed
// insert has already aborted its transaction, so the existing row is read back
// outside of it.
func (uc *paymentUseCaseImpl) classifyDuplicate(ctx context.Context, bookingID, userID uuid.UUID) error {
	existing, err := uc.uow.CommandReads().PaymentByBookingAndUser(ctx, bookingID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDuplicatePayment
		}
		return err
	}

	if existing.Status == payment.StatusCompleted.String() {
		return ErrPaymentAlreadyCompleted
	}
	return ErrPaymentAlreadyInitiated
}

// CompletePayment transitions PENDING -> COMPLETED exactly once. A repeated
// call is rejected rather than treated as idempotent success, so callers can
// detect double-submission of payment confirmations.
func (uc *paymentUseCaseImpl) CompletePayment(ctx context.Context, paymentID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, derr := tx.Payments().MarkCompleted(ctx, tx.DB(), paymentID)
		if derr != nil {
			return derr
		}
		if affected == 0 {
			_, derr = tx.Reads().PaymentByID(ctx, paymentID)
			if derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrPaymentNotFound
				}
				return derr
			}
			return ErrPaymentAlreadyCompleted
		}
		return nil
	})
}
