package commands

import (
	"context"

	"airtime/internal/domain/adcontent"
	"airtime/internal/infra"
	"airtime/internal/pkg/errs"
	"airtime/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotCompleted = errs.New("no completed payment for this booking")
	ErrUploaderNotFound    = errs.New("uploading user not found")
)

type UploadAdContentRequest struct {
	BookingID     uuid.UUID
	FilePath      string
	AdDescription string
}

type UploadAdContentResult struct {
	AdContentID uuid.UUID
}

type AdContentCommands interface {
	Upload(ctx context.Context, req UploadAdContentRequest, userID uuid.UUID) (*UploadAdContentResult, error)
}

type adContentUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAdContentUseCase(uow shared.UnitOfWork) AdContentCommands {
	return &adContentUseCaseImpl{uow: uow}
}

// Upload gates creative material on a completed payment for the booking.
// The payment check is booking-scoped, not uploader-scoped: any completed
// payment on the booking opens the gate.
func (uc *adContentUseCaseImpl) Upload(ctx context.Context, req UploadAdContentRequest, userID uuid.UUID) (*UploadAdContentResult, error) {
	var createdID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Reads().BookingByID(ctx, req.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		paid, derr := tx.Reads().CompletedPaymentExists(ctx, req.BookingID)
		if derr != nil {
			return derr
		}
		if !paid {
			return ErrPaymentNotCompleted
		}

		if _, derr = tx.Reads().UserByID(ctx, userID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUploaderNotFound
			}
			return derr
		}

		entity, derr := adcontent.NewAdContent(req.BookingID, userID, req.FilePath, req.AdDescription)
		if derr != nil {
			return derr
		}

		id, derr := tx.AdContents().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UploadAdContentResult{AdContentID: createdID}, nil
}
