package commands

import (
	"context"

	"airtime/internal/domain/booking"
	"airtime/internal/infra"
	"airtime/internal/pkg/errs"
	"airtime/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound    = errs.New("slot not found")
	ErrSlotUnavailable = errs.New("slot already booked")
)

type ReserveSlotRequest struct {
	SlotID uuid.UUID
}

type ReserveSlotResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	ReserveSlot(ctx context.Context, req ReserveSlotRequest, userID uuid.UUID) (*ReserveSlotResult, error)
}

type bookingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBookingUseCase(uow shared.UnitOfWork) BookingCommands {
	return &bookingUseCaseImpl{uow: uow}
}

// ReserveSlot claims the slot and records the booking in one transaction.
// The conditional slot update decides the winner under concurrency; losers
// get ErrSlotUnavailable without ever inserting a booking row.
func (uc *bookingUseCaseImpl) ReserveSlot(ctx context.Context, req ReserveSlotRequest, userID uuid.UUID) (*ReserveSlotResult, error) {
	var createdID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slotSnap, derr := tx.Reads().SlotByID(ctx, req.SlotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return derr
		}

		affected, derr := tx.Slots().MarkBooked(ctx, tx.DB(), req.SlotID)
		if derr != nil {
			return derr
		}
		if affected == 0 {
			return ErrSlotUnavailable
		}

		entity, derr := booking.NewBooking(userID, slotSnap.StationID, slotSnap.RJID, slotSnap.ID)
		if derr != nil {
			return derr
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrSlotUnavailable
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ReserveSlotResult{BookingID: createdID}, nil
}
