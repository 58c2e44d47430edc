package commands

import (
	"context"
	"time"

	"airtime/internal/domain/slot"
	"airtime/internal/domain/station"
	"airtime/internal/infra"
	"airtime/internal/pkg/clock"
	"airtime/internal/pkg/errs"
	"airtime/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateSlot      = errs.New("slot already exists for this rj and time")
	ErrRJStationMismatch  = errs.New("rj does not belong to station")
	ErrStationNotApproved = errs.New("station is not approved")
	ErrSlotInUse          = errs.New("slot still referenced by other records")
	ErrSlotTimeInPast     = errs.New("slot time is in the past")
)

type CreateSlotRequest struct {
	StationID  uuid.UUID
	RJID       uuid.UUID
	SlotTime   time.Time
	PriceCents int64
}

type UpdateSlotRequest struct {
	SlotTime   time.Time
	PriceCents int64
}

type CreateSlotResult struct {
	SlotID uuid.UUID
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, req CreateSlotRequest) (*CreateSlotResult, error)
	UpdateSlot(ctx context.Context, id uuid.UUID, req UpdateSlotRequest) error
	DeleteSlot(ctx context.Context, id uuid.UUID) error
}

type slotUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSlotUseCase(uow shared.UnitOfWork, clock clock.Clock) SlotCommands {
	return &slotUseCaseImpl{uow: uow, clock: clock}
}

// CreateSlot publishes inventory for an approved station. The RJ must belong
// to the station the slot is listed under.
func (uc *slotUseCaseImpl) CreateSlot(ctx context.Context, req CreateSlotRequest) (*CreateSlotResult, error) {
	if req.SlotTime.Before(uc.clock.Now()) {
		return nil, ErrSlotTimeInPast
	}

	entity, err := slot.NewSlot(req.StationID, req.RJID, req.SlotTime, req.PriceCents)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stationSnap, derr := tx.Reads().StationByID(ctx, req.StationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrStationNotFound
			}
			return derr
		}
		if stationSnap.ApprovalStatus != station.ApprovalApproved.String() {
			return ErrStationNotApproved
		}

		rjSnap, derr := tx.Reads().RJByID(ctx, req.RJID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRJNotFound
			}
			return derr
		}
		if rjSnap.StationID != req.StationID {
			return ErrRJStationMismatch
		}

		id, derr := tx.Slots().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateSlot
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateSlotResult{SlotID: createdID}, nil
}

func (uc *slotUseCaseImpl) UpdateSlot(ctx context.Context, id uuid.UUID, req UpdateSlotRequest) error {
	if req.SlotTime.Before(uc.clock.Now()) {
		return ErrSlotTimeInPast
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slotSnap, derr := tx.Reads().SlotByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return derr
		}

		entity, derr := slot.NewSlot(slotSnap.StationID, slotSnap.RJID, req.SlotTime, req.PriceCents)
		if derr != nil {
			return derr
		}

		derr = tx.Slots().Update(ctx, tx.DB(), id, entity)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return ErrDuplicateSlot
		}
		if infra.IsKind(derr, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return derr
	})
}

func (uc *slotUseCaseImpl) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Slots().Delete(ctx, tx.DB(), id)
		if infra.IsKind(derr, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		if infra.IsKind(derr, infra.KindForeignKeyViolated) {
			return ErrSlotInUse
		}
		return derr
	})
}
