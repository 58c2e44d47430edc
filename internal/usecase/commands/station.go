package commands

import (
	"context"

	"airtime/internal/domain/station"
	"airtime/internal/infra"
	"airtime/internal/pkg/errs"
	"airtime/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStationNotFound   = errs.New("station not found")
	ErrNoPendingApproval = errs.New("no pending approval request for station")
	ErrStationInUse      = errs.New("station still referenced by other records")
)

type CreateStationRequest struct {
	StationName  string
	Location     string
	Description  string
	ContactEmail string
	ContactPhone string
}

type CreateStationResult struct {
	StationID uuid.UUID
}

type StationCommands interface {
	CreateStation(ctx context.Context, req CreateStationRequest) (*CreateStationResult, error)
	UpdateStation(ctx context.Context, id uuid.UUID, req CreateStationRequest) error
	DeleteStation(ctx context.Context, id uuid.UUID) error
	ApproveStation(ctx context.Context, stationID, adminID uuid.UUID) error
	RejectStation(ctx context.Context, stationID, adminID uuid.UUID) error
}

type stationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewStationUseCase(uow shared.UnitOfWork) StationCommands {
	return &stationUseCaseImpl{uow: uow}
}

// CreateStation registers the station and opens its approval request in the
// same transaction, so a station never exists without a pending request.
func (uc *stationUseCaseImpl) CreateStation(ctx context.Context, req CreateStationRequest) (*CreateStationResult, error) {
	entity, err := station.NewStation(req.StationName, req.Location, req.Description, req.ContactEmail, req.ContactPhone)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Stations().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}

		if _, derr = tx.Approvals().Create(ctx, tx.DB(), id); derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateStationResult{StationID: createdID}, nil
}

func (uc *stationUseCaseImpl) UpdateStation(ctx context.Context, id uuid.UUID, req CreateStationRequest) error {
	entity, err := station.NewStation(req.StationName, req.Location, req.Description, req.ContactEmail, req.ContactPhone)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Stations().Update(ctx, tx.DB(), id, entity)
		if infra.IsKind(derr, infra.KindNotFound) {
			return ErrStationNotFound
		}
		return derr
	})
}

func (uc *stationUseCaseImpl) DeleteStation(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Stations().Delete(ctx, tx.DB(), id)
		if infra.IsKind(derr, infra.KindNotFound) {
			return ErrStationNotFound
		}
		if infra.IsKind(derr, infra.KindForeignKeyViolated) {
			return ErrStationInUse
		}
		return derr
	})
}

func (uc *stationUseCaseImpl) ApproveStation(ctx context.Context, stationID, adminID uuid.UUID) error {
	return uc.decideApproval(ctx, stationID, adminID, station.ApprovalApproved)
}

func (uc *stationUseCaseImpl) RejectStation(ctx context.Context, stationID, adminID uuid.UUID) error {
	return uc.decideApproval(ctx, stationID, adminID, station.ApprovalRejected)
}

func (uc *stationUseCaseImpl) decideApproval(ctx context.Context, stationID, adminID uuid.UUID, status station.ApprovalStatus) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, derr := tx.Approvals().UpdateStatusByStation(ctx, tx.DB(), stationID, adminID, status)
		if derr != nil {
			return derr
		}
		if affected == 0 {
			if _, derr = tx.Reads().StationByID(ctx, stationID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrStationNotFound
				}
				return derr
			}
			return ErrNoPendingApproval
		}
		return nil
	})
}
