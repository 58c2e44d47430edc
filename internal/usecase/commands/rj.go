package commands

import (
	"context"

	"airtime/internal/domain/rj"
	"airtime/internal/infra"
	"airtime/internal/pkg/errs"
	"airtime/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRJNotFound = errs.New("rj not found")
	ErrRJInUse    = errs.New("rj still referenced by other records")
)

type CreateRJRequest struct {
	StationID  uuid.UUID
	RJName     string
	ShowName   string
	ShowTiming string
}

type CreateRJResult struct {
	RJID uuid.UUID
}

type RJCommands interface {
	CreateRJ(ctx context.Context, req CreateRJRequest) (*CreateRJResult, error)
	UpdateRJ(ctx context.Context, id uuid.UUID, req CreateRJRequest) error
	DeleteRJ(ctx context.Context, id uuid.UUID) error
}

type rjUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRJUseCase(uow shared.UnitOfWork) RJCommands {
	return &rjUseCaseImpl{uow: uow}
}

func (uc *rjUseCaseImpl) CreateRJ(ctx context.Context, req CreateRJRequest) (*CreateRJResult, error) {
	entity, err := rj.NewRJ(req.StationID, req.RJName, req.ShowName, req.ShowTiming)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.RJs().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrStationNotFound
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateRJResult{RJID: createdID}, nil
}

func (uc *rjUseCaseImpl) UpdateRJ(ctx context.Context, id uuid.UUID, req CreateRJRequest) error {
	entity, err := rj.NewRJ(req.StationID, req.RJName, req.ShowName, req.ShowTiming)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.RJs().Update(ctx, tx.DB(), id, entity)
		if infra.IsKind(derr, infra.KindNotFound) {
			return ErrRJNotFound
		}
		return derr
	})
}

func (uc *rjUseCaseImpl) DeleteRJ(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.RJs().Delete(ctx, tx.DB(), id)
		if infra.IsKind(derr, infra.KindNotFound) {
			return ErrRJNotFound
		}
		if infra.IsKind(derr, infra.KindForeignKeyViolated) {
			return ErrRJInUse
		}
		return derr
	})
}
