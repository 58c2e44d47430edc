package queries

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRJNotFound = errs.New("rj not found")

type RJQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RJView, error)
	List(ctx context.Context) ([]*RJView, error)
	ListByStation(ctx context.Context, stationID uuid.UUID) ([]*RJView, error)
}

type RJViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RJView, error)
	FindAll(ctx context.Context) ([]*RJView, error)
	FindByStationID(ctx context.Context, stationID uuid.UUID) ([]*RJView, error)
}

type rjQueriesImpl struct {
	repo RJViewRepo
}

func NewRJQueries(repo RJViewRepo) RJQueries {
	return &rjQueriesImpl{repo: repo}
}

func (q *rjQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RJView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRJNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rjQueriesImpl) List(ctx context.Context) ([]*RJView, error) {
	return q.repo.FindAll(ctx)
}

func (q *rjQueriesImpl) ListByStation(ctx context.Context, stationID uuid.UUID) ([]*RJView, error) {
	return q.repo.FindByStationID(ctx, stationID)
}
