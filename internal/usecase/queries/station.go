package queries

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrStationNotFound = errs.New("station not found")

type StationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StationView, error)
	List(ctx context.Context) ([]*StationView, error)
	ListPendingApprovals(ctx context.Context) ([]*ApprovalView, error)
	ListRejectedApprovals(ctx context.Context) ([]*ApprovalView, error)
}

type StationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StationView, error)
	FindAll(ctx context.Context) ([]*StationView, error)
	FindApprovalsByStatus(ctx context.Context, status string) ([]*ApprovalView, error)
}

type stationQueriesImpl struct {
	repo StationViewRepo
}

func NewStationQueries(repo StationViewRepo) StationQueries {
	return &stationQueriesImpl{repo: repo}
}

func (q *stationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *stationQueriesImpl) List(ctx context.Context) ([]*StationView, error) {
	return q.repo.FindAll(ctx)
}

func (q *stationQueriesImpl) ListPendingApprovals(ctx context.Context) ([]*ApprovalView, error) {
	return q.repo.FindApprovalsByStatus(ctx, "PENDING")
}

func (q *stationQueriesImpl) ListRejectedApprovals(ctx context.Context) ([]*ApprovalView, error) {
	return q.repo.FindApprovalsByStatus(ctx, "REJECTED")
}
