package queries

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAdContentNotFound = errs.New("ad content not found")

type AdContentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AdContentView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*AdContentView, error)
}

type AdContentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdContentView, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*AdContentView, error)
}

type adContentQueriesImpl struct {
	repo AdContentViewRepo
}

func NewAdContentQueries(repo AdContentViewRepo) AdContentQueries {
	return &adContentQueriesImpl{repo: repo}
}

func (q *adContentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AdContentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAdContentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *adContentQueriesImpl) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*AdContentView, error) {
	return q.repo.FindByBookingID(ctx, bookingID)
}
