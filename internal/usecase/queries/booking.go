package queries

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/errs"
	"airtime/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// FindAll runs on the caller-supplied connection so the listing can be
	// taken inside a read-only transaction.
	FindAll(ctx context.Context, dbtx db.DBTX) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
	uow  shared.UnitOfWork
}

func NewBookingQueries(repo BookingViewRepo, uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{repo: repo, uow: uow}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

// List joins each booking with its slot, station, and RJ rows; the read-only
// transaction keeps the listing a consistent snapshot across those tables.
func (q *bookingQueriesImpl) List(ctx context.Context) ([]*BookingListItem, error) {
	var items []*BookingListItem
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var lerr error
		items, lerr = q.repo.FindAll(ctx, dbtx)
		return lerr
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
