package queries

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/infra/db"
	"airtime/internal/pkg/errs"
	"airtime/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error)
}

type PaymentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	FindByUserID(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo PaymentViewRepo
	uow  shared.UnitOfWork
}

func NewPaymentQueries(repo PaymentViewRepo, uow shared.UnitOfWork) PaymentQueries {
	return &paymentQueriesImpl{repo: repo, uow: uow}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListByUser is a single statement, so the implicit-transaction path is enough.
func (q *paymentQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error) {
	var views []*PaymentView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var lerr error
		views, lerr = q.repo.FindByUserID(ctx, dbtx, userID)
		return lerr
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
