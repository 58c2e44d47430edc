package queries

import (
	"context"

	"airtime/internal/infra"
	"airtime/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSlotNotFound = errs.New("slot not found")

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	// List returns all slots; availableOnly narrows to unreserved ones.
	List(ctx context.Context, availableOnly bool) ([]*SlotView, error)
	ListByStation(ctx context.Context, stationID uuid.UUID) ([]*SlotView, error)
}

type SlotViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindAll(ctx context.Context, availableOnly bool) ([]*SlotView, error)
	FindByStationID(ctx context.Context, stationID uuid.UUID) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	repo SlotViewRepo
}

func NewSlotQueries(repo SlotViewRepo) SlotQueries {
	return &slotQueriesImpl{repo: repo}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *slotQueriesImpl) List(ctx context.Context, availableOnly bool) ([]*SlotView, error) {
	return q.repo.FindAll(ctx, availableOnly)
}

func (q *slotQueriesImpl) ListByStation(ctx context.Context, stationID uuid.UUID) ([]*SlotView, error) {
	return q.repo.FindByStationID(ctx, stationID)
}
