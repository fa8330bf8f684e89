package queries

import (
	"context"

	"hotel-management-api/internal/infra"
	"hotel-management-api/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

type RoomRateReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomRateView, error)
	List(ctx context.Context, filter RoomRateFilter) ([]*RoomRateView, error)
	ListByPlan(ctx context.Context, ratePlanID uuid.UUID) ([]*RoomRateView, error)
}

type RoomRateQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomRateView, error)
	List(ctx context.Context, filter RoomRateFilter) ([]*RoomRateView, error)
	ListByPlan(ctx context.Context, ratePlanID uuid.UUID) ([]*RoomRateView, error)
}

type roomRateQueriesImpl struct {
	readStore RoomRateReadStore
}

func NewRoomRateQueries(readStore RoomRateReadStore) RoomRateQueries {
	return &roomRateQueriesImpl{readStore: readStore}
}

func (q *roomRateQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomRateView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomRateNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *roomRateQueriesImpl) List(ctx context.Context, filter RoomRateFilter) ([]*RoomRateView, error) {
	if err := validateHotelFilter(filter.Hotel); err != nil {
		return nil, err
	}
	if filter.Occupancy != nil && *filter.Occupancy < 1 {
		return nil, ErrInvalidFilter
	}
	return q.readStore.List(ctx, filter)
}

func (q *roomRateQueriesImpl) ListByPlan(ctx context.Context, ratePlanID uuid.UUID) ([]*RoomRateView, error) {
	return q.readStore.ListByPlan(ctx, ratePlanID)
}
