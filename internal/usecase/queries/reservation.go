package queries

import (
	"context"
	"time"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/infra"
	"hotel-management-api/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindFirstPage(ctx context.Context, hotel *string, limit int32) ([]*ReservationListItem, error)
	FindKeyset(ctx context.Context, hotel *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListWithPrices(ctx context.Context, hotel *string) ([]*RoomListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, hotel *string, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	ListRooms(ctx context.Context, hotel *string) ([]*RoomListItem, error)
	DebugPricing(ctx context.Context, roomID uuid.UUID) (*PricingDebugView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	rooms        RoomReadStore
	rates        RoomRateReadStore
}

func NewReservationQueries(reservations ReservationReadStore, rooms RoomReadStore, rates RoomRateReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		rooms:        rooms,
		rates:        rates,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, hotel *string, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if err := validateHotelFilter(hotel); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.reservations.FindFirstPage(ctx, hotel, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.reservations.FindKeyset(ctx, hotel, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) ListRooms(ctx context.Context, hotel *string) ([]*RoomListItem, error) {
	if err := validateHotelFilter(hotel); err != nil {
		return nil, err
	}
	return q.rooms.ListWithPrices(ctx, hotel)
}

func (q *reservationQueriesImpl) DebugPricing(ctx context.Context, roomID uuid.UUID) (*PricingDebugView, error) {
	room, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, err
	}

	view := &PricingDebugView{Room: *room, Rates: []*RoomRateView{}}
	if room.RatePlanID == nil {
		return view, nil
	}

	rates, err := q.rates.ListByPlan(ctx, *room.RatePlanID)
	if err != nil {
		return nil, err
	}
	view.Rates = rates

	table := pricing.NewRateTable()
	for _, r := range rates {
		table.Add(pricing.DailyRate{
			PlanID: r.RatePlanID,
			Hotel:  hotel.Hotel(r.Hotel),
			Class:  pricing.DayClass(r.DayOfWeek),
			Price:  r.Price,
		})
	}
	view.LegacyBaseRate = pricing.FlatRatePricer{}.BaseRate(*room.RatePlanID, hotel.Hotel(room.Hotel), table)
	return view, nil
}

func validateHotelFilter(h *string) error {
	if h == nil {
		return nil
	}
	if _, err := hotel.NewHotel(*h); err != nil {
		return errs.Mark(err, ErrInvalidFilter)
	}
	return nil
}
