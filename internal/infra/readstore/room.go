package readstore

import (
	"context"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"
	"hotel-management-api/internal/usecase/queries"
	"hotel-management-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomByIDRow, error)
	ListRoomsWithPrices(ctx context.Context, db sqlc.DBTX, hotel pgtype.Text) ([]sqlc.ListRoomsWithPricesRow, error)
	GetRatePlanByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RatePlans, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}
	return &queries.RoomView{
		ID:           row.ID,
		RoomNumber:   row.RoomNumber,
		Hotel:        row.Hotel,
		RatePlanID:   pgconv.UUIDPtrFromPgtype(row.RatePlanID),
		RatePlanName: pgconv.StringPtrFromPgtype(row.RatePlanName),
		Status:       row.Status,
	}, nil
}

func (r *RoomReadStore) ListWithPrices(ctx context.Context, hotel *string) ([]*queries.RoomListItem, error) {
	rows, err := r.queries.ListRoomsWithPrices(ctx, r.db, pgconv.StringPtrToPgtype(hotel))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	items := make([]*queries.RoomListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.RoomListItem{
			RoomView: queries.RoomView{
				ID:           row.ID,
				RoomNumber:   row.RoomNumber,
				Hotel:        row.Hotel,
				RatePlanID:   pgconv.UUIDPtrFromPgtype(row.RatePlanID),
				RatePlanName: pgconv.StringPtrFromPgtype(row.RatePlanName),
				Status:       row.Status,
			},
			WeekdayPrice: optionalPrice(row.WeekdayPrice),
			WeekendPrice: optionalPrice(row.WeekendPrice),
		})
	}
	return items, nil
}

// FindSnapshot is the command-side view of a room: what pricing needs.
func (r *RoomReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}
	return &shared.RoomSnapshot{
		ID:         row.ID,
		RoomNumber: row.RoomNumber,
		Hotel:      hotel.Hotel(row.Hotel),
		RatePlanID: pgconv.UUIDFromPgtype(row.RatePlanID),
	}, nil
}

func (r *RoomReadStore) FindRatePlan(ctx context.Context, id uuid.UUID) (*shared.RatePlanSnapshot, error) {
	row, err := r.queries.GetRatePlanByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rate plan by id", err)
	}
	return &shared.RatePlanSnapshot{
		ID:           row.ID,
		Name:         row.Name,
		MaxOccupancy: int(row.MaxOccupancy),
	}, nil
}

func optionalPrice(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := pgconv.DecimalFromNumeric(n)
	return &d
}
