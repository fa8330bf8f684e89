package readstore

import (
	"context"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/domain/roomrate"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"
	"hotel-management-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRateReadQueries interface {
	GetRoomRateByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomRateByIDRow, error)
	ListRoomRates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomRatesParams) ([]sqlc.ListRoomRatesRow, error)
	ListRoomRatesByPlan(ctx context.Context, db sqlc.DBTX, ratePlanID uuid.UUID) ([]sqlc.ListRoomRatesByPlanRow, error)
}

type RoomRateReadStore struct {
	queries RoomRateReadQueries
	db      sqlc.DBTX
}

func NewRoomRateReadStore(queries RoomRateReadQueries, db sqlc.DBTX) *RoomRateReadStore {
	return &RoomRateReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomRateView, error) {
	row, err := r.queries.GetRoomRateByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room rate by id", err)
	}
	return toRoomRateView(sqlc.ListRoomRatesRow(row)), nil
}

func (r *RoomRateReadStore) List(ctx context.Context, filter queries.RoomRateFilter) ([]*queries.RoomRateView, error) {
	var occupancy pgtype.Int4
	if filter.Occupancy != nil {
		occupancy = pgtype.Int4{Int32: pgconv.IntToInt32(*filter.Occupancy), Valid: true}
	}

	rows, err := r.queries.ListRoomRates(ctx, r.db, sqlc.ListRoomRatesParams{
		Hotel:     pgconv.StringPtrToPgtype(filter.Hotel),
		Occupancy: occupancy,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room rates", err)
	}

	views := make([]*queries.RoomRateView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRoomRateView(row))
	}
	return views, nil
}

func (r *RoomRateReadStore) ListByPlan(ctx context.Context, ratePlanID uuid.UUID) ([]*queries.RoomRateView, error) {
	rows, err := r.queries.ListRoomRatesByPlan(ctx, r.db, ratePlanID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room rates by plan", err)
	}

	views := make([]*queries.RoomRateView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRoomRateView(sqlc.ListRoomRatesRow(row)))
	}
	return views, nil
}

// RateTable loads every row of the plan as a lookup for the pricing engine.
// Rows with a day class the engine does not know are skipped.
func (r *RoomRateReadStore) RateTable(ctx context.Context, ratePlanID uuid.UUID) (*pricing.RateTable, error) {
	rows, err := r.queries.ListRoomRatesByPlan(ctx, r.db, ratePlanID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load rate table", err)
	}

	table := pricing.NewRateTable()
	for _, row := range rows {
		class, err := pricing.NewDayClass(row.DayOfWeek)
		if err != nil {
			continue
		}
		table.Add(pricing.DailyRate{
			PlanID: row.RatePlanID,
			Hotel:  hotel.Hotel(row.Hotel),
			Class:  class,
			Price:  pgconv.DecimalFromNumeric(row.Price),
		})
	}
	return table, nil
}

func (r *RoomRateReadStore) FindEntity(ctx context.Context, id uuid.UUID) (*roomrate.RoomRate, error) {
	row, err := r.queries.GetRoomRateByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room rate by id", err)
	}
	return roomrate.ReconstructRoomRate(roomrate.Record{
		ID:         row.ID,
		RatePlanID: row.RatePlanID,
		Hotel:      hotel.Hotel(row.Hotel),
		Class:      pricing.DayClass(row.DayOfWeek),
		Price:      pgconv.DecimalFromNumeric(row.Price),
		Occupancy:  int(row.Occupancy),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func toRoomRateView(row sqlc.ListRoomRatesRow) *queries.RoomRateView {
	return &queries.RoomRateView{
		ID:           row.ID,
		RatePlanID:   row.RatePlanID,
		RatePlanName: row.RatePlanName,
		Hotel:        row.Hotel,
		DayOfWeek:    row.DayOfWeek,
		Price:        pgconv.DecimalFromNumeric(row.Price),
		Occupancy:    int(row.Occupancy),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
