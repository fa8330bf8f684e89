package repository

import (
	"context"

	"hotel-management-api/internal/domain/roomrate"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomRateWriteQueries interface {
	CreateRoomRate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomRateParams) (sqlc.RoomRates, error)
	UpdateRoomRate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomRateParams) (int64, error)
	DeleteRoomRate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RoomRateRepository struct {
	queries RoomRateWriteQueries
}

func NewRoomRateRepository(queries RoomRateWriteQueries) *RoomRateRepository {
	return &RoomRateRepository{
		queries: queries,
	}
}

// Create returns the id assigned by the database.
func (r *RoomRateRepository) Create(ctx context.Context, tx sqlc.DBTX, rate *roomrate.RoomRate) (uuid.UUID, error) {
	row, err := r.queries.CreateRoomRate(ctx, tx, sqlc.CreateRoomRateParams{
		RatePlanID: rate.RatePlanID(),
		Hotel:      rate.Hotel().String(),
		DayOfWeek:  rate.DayClass().String(),
		Price:      pgconv.DecimalToNumeric(rate.Price()),
		Occupancy:  pgconv.IntToInt32(rate.Occupancy()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room rate", err)
	}
	return row.ID, nil
}

func (r *RoomRateRepository) Update(ctx context.Context, tx sqlc.DBTX, rate *roomrate.RoomRate) error {
	rows, err := r.queries.UpdateRoomRate(ctx, tx, sqlc.UpdateRoomRateParams{
		ID:         rate.ID(),
		RatePlanID: rate.RatePlanID(),
		Hotel:      rate.Hotel().String(),
		DayOfWeek:  rate.DayClass().String(),
		Price:      pgconv.DecimalToNumeric(rate.Price()),
		Occupancy:  pgconv.IntToInt32(rate.Occupancy()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update room rate", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("room rate not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRateRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteRoomRate(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room rate", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("room rate not found", nil, infra.KindNotFound)
	}
	return nil
}
