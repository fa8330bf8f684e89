//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"
	"hotel-management-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomRateReadQueries struct {
	mock.Mock
}

func (m *MockRoomRateReadQueries) GetRoomRateByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomRateByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetRoomRateByIDRow), args.Error(1)
}

func (m *MockRoomRateReadQueries) ListRoomRates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomRatesParams) ([]sqlc.ListRoomRatesRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListRoomRatesRow), args.Error(1)
}

func (m *MockRoomRateReadQueries) ListRoomRatesByPlan(ctx context.Context, db sqlc.DBTX, ratePlanID uuid.UUID) ([]sqlc.ListRoomRatesByPlanRow, error) {
	args := m.Called(ctx, db, ratePlanID)
	return args.Get(0).([]sqlc.ListRoomRatesByPlanRow), args.Error(1)
}

func planRow(planID uuid.UUID, h hotel.Hotel, day, price string) sqlc.ListRoomRatesByPlanRow {
	return sqlc.ListRoomRatesByPlanRow{
		ID:           uuid.New(),
		RatePlanID:   planID,
		Hotel:        string(h),
		DayOfWeek:    day,
		Price:        pgconv.DecimalToNumeric(decimal.RequireFromString(price)),
		Occupancy:    2,
		RatePlanName: "Double",
	}
}

func TestRoomRateReadStore_RateTable(t *testing.T) {
	planID := uuid.New()

	t.Run("plan rows become lookups keyed by hotel and day class", func(t *testing.T) {
		mockQueries := new(MockRoomRateReadQueries)
		mockQueries.On("ListRoomRatesByPlan", mock.Anything, mock.Anything, planID).Return([]sqlc.ListRoomRatesByPlanRow{
			planRow(planID, hotel.Entoto, "weekdays", "100.00"),
			planRow(planID, hotel.Entoto, "weekends", "150.00"),
			planRow(planID, hotel.Bishoftu, "weekdays", "90.00"),
			planRow(planID, hotel.Bishoftu, "holidays", "999.00"),
		}, nil)

		table, err := NewRoomRateReadStore(mockQueries, nil).RateTable(context.Background(), planID)

		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())

		price, ok := table.Rate(planID, hotel.Entoto, pricing.Weekend)
		assert.True(t, ok)
		assert.True(t, decimal.RequireFromString("150").Equal(price))

		_, ok = table.Rate(planID, hotel.Bishoftu, pricing.Weekend)
		assert.False(t, ok)
		mockQueries.AssertExpectations(t)
	})

	t.Run("unknown plan yields an empty table", func(t *testing.T) {
		mockQueries := new(MockRoomRateReadQueries)
		mockQueries.On("ListRoomRatesByPlan", mock.Anything, mock.Anything, planID).Return([]sqlc.ListRoomRatesByPlanRow{}, nil)

		table, err := NewRoomRateReadStore(mockQueries, nil).RateTable(context.Background(), planID)

		require.NoError(t, err)
		assert.Zero(t, table.Len())
	})

	t.Run("query failure is a db failure", func(t *testing.T) {
		mockQueries := new(MockRoomRateReadQueries)
		mockQueries.On("ListRoomRatesByPlan", mock.Anything, mock.Anything, planID).Return([]sqlc.ListRoomRatesByPlanRow(nil), assert.AnError)

		table, err := NewRoomRateReadStore(mockQueries, nil).RateTable(context.Background(), planID)

		assert.Nil(t, table)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRoomRateReadStore_List(t *testing.T) {
	hotelName := "entoto"
	occupancy := 2

	tests := []struct {
		name   string
		filter queries.RoomRateFilter
		params sqlc.ListRoomRatesParams
	}{
		{
			name:   "no filter",
			filter: queries.RoomRateFilter{},
			params: sqlc.ListRoomRatesParams{},
		},
		{
			name:   "hotel and occupancy",
			filter: queries.RoomRateFilter{Hotel: &hotelName, Occupancy: &occupancy},
			params: sqlc.ListRoomRatesParams{
				Hotel:     pgtype.Text{String: "entoto", Valid: true},
				Occupancy: pgtype.Int4{Int32: 2, Valid: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := sqlc.ListRoomRatesRow(planRow(uuid.New(), hotel.Entoto, "weekdays", "120.50"))
			mockQueries := new(MockRoomRateReadQueries)
			mockQueries.On("ListRoomRates", mock.Anything, mock.Anything, tt.params).Return([]sqlc.ListRoomRatesRow{row}, nil)

			views, err := NewRoomRateReadStore(mockQueries, nil).List(context.Background(), tt.filter)

			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, row.ID, views[0].ID)
			assert.Equal(t, "Double", views[0].RatePlanName)
			assert.Equal(t, "120.5", views[0].Price.String())
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestRoomRateReadStore_FindEntity(t *testing.T) {
	id := uuid.New()
	planID := uuid.New()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("reconstructs the aggregate", func(t *testing.T) {
		mockQueries := new(MockRoomRateReadQueries)
		mockQueries.On("GetRoomRateByID", mock.Anything, mock.Anything, id).Return(sqlc.GetRoomRateByIDRow{
			ID:         id,
			RatePlanID: planID,
			Hotel:      "laketana",
			DayOfWeek:  "weekends",
			Price:      pgconv.DecimalToNumeric(decimal.RequireFromString("210.00")),
			Occupancy:  3,
			CreatedAt:  pgconv.TimeToPgtype(created),
			UpdatedAt:  pgconv.TimeToPgtype(created),
		}, nil)

		rate, err := NewRoomRateReadStore(mockQueries, nil).FindEntity(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, rate.ID())
		assert.Equal(t, planID, rate.RatePlanID())
		assert.Equal(t, hotel.LakeTana, rate.Hotel())
		assert.Equal(t, pricing.Weekend, rate.DayClass())
		assert.Equal(t, 3, rate.Occupancy())
		assert.Equal(t, created, rate.CreatedAt())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mockQueries := new(MockRoomRateReadQueries)
		mockQueries.On("GetRoomRateByID", mock.Anything, mock.Anything, id).Return(sqlc.GetRoomRateByIDRow{}, pgx.ErrNoRows)

		rate, err := NewRoomRateReadStore(mockQueries, nil).FindEntity(context.Background(), id)

		assert.Nil(t, rate)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
