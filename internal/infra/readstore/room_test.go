//go:build unit

package readstore

import (
	"context"
	"testing"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomReadQueries struct {
	mock.Mock
}

func (m *MockRoomReadQueries) GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetRoomByIDRow), args.Error(1)
}

func (m *MockRoomReadQueries) ListRoomsWithPrices(ctx context.Context, db sqlc.DBTX, h pgtype.Text) ([]sqlc.ListRoomsWithPricesRow, error) {
	args := m.Called(ctx, db, h)
	return args.Get(0).([]sqlc.ListRoomsWithPricesRow), args.Error(1)
}

func (m *MockRoomReadQueries) GetRatePlanByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RatePlans, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.RatePlans), args.Error(1)
}

func TestRoomReadStore_FindSnapshot(t *testing.T) {
	roomID := uuid.New()
	planID := uuid.New()

	tests := []struct {
		name     string
		row      sqlc.GetRoomByIDRow
		err      error
		wantPlan uuid.UUID
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "room with plan",
			row: sqlc.GetRoomByIDRow{
				ID: roomID, RoomNumber: "101", Hotel: "entoto", Status: "available",
				RatePlanID:   pgtype.UUID{Bytes: planID, Valid: true},
				RatePlanName: pgtype.Text{String: "Double", Valid: true},
			},
			wantPlan: planID,
		},
		{
			name:     "room without plan",
			row:      sqlc.GetRoomByIDRow{ID: roomID, RoomNumber: "102", Hotel: "entoto", Status: "available"},
			wantPlan: uuid.Nil,
		},
		{
			name:     "missing room",
			err:      pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRoomReadQueries)
			mockQueries.On("GetRoomByID", mock.Anything, mock.Anything, roomID).Return(tt.row, tt.err)

			snap, err := NewRoomReadStore(mockQueries, nil).FindSnapshot(context.Background(), roomID)

			if tt.wantKind != "" {
				assert.Nil(t, snap)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, hotel.Entoto, snap.Hotel)
			assert.Equal(t, tt.wantPlan, snap.RatePlanID)
			assert.Equal(t, tt.row.RoomNumber, snap.RoomNumber)
		})
	}
}

func TestRoomReadStore_ListWithPrices(t *testing.T) {
	hotelName := "bishoftu"
	mockQueries := new(MockRoomReadQueries)
	mockQueries.On("ListRoomsWithPrices", mock.Anything, mock.Anything, pgtype.Text{String: "bishoftu", Valid: true}).
		Return([]sqlc.ListRoomsWithPricesRow{
			{
				ID: uuid.New(), RoomNumber: "201", Hotel: "bishoftu", Status: "available",
				RatePlanID:   pgtype.UUID{Bytes: uuid.New(), Valid: true},
				RatePlanName: pgtype.Text{String: "Single", Valid: true},
				WeekdayPrice: pgconv.DecimalToNumeric(decimal.RequireFromString("80.00")),
			},
		}, nil)

	items, err := NewRoomReadStore(mockQueries, nil).ListWithPrices(context.Background(), &hotelName)

	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].WeekdayPrice)
	assert.Equal(t, "80", items[0].WeekdayPrice.String())
	assert.Nil(t, items[0].WeekendPrice)
	assert.Equal(t, "Single", *items[0].RatePlanName)
	mockQueries.AssertExpectations(t)
}

func TestRoomReadStore_FindRatePlan(t *testing.T) {
	planID := uuid.New()
	mockQueries := new(MockRoomReadQueries)
	mockQueries.On("GetRatePlanByID", mock.Anything, mock.Anything, planID).
		Return(sqlc.RatePlans{ID: planID, Name: "Family", MaxOccupancy: 4}, nil)

	plan, err := NewRoomReadStore(mockQueries, nil).FindRatePlan(context.Background(), planID)

	require.NoError(t, err)
	assert.Equal(t, "Family", plan.Name)
	assert.Equal(t, 4, plan.MaxOccupancy)
}
