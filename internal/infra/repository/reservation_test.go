//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/domain/reservation"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) CancelReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func newTestReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	checkIn, err := reservation.NewTimeOfDay("09:30")
	require.NoError(t, err)
	checkOut, err := reservation.NewTimeOfDay("12:00:00")
	require.NoError(t, err)
	occ, err := reservation.NewOccupancy(2, 1, "10")
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	return reservation.ReconstructReservation(reservation.Record{
		ID:     uuid.New(),
		Code:   "RES-ABC123-XY7QZ",
		RoomID: uuid.New(),
		Hotel:  hotel.Entoto,
		Details: reservation.Details{
			GuestID:       uuid.New(),
			CheckInDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate:  time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			CheckInTime:   checkIn,
			CheckOutTime:  checkOut,
			Occupancy:     occ,
			Status:        reservation.StatusConfirmed,
			PaymentStatus: reservation.PaymentPending,
			Source:        reservation.SourceWebsite,
		},
		TotalPrice: decimal.RequireFromString("383.3333"),
		CreatedBy:  uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func TestReservationRepository_Create(t *testing.T) {
	res := newTestReservation(t)

	t.Run("maps the aggregate to row params", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		db := new(MockDBTX)
		var got sqlc.CreateReservationParams
		q.On("CreateReservation", mock.Anything, db, mock.AnythingOfType("sqlc.CreateReservationParams")).
			Run(func(args mock.Arguments) { got = args.Get(2).(sqlc.CreateReservationParams) }).
			Return(nil)

		err := NewReservationRepository(q).Create(context.Background(), db, res)

		require.NoError(t, err)
		assert.Equal(t, res.ID(), got.ID)
		assert.Equal(t, "entoto", got.Hotel)
		assert.Equal(t, (9*time.Hour + 30*time.Minute).Microseconds(), got.CheckInTime.Microseconds)
		assert.Equal(t, int32(2), got.NumAdults)
		assert.Equal(t, "10", got.ChildrenAges)
		assert.False(t, got.SpecialRequests.Valid)
		assert.False(t, got.CancelledAt.Valid)
		assert.Equal(t, "383.33", pgconv.DecimalFromNumeric(got.TotalPrice).String())
		q.AssertExpectations(t)
	})

	t.Run("classifies constraint violations", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		db := new(MockDBTX)
		q.On("CreateReservation", mock.Anything, db, mock.Anything).Return(&pgconn.PgError{Code: "23503"})

		err := NewReservationRepository(q).Create(context.Background(), db, res)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestReservationRepository_Update(t *testing.T) {
	res := newTestReservation(t)

	tests := []struct {
		name     string
		rows     int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "no matching row", rows: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockReservationWriteQueries)
			db := new(MockDBTX)
			q.On("UpdateReservation", mock.Anything, db, mock.MatchedBy(func(p sqlc.UpdateReservationParams) bool {
				return p.ID == res.ID() && p.Status == "confirmed"
			})).Return(tt.rows, tt.mockErr)

			err := NewReservationRepository(q).Update(context.Background(), db, res)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_Cancel(t *testing.T) {
	res := newTestReservation(t)
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	res.Cancel(now)

	t.Run("writes the cancellation time", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		db := new(MockDBTX)
		q.On("CancelReservation", mock.Anything, db, sqlc.CancelReservationParams{
			ID:          res.ID(),
			CancelledAt: pgconv.TimeToPgtype(now),
		}).Return(int64(1), nil)

		assert.NoError(t, NewReservationRepository(q).Cancel(context.Background(), db, res))
		q.AssertExpectations(t)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		db := new(MockDBTX)
		q.On("CancelReservation", mock.Anything, db, mock.Anything).Return(int64(0), nil)

		err := NewReservationRepository(q).Cancel(context.Background(), db, res)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
