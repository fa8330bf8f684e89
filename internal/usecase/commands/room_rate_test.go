//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-management-api/internal/domain/roomrate"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/clock"
	"hotel-management-api/internal/pkg/errs"
	"hotel-management-api/internal/usecase/commands"
	"hotel-management-api/internal/usecase/shared"
	"hotel-management-api/tests/common/builder"
	queriesmock "hotel-management-api/tests/mock/queries"
	sharedmock "hotel-management-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomRateFixture struct {
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	reads *sharedmock.MockCommandReads
	repo  *sharedmock.MockRoomRateRepository
	q     *queriesmock.MockRoomRateQueries
	uc    commands.RoomRateCommands
}

func newRoomRateFixture(t *testing.T) *roomRateFixture {
	ctrl := gomock.NewController(t)
	f := &roomRateFixture{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		reads: sharedmock.NewMockCommandReads(ctrl),
		repo:  sharedmock.NewMockRoomRateRepository(ctrl),
		q:     queriesmock.NewMockRoomRateQueries(ctrl),
	}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().RoomRates().Return(f.repo).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.uc = commands.NewRoomRateUseCase(f.uow, clock.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), f.q)
	return f
}

func toInput(b *builder.RoomRateBuilder) commands.RoomRateInput {
	return commands.RoomRateInput{RatePlanID: b.RatePlanID, Hotel: b.Hotel, DayOfWeek: b.DayOfWeek, Price: b.Price}
}

func TestCreateRoomRate(t *testing.T) {
	b := builder.NewRoomRateBuilder().With(func(b *builder.RoomRateBuilder) { b.Occupancy = 4 })
	plan := &shared.RatePlanSnapshot{ID: b.RatePlanID, Name: b.RatePlanName, MaxOccupancy: 4}

	t.Run("occupancy comes from the plan", func(t *testing.T) {
		f := newRoomRateFixture(t)
		newID := uuid.New()
		view := b.BuildView()

		runWithin(f.uow, f.tx)
		f.reads.EXPECT().RatePlanByID(gomock.Any(), b.RatePlanID).Return(plan, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, rate *roomrate.RoomRate) (uuid.UUID, error) {
				assert.Equal(t, 4, rate.Occupancy())
				assert.Equal(t, "weekdays", rate.DayClass().String())
				return newID, nil
			})
		f.q.EXPECT().GetByID(gomock.Any(), newID).Return(view, nil)

		got, err := f.uc.CreateRoomRate(context.Background(), toInput(b))

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("unknown plan", func(t *testing.T) {
		f := newRoomRateFixture(t)
		runWithin(f.uow, f.tx)
		f.reads.EXPECT().RatePlanByID(gomock.Any(), b.RatePlanID).
			Return(nil, infra.WrapRepoErr("rate plan not found", pgx.ErrNoRows))

		_, err := f.uc.CreateRoomRate(context.Background(), toInput(b))

		assert.True(t, errs.Is(err, errs.ErrRatePlanNotFound))
	})

	t.Run("negative price", func(t *testing.T) {
		f := newRoomRateFixture(t)
		in := toInput(b)
		in.Price = decimal.RequireFromString("-1")

		runWithin(f.uow, f.tx)
		f.reads.EXPECT().RatePlanByID(gomock.Any(), b.RatePlanID).Return(plan, nil)

		_, err := f.uc.CreateRoomRate(context.Background(), in)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newRoomRateFixture(t)
		runWithin(f.uow, f.tx)
		f.reads.EXPECT().RatePlanByID(gomock.Any(), b.RatePlanID).Return(plan, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create room rate", &pgconn.PgError{Code: "23505"}))

		_, err := f.uc.CreateRoomRate(context.Background(), toInput(b))

		assert.True(t, errs.Is(err, errs.ErrDuplicateRoomRate))
	})
}

func TestUpdateRoomRate(t *testing.T) {
	b := builder.NewRoomRateBuilder()
	existing, err := b.BuildDomain()
	require.NoError(t, err)

	t.Run("moves the row to another plan", func(t *testing.T) {
		f := newRoomRateFixture(t)
		other := &shared.RatePlanSnapshot{ID: uuid.New(), MaxOccupancy: 1}
		in := toInput(b)
		in.RatePlanID = other.ID
		in.DayOfWeek = "weekends"

		runWithin(f.uow, f.tx)
		f.reads.EXPECT().RoomRateByID(gomock.Any(), existing.ID()).Return(existing, nil)
		f.reads.EXPECT().RatePlanByID(gomock.Any(), other.ID).Return(other, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), existing).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, rate *roomrate.RoomRate) error {
				assert.Equal(t, other.ID, rate.RatePlanID())
				assert.Equal(t, 1, rate.Occupancy())
				assert.Equal(t, "weekends", rate.DayClass().String())
				return nil
			})
		f.q.EXPECT().GetByID(gomock.Any(), existing.ID()).Return(b.BuildView(), nil)

		_, err := f.uc.UpdateRoomRate(context.Background(), existing.ID(), in)
		require.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		f := newRoomRateFixture(t)
		id := uuid.New()
		runWithin(f.uow, f.tx)
		f.reads.EXPECT().RoomRateByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("room rate not found", pgx.ErrNoRows))

		_, err := f.uc.UpdateRoomRate(context.Background(), id, toInput(b))

		assert.True(t, errs.Is(err, errs.ErrRoomRateNotFound))
	})
}

func TestDeleteRoomRate(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "success"},
		{name: "missing row", repoErr: infra.WrapRepoErr("room rate not found", nil, infra.KindNotFound), want: errs.ErrRoomRateNotFound},
		{name: "database failure", repoErr: infra.WrapRepoErr("failed", assert.AnError), want: errs.ErrDatabaseOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoomRateFixture(t)
			id := uuid.New()
			runWithin(f.uow, f.tx)
			f.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(tt.repoErr)

			err := f.uc.DeleteRoomRate(context.Background(), id)

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errs.Is(err, tt.want))
		})
	}
}
