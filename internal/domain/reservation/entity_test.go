//go:build unit

package reservation_test

import (
	"regexp"
	"testing"
	"time"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/domain/reservation"
	"hotel-management-api/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^RES-[0-9A-Z]+-[0-9A-Z]{5}$`)

func newFactory(t *testing.T) *reservation.Factory {
	t.Helper()
	f, err := reservation.NewFactory("14:00:00", "11:00:00")
	require.NoError(t, err)
	return f
}

func validInput() reservation.DetailsInput {
	return reservation.DetailsInput{
		GuestID:      uuid.New(),
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		NumAdults:    2,
		NumChildren:  1,
		ChildrenAges: "10",
	}
}

func TestFactory_BuildDetails(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		d, err := newFactory(t).BuildDetails(validInput())
		require.NoError(t, err)

		assert.Equal(t, "14:00:00", d.CheckInTime.String())
		assert.Equal(t, "11:00:00", d.CheckOutTime.String())
		assert.Equal(t, reservation.StatusConfirmed, d.Status)
		assert.Equal(t, reservation.PaymentPending, d.PaymentStatus)
		assert.Equal(t, reservation.SourceWebsite, d.Source)
		assert.Nil(t, d.SpecialRequests)
	})

	tests := []struct {
		name    string
		mutate  func(*reservation.DetailsInput)
		wantErr error
	}{
		{name: "short time format", mutate: func(in *reservation.DetailsInput) { in.CheckInTime = "09:30" }},
		{name: "walk in source", mutate: func(in *reservation.DetailsInput) { in.Source = "walk_in" }},
		{name: "inverted stay is accepted", mutate: func(in *reservation.DetailsInput) { in.CheckOutDate = "2023-12-30" }},
		{name: "bad check-in date", mutate: func(in *reservation.DetailsInput) { in.CheckInDate = "01/01/2024" }, wantErr: reservation.ErrInvalidDate},
		{name: "bad check-out time", mutate: func(in *reservation.DetailsInput) { in.CheckOutTime = "late" }, wantErr: reservation.ErrInvalidTimeOfDay},
		{name: "no adults", mutate: func(in *reservation.DetailsInput) { in.NumAdults = 0 }, wantErr: reservation.ErrInvalidOccupancy},
		{name: "negative children", mutate: func(in *reservation.DetailsInput) { in.NumChildren = -1 }, wantErr: reservation.ErrInvalidOccupancy},
		{name: "unknown status", mutate: func(in *reservation.DetailsInput) { in.Status = "pending" }, wantErr: reservation.ErrInvalidStatus},
		{name: "unknown payment status", mutate: func(in *reservation.DetailsInput) { in.PaymentStatus = "partial" }, wantErr: reservation.ErrInvalidPaymentStatus},
		{name: "unknown source", mutate: func(in *reservation.DetailsInput) { in.Source = "fax" }, wantErr: reservation.ErrInvalidSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := newFactory(t).BuildDetails(in)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	services := &reservation.Services{
		Clock:      clock.NewMockClock(now),
		Calculator: pricing.NewCalculator(pricing.DayByDayPricer{}),
	}
	planID := uuid.New()
	room := reservation.RoomSpec{ID: uuid.New(), Hotel: hotel.Entoto, RatePlanID: planID}
	rates := pricing.NewRateTable(
		pricing.DailyRate{PlanID: planID, Hotel: hotel.Entoto, Class: pricing.Weekday, Price: decimal.NewFromInt(100)},
	)

	details, err := newFactory(t).BuildDetails(validInput())
	require.NoError(t, err)
	createdBy := uuid.New()

	res, breakdown, err := reservation.NewReservation(services, room, details, createdBy, rates)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID())
	assert.Regexp(t, codePattern, res.Code())
	assert.Equal(t, "320.00", breakdown.FormattedTotal())
	assert.True(t, res.TotalPrice().Equal(breakdown.TotalPrice))
	assert.Equal(t, createdBy, res.CreatedBy())
	assert.Equal(t, now, res.CreatedAt())
	assert.Nil(t, res.CancelledAt())

	t.Run("revise recomputes from scratch", func(t *testing.T) {
		in := validInput()
		in.GuestID = res.GuestID()
		in.ChildrenAges = ""
		in.NumChildren = 0
		in.CheckOutTime = "10:00"
		revised, err := newFactory(t).BuildDetails(in)
		require.NoError(t, err)

		b, err := res.Revise(services, room, revised, rates)
		require.NoError(t, err)

		assert.Equal(t, "200.00", b.FormattedTotal())
		assert.True(t, res.TotalPrice().Equal(decimal.NewFromInt(200)))
	})

	t.Run("cancel keeps the first cancellation time", func(t *testing.T) {
		first := now.Add(time.Hour)
		res.Cancel(first)
		res.Cancel(first.Add(time.Hour))

		assert.True(t, res.IsCancelled())
		require.NotNil(t, res.CancelledAt())
		assert.Equal(t, first, *res.CancelledAt())
	})

	t.Run("guest is required", func(t *testing.T) {
		d := details
		d.GuestID = uuid.Nil
		_, _, err := reservation.NewReservation(services, room, d, createdBy, rates)
		assert.ErrorIs(t, err, reservation.ErrMissingGuest)
	})
}

func TestNewCode(t *testing.T) {
	now := time.UnixMilli(1704067200000)
	a := reservation.NewCode(now)
	b := reservation.NewCode(now)

	assert.Regexp(t, codePattern, a)
	assert.Contains(t, a, "RES-LQU5M2O0-")
	assert.NotEqual(t, a, b)
}

func TestTimeOfDay(t *testing.T) {
	tod, err := reservation.NewTimeOfDay("7:05")
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", tod.String())
	assert.Equal(t, 7*time.Hour+5*time.Minute, tod.Duration())
	assert.Equal(t, tod, reservation.TimeOfDayFromDuration(tod.Duration()))
}
