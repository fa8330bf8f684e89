//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		date string
		want pricing.DayClass
	}{
		{date: "2024-01-01", want: pricing.Weekday}, // Mon
		{date: "2024-01-05", want: pricing.Weekday}, // Fri
		{date: "2024-01-06", want: pricing.Weekend}, // Sat
		{date: "2024-01-07", want: pricing.Weekend}, // Sun
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			day, err := time.Parse("2006-01-02", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pricing.Classify(day))
		})
	}
}

func TestNewDayClass(t *testing.T) {
	c, err := pricing.NewDayClass("weekends")
	require.NoError(t, err)
	assert.Equal(t, pricing.Weekend, c)

	_, err = pricing.NewDayClass("weekday")
	assert.ErrorIs(t, err, pricing.ErrInvalidDayClass)
}

func TestStay_Nights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "two nights",
			checkIn:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "same day",
			checkIn:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
		{
			name:     "inverted",
			checkIn:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "across a month boundary",
			checkIn:  time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := pricing.NewStay(tt.checkIn, tt.checkOut)
			assert.Equal(t, tt.want, stay.Nights())
		})
	}
}

func TestStay_NightsBeyondDurationRange(t *testing.T) {
	stay := mustStay(t, "0001-01-01", "9999-12-31")

	assert.Equal(t, 3652058, stay.Nights())

	weekdays, weekends := stay.ClassCounts()
	assert.Equal(t, 2608614, weekdays)
	assert.Equal(t, 1043444, weekends)
}

func TestStay_ClassCounts(t *testing.T) {
	tests := []struct {
		name         string
		checkIn      string
		checkOut     string
		wantWeekdays int
		wantWeekends int
	}{
		{name: "weekdays only", checkIn: "2024-01-01", checkOut: "2024-01-03", wantWeekdays: 2},
		{name: "friday to monday", checkIn: "2024-01-05", checkOut: "2024-01-08", wantWeekdays: 1, wantWeekends: 2},
		{name: "starts on sunday", checkIn: "2024-01-07", checkOut: "2024-01-09", wantWeekdays: 1, wantWeekends: 1},
		{name: "two full weeks", checkIn: "2024-01-01", checkOut: "2024-01-15", wantWeekdays: 10, wantWeekends: 4},
		{name: "sixteen nights from saturday", checkIn: "2024-01-06", checkOut: "2024-01-22", wantWeekdays: 10, wantWeekends: 6},
		{name: "inverted", checkIn: "2024-01-08", checkOut: "2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weekdays, weekends := mustStay(t, tt.checkIn, tt.checkOut).ClassCounts()
			assert.Equal(t, tt.wantWeekdays, weekdays)
			assert.Equal(t, tt.wantWeekends, weekends)
		})
	}
}

func TestParseStay(t *testing.T) {
	_, err := pricing.ParseStay("2024-13-01", "2024-01-02")
	assert.Error(t, err)

	_, err = pricing.ParseStay("2024-01-01", "tomorrow")
	assert.Error(t, err)
}

func TestDayByDayPricer_RoomPrice(t *testing.T) {
	planID := uuid.New()
	h := hotel.AwashFall
	weekdayOnly := pricing.NewRateTable(
		pricing.DailyRate{PlanID: planID, Hotel: h, Class: pricing.Weekday, Price: dec("80.50")},
	)

	t.Run("single class plan bills missing days at zero", func(t *testing.T) {
		// Thu, Fri, Sat, Sun
		stay := mustStay(t, "2024-01-04", "2024-01-08")
		got := pricing.DayByDayPricer{}.RoomPrice(planID, h, stay, weekdayOnly)
		assert.True(t, dec("161").Equal(got), "got %s", got)
	})

	t.Run("nil lookup", func(t *testing.T) {
		stay := mustStay(t, "2024-01-04", "2024-01-08")
		got := pricing.DayByDayPricer{}.RoomPrice(planID, h, stay, nil)
		assert.True(t, got.IsZero())
	})

	t.Run("legacy base rate falls back to weekend", func(t *testing.T) {
		weekendOnly := pricing.NewRateTable(
			pricing.DailyRate{PlanID: planID, Hotel: h, Class: pricing.Weekend, Price: dec("120")},
		)
		got := pricing.FlatRatePricer{}.BaseRate(planID, h, weekendOnly)
		assert.True(t, dec("120").Equal(got))
	})
}
