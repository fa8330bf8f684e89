//go:build unit

package pricing_test

import (
	"strconv"
	"testing"

	"hotel-management-api/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseChildAges(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{name: "empty", input: "", want: nil},
		{name: "blank", input: "   ", want: nil},
		{name: "single", input: "7", want: []int{7}},
		{name: "spaces around tokens", input: " 3 , 12,17 ", want: []int{3, 12, 17}},
		{name: "non numeric tokens dropped", input: "4,abc,,9", want: []int{4, 9}},
		{name: "leading integer kept", input: "5yrs,10.8", want: []int{5, 10}},
		{name: "signed values kept", input: "-1,+6", want: []int{-1, 6}},
		{name: "only garbage", input: "x,y", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ParseChildAges(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChildRates(t *testing.T) {
	tests := []struct {
		age           int
		wantBed       string
		wantBreakfast string
	}{
		{age: -1, wantBed: "0", wantBreakfast: "0"},
		{age: 0, wantBed: "0", wantBreakfast: "0"},
		{age: 2, wantBed: "0", wantBreakfast: "0"},
		{age: 3, wantBed: "20", wantBreakfast: "0"},
		{age: 5, wantBed: "20", wantBreakfast: "0"},
		{age: 6, wantBed: "20", wantBreakfast: "15"},
		{age: 11, wantBed: "20", wantBreakfast: "15"},
		{age: 12, wantBed: "40", wantBreakfast: "15"},
		{age: 13, wantBed: "40", wantBreakfast: "18"},
		{age: 17, wantBed: "40", wantBreakfast: "18"},
		{age: 18, wantBed: "0", wantBreakfast: "18"},
	}

	for _, tt := range tests {
		t.Run("age "+strconv.Itoa(tt.age), func(t *testing.T) {
			assert.True(t, dec(tt.wantBed).Equal(pricing.BedRate(tt.age)), "bed rate for age %d", tt.age)
			assert.True(t, dec(tt.wantBreakfast).Equal(pricing.BreakfastRate(tt.age)), "breakfast rate for age %d", tt.age)
		})
	}
}

func TestChildrenSurcharge(t *testing.T) {
	tests := []struct {
		name          string
		ages          []int
		nights        int
		wantBed       string
		wantBreakfast string
	}{
		{name: "no children", ages: nil, nights: 3, wantBed: "0", wantBreakfast: "0"},
		{name: "zero nights", ages: []int{5, 12}, nights: 0, wantBed: "0", wantBreakfast: "0"},
		{name: "negative nights", ages: []int{5, 12}, nights: -2, wantBed: "0", wantBreakfast: "0"},
		{name: "age 12 is never double counted", ages: []int{12}, nights: 1, wantBed: "40", wantBreakfast: "15"},
		{name: "several children over several nights", ages: []int{2, 7, 14}, nights: 3, wantBed: "180", wantBreakfast: "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ChildrenSurcharge(tt.ages, tt.nights)
			assert.True(t, dec(tt.wantBed).Equal(got.Bed), "bed: got %s", got.Bed)
			assert.True(t, dec(tt.wantBreakfast).Equal(got.Breakfast), "breakfast: got %s", got.Breakfast)
		})
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input      string
		wantOK     bool
		wantHour   int
		wantMinute int
	}{
		{input: "06:00", wantOK: true, wantHour: 6, wantMinute: 0},
		{input: "17:59:59", wantOK: true, wantHour: 17, wantMinute: 59},
		{input: "9:05", wantOK: true, wantHour: 9, wantMinute: 5},
		{input: "", wantOK: false},
		{input: "noon", wantOK: false},
		{input: "12", wantOK: false},
		{input: "24:00", wantOK: false},
		{input: "10:60", wantOK: false},
		{input: "1:2:3:4", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := pricing.ParseClockTime(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantHour, got.Hour())
				assert.Equal(t, tt.wantMinute, got.Minute())
			}
		})
	}
}

func TestTimeSurcharge(t *testing.T) {
	perNight := dec("100")

	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		perNight  decimal.Decimal
		wantEarly string
		wantLate  string
	}{
		{name: "early at 06:00 qualifies", checkIn: "06:00", perNight: perNight, wantEarly: "50", wantLate: "0"},
		{name: "early at 05:59 does not", checkIn: "05:59", perNight: perNight, wantEarly: "0", wantLate: "0"},
		{name: "early at 11:59 qualifies", checkIn: "11:59:30", perNight: perNight, wantEarly: "50", wantLate: "0"},
		{name: "early at 12:00 does not", checkIn: "12:00", perNight: perNight, wantEarly: "0", wantLate: "0"},
		{name: "late at 10:59 does not", checkOut: "10:59", perNight: perNight, wantEarly: "0", wantLate: "0"},
		{name: "late at 11:00 is half", checkOut: "11:00:00", perNight: perNight, wantEarly: "0", wantLate: "50"},
		{name: "late at 17:59 is half", checkOut: "17:59", perNight: perNight, wantEarly: "0", wantLate: "50"},
		{name: "late at 18:00 is full", checkOut: "18:00", perNight: perNight, wantEarly: "0", wantLate: "100"},
		{name: "late at 23:30 is full", checkOut: "23:30", perNight: perNight, wantEarly: "0", wantLate: "100"},
		{name: "both charges", checkIn: "07:00", checkOut: "12:00", perNight: perNight, wantEarly: "50", wantLate: "50"},
		{name: "unparseable times", checkIn: "early", checkOut: "late", perNight: perNight, wantEarly: "0", wantLate: "0"},
		{name: "zero per night", checkIn: "07:00", checkOut: "19:00", perNight: decimal.Zero, wantEarly: "0", wantLate: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.TimeSurcharge(tt.checkIn, tt.checkOut, tt.perNight)
			assert.True(t, dec(tt.wantEarly).Equal(got.EarlyCheckIn), "early: got %s", got.EarlyCheckIn)
			assert.True(t, dec(tt.wantLate).Equal(got.LateCheckOut), "late: got %s", got.LateCheckOut)
		})
	}
}
