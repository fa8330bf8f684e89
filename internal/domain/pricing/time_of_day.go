package pricing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	half = decimal.NewFromFloat(0.5)
	full = decimal.NewFromInt(1)
)

// minute-of-day thresholds
const (
	earlyCheckInFrom  = 6 * 60
	earlyCheckInUntil = 12 * 60
	lateCheckOutFrom  = 11 * 60
	lateCheckOutFull  = 18 * 60
)

// ClockTime is a time of day with minute precision. Seconds are ignored.
type ClockTime struct {
	minutes int
}

// ParseClockTime accepts "HH:MM" or "HH:MM:SS".
func ParseClockTime(s string) (ClockTime, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, false
	}
	return ClockTime{minutes: h*60 + m}, true
}

func (t ClockTime) Hour() int   { return t.minutes / 60 }
func (t ClockTime) Minute() int { return t.minutes % 60 }

// EarlyCheckInFraction is 0.5 for arrivals in [06:00, 12:00), else 0.
func EarlyCheckInFraction(t ClockTime) decimal.Decimal {
	if t.minutes >= earlyCheckInFrom && t.minutes < earlyCheckInUntil {
		return half
	}
	return decimal.Zero
}

// LateCheckOutFraction is 0.5 for departures in [11:00, 18:00), 1.0 from 18:00, else 0.
func LateCheckOutFraction(t ClockTime) decimal.Decimal {
	switch {
	case t.minutes >= lateCheckOutFull:
		return full
	case t.minutes >= lateCheckOutFrom:
		return half
	default:
		return decimal.Zero
	}
}

type TimeCharge struct {
	EarlyCheckIn decimal.Decimal
	LateCheckOut decimal.Decimal
}

// TimeSurcharge applies the time-of-day fractions to the per-night price.
func TimeSurcharge(checkInTime, checkOutTime string, perNight decimal.Decimal) TimeCharge {
	charge := TimeCharge{EarlyCheckIn: decimal.Zero, LateCheckOut: decimal.Zero}
	if !perNight.IsPositive() {
		return charge
	}
	if in, ok := ParseClockTime(checkInTime); ok {
		charge.EarlyCheckIn = perNight.Mul(EarlyCheckInFraction(in))
	}
	if out, ok := ParseClockTime(checkOutTime); ok {
		charge.LateCheckOut = perNight.Mul(LateCheckOutFraction(out))
	}
	return charge
}
