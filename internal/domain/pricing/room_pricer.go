package pricing

import (
	"errors"

	"hotel-management-api/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownPolicy = errors.New("unknown room pricing policy")

type Policy string

const (
	PolicyDayByDay       Policy = "day_by_day"
	PolicyLegacyFlatRate Policy = "legacy_flat_rate"
)

// RoomPricer computes the room-only price of a stay. uuid.Nil means the room has no plan.
type RoomPricer interface {
	RoomPrice(planID uuid.UUID, h hotel.Hotel, stay Stay, lookup RateLookup) decimal.Decimal
}

func NewRoomPricer(p Policy) (RoomPricer, error) {
	switch p {
	case PolicyDayByDay, "":
		return DayByDayPricer{}, nil
	case PolicyLegacyFlatRate:
		return FlatRatePricer{}, nil
	default:
		return nil, ErrUnknownPolicy
	}
}

// DayByDayPricer bills every day of the stay at its own class rate.
// A class without a rate bills those days at zero.
type DayByDayPricer struct{}

func (DayByDayPricer) RoomPrice(planID uuid.UUID, h hotel.Hotel, stay Stay, lookup RateLookup) decimal.Decimal {
	total := decimal.Zero
	if planID == uuid.Nil || lookup == nil {
		return total
	}
	weekdays, weekends := stay.ClassCounts()
	if price, ok := lookup.Rate(planID, h, Weekday); ok {
		total = total.Add(price.Mul(decimal.NewFromInt(int64(weekdays))))
	}
	if price, ok := lookup.Rate(planID, h, Weekend); ok {
		total = total.Add(price.Mul(decimal.NewFromInt(int64(weekends))))
	}
	return total
}

// FlatRatePricer is the legacy policy: one base rate, weekday preferred over weekend,
// multiplied by the night count regardless of which days the stay covers.
type FlatRatePricer struct{}

// BaseRate is the single nightly rate the legacy policy bills.
func (FlatRatePricer) BaseRate(planID uuid.UUID, h hotel.Hotel, lookup RateLookup) decimal.Decimal {
	if planID == uuid.Nil || lookup == nil {
		return decimal.Zero
	}
	if price, ok := lookup.Rate(planID, h, Weekday); ok {
		return price
	}
	if price, ok := lookup.Rate(planID, h, Weekend); ok {
		return price
	}
	return decimal.Zero
}

func (p FlatRatePricer) RoomPrice(planID uuid.UUID, h hotel.Hotel, stay Stay, lookup RateLookup) decimal.Decimal {
	nights := stay.Nights()
	if nights <= 0 {
		return decimal.Zero
	}
	return p.BaseRate(planID, h, lookup).Mul(decimal.NewFromInt(int64(nights)))
}
