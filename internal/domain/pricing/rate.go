package pricing

import (
	"hotel-management-api/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateLookup resolves the nightly price of a rate plan at a hotel for a day class.
// A missing entry is reported with ok == false and is billed as zero.
type RateLookup interface {
	Rate(planID uuid.UUID, h hotel.Hotel, class DayClass) (price decimal.Decimal, ok bool)
}

type DailyRate struct {
	PlanID uuid.UUID
	Hotel  hotel.Hotel
	Class  DayClass
	Price  decimal.Decimal
}

type rateKey struct {
	planID uuid.UUID
	hotel  hotel.Hotel
	class  DayClass
}

// RateTable is an in-memory RateLookup built from rows fetched ahead of a calculation.
type RateTable struct {
	rates map[rateKey]decimal.Decimal
}

func NewRateTable(rates ...DailyRate) *RateTable {
	t := &RateTable{rates: make(map[rateKey]decimal.Decimal, len(rates))}
	for _, r := range rates {
		t.Add(r)
	}
	return t
}

// Add stores r, replacing any earlier price for the same plan, hotel and class.
func (t *RateTable) Add(r DailyRate) {
	t.rates[rateKey{planID: r.PlanID, hotel: r.Hotel, class: r.Class}] = r.Price
}

func (t *RateTable) Len() int {
	return len(t.rates)
}

func (t *RateTable) Rate(planID uuid.UUID, h hotel.Hotel, class DayClass) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	price, ok := t.rates[rateKey{planID: planID, hotel: h, class: class}]
	if !ok {
		return decimal.Zero, false
	}
	return price, true
}
