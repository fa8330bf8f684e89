package pricing

import (
	"hotel-management-api/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Input struct {
	PlanID       uuid.UUID
	Hotel        hotel.Hotel
	Stay         Stay
	CheckInTime  string
	CheckOutTime string
	ChildrenAges string
}

// Breakdown holds every component of a stay price at full precision.
// Only TotalPrice is meant to be persisted.
type Breakdown struct {
	Nights                 int
	RoomPrice              decimal.Decimal
	PerNightPrice          decimal.Decimal
	ChildrenBedPrice       decimal.Decimal
	ChildrenBreakfastPrice decimal.Decimal
	EarlyCheckInCharge     decimal.Decimal
	LateCheckOutCharge     decimal.Decimal
	TotalPrice             decimal.Decimal
}

// FormattedTotal renders the total with two decimals, e.g. "125.00".
func (b Breakdown) FormattedTotal() string {
	return FormatMoney(b.TotalPrice)
}

func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Calculator combines room, children and time-of-day charges into a Breakdown.
// It never fails: bad or missing input contributes zero.
type Calculator struct {
	pricer RoomPricer
}

func NewCalculator(pricer RoomPricer) *Calculator {
	if pricer == nil {
		pricer = DayByDayPricer{}
	}
	return &Calculator{pricer: pricer}
}

func (c *Calculator) Calculate(in Input, lookup RateLookup) Breakdown {
	nights := in.Stay.Nights()
	room := c.pricer.RoomPrice(in.PlanID, in.Hotel, in.Stay, lookup)

	perNight := decimal.Zero
	if nights > 0 {
		perNight = room.Div(decimal.NewFromInt(int64(nights)))
	}

	children := ChildrenSurcharge(ParseChildAges(in.ChildrenAges), nights)
	times := TimeSurcharge(in.CheckInTime, in.CheckOutTime, perNight)

	total := room.
		Add(children.Bed).
		Add(children.Breakfast).
		Add(times.EarlyCheckIn).
		Add(times.LateCheckOut)

	return Breakdown{
		Nights:                 nights,
		RoomPrice:              room,
		PerNightPrice:          perNight,
		ChildrenBedPrice:       children.Bed,
		ChildrenBreakfastPrice: children.Breakfast,
		EarlyCheckInCharge:     times.EarlyCheckIn,
		LateCheckOutCharge:     times.LateCheckOut,
		TotalPrice:             total,
	}
}
