package reservation

import (
	"hotel-management-api/internal/domain/pricing"
)

// Quote prices details for room without building a reservation.
func Quote(calc *pricing.Calculator, room RoomSpec, details Details, rates pricing.RateLookup) pricing.Breakdown {
	return calc.Calculate(PricingInput(room, details), rates)
}

func PricingInput(room RoomSpec, details Details) pricing.Input {
	return pricing.Input{
		PlanID:       room.RatePlanID,
		Hotel:        room.Hotel,
		Stay:         details.stay(),
		CheckInTime:  details.CheckInTime.String(),
		CheckOutTime: details.CheckOutTime.String(),
		ChildrenAges: details.Occupancy.ChildrenAges(),
	}
}
