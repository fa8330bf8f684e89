package response

import (
	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID           uuid.UUID  `json:"id"`
	RoomNumber   string     `json:"roomNumber"`
	Hotel        string     `json:"hotel"`
	RatePlanID   *uuid.UUID `json:"ratePlanId,omitempty"`
	RatePlanName *string    `json:"ratePlanName,omitempty"`
	Status       string     `json:"status"`
}

// RoomListResponse prices are null when the plan has no row for that day class.
type RoomListResponse struct {
	RoomResponse
	WeekdayPrice *string `json:"weekdayPrice"`
	WeekendPrice *string `json:"weekendPrice"`
}

type PricingDebugResponse struct {
	Room           RoomResponse        `json:"room"`
	Rates          []*RoomRateResponse `json:"rates"`
	LegacyBaseRate string              `json:"legacyBaseRate"`
}

func FromRoomList(items []*queries.RoomListItem) ([]*RoomListResponse, error) {
	out := make([]*RoomListResponse, 0, len(items))
	for _, item := range items {
		resp := &RoomListResponse{}
		if err := copyInto(&resp.RoomResponse, &item.RoomView); err != nil {
			return nil, err
		}
		resp.WeekdayPrice = moneyPtr(item.WeekdayPrice)
		resp.WeekendPrice = moneyPtr(item.WeekendPrice)
		out = append(out, resp)
	}
	return out, nil
}

func FromPricingDebug(v *queries.PricingDebugView) (*PricingDebugResponse, error) {
	resp := &PricingDebugResponse{LegacyBaseRate: pricing.FormatMoney(v.LegacyBaseRate)}
	if err := copyInto(&resp.Room, &v.Room); err != nil {
		return nil, err
	}
	rates, err := FromRoomRateList(v.Rates)
	if err != nil {
		return nil, err
	}
	resp.Rates = rates
	return resp, nil
}
