package response

import (
	"time"

	"hotel-management-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomRateResponse struct {
	ID           uuid.UUID `json:"id"`
	RatePlanID   uuid.UUID `json:"ratePlanId"`
	RatePlanName string    `json:"ratePlanName"`
	Hotel        string    `json:"hotel"`
	DayOfWeek    string    `json:"dayOfWeek"`
	Price        string    `json:"price"`
	Occupancy    int       `json:"occupancy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromRoomRateView(v *queries.RoomRateView) (*RoomRateResponse, error) {
	resp := &RoomRateResponse{}
	if err := copyInto(resp, v); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromRoomRateList(views []*queries.RoomRateView) ([]*RoomRateResponse, error) {
	out := make([]*RoomRateResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromRoomRateView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
