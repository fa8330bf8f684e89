//go:build unit || e2e

package builder

import (
	"time"

	"hotel-management-api/internal/domain/roomrate"
	reqdto "hotel-management-api/internal/handler/dto/request"
	"hotel-management-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomRateBuilder struct {
	RatePlanID   uuid.UUID
	RatePlanName string
	Occupancy    int
	Hotel        string
	DayOfWeek    string
	Price        decimal.Decimal
}

func NewRoomRateBuilder() *RoomRateBuilder {
	return &RoomRateBuilder{
		RatePlanID:   uuid.New(),
		RatePlanName: "Standard Double",
		Occupancy:    2,
		Hotel:        "entoto",
		DayOfWeek:    "weekdays",
		Price:        decimal.RequireFromString("100.00"),
	}
}

func (r *RoomRateBuilder) With(mutate func(*RoomRateBuilder)) *RoomRateBuilder {
	mutate(r)
	return r
}

func (r *RoomRateBuilder) BuildRequestDTO() reqdto.RoomRateRequest {
	price := r.Price
	return reqdto.RoomRateRequest{
		RatePlanID: r.RatePlanID,
		Hotel:      r.Hotel,
		DayOfWeek:  r.DayOfWeek,
		Price:      &price,
	}
}

func (r *RoomRateBuilder) BuildPlan() roomrate.Plan {
	return roomrate.Plan{ID: r.RatePlanID, MaxOccupancy: r.Occupancy}
}

func (r *RoomRateBuilder) BuildSpec() roomrate.Spec {
	return roomrate.Spec{Hotel: r.Hotel, DayOfWeek: r.DayOfWeek, Price: r.Price}
}

func (r *RoomRateBuilder) BuildDomain() (*roomrate.RoomRate, error) {
	return roomrate.NewRoomRate(r.BuildPlan(), r.BuildSpec(), time.Now())
}

func (r *RoomRateBuilder) BuildView() *queries.RoomRateView {
	now := time.Now().UTC()
	return &queries.RoomRateView{
		ID:           uuid.New(),
		RatePlanID:   r.RatePlanID,
		RatePlanName: r.RatePlanName,
		Hotel:        r.Hotel,
		DayOfWeek:    r.DayOfWeek,
		Price:        r.Price,
		Occupancy:    r.Occupancy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
