package request

import (
	"hotel-management-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomRateRequest struct {
	RatePlanID uuid.UUID        `json:"ratePlanId" binding:"required"`
	Hotel      string           `json:"hotel" binding:"required,oneof=africanVillage bishoftu entoto laketana awashfall"`
	DayOfWeek  string           `json:"dayOfWeek" binding:"required,oneof=weekdays weekends"`
	Price      *decimal.Decimal `json:"price" binding:"required"`
}

func (r RoomRateRequest) ToInput() commands.RoomRateInput {
	return commands.RoomRateInput{
		RatePlanID: r.RatePlanID,
		Hotel:      r.Hotel,
		DayOfWeek:  r.DayOfWeek,
		Price:      *r.Price,
	}
}
