package request

import (
	"hotel-management-api/internal/domain/reservation"
	"hotel-management-api/internal/pkg/patch"
	"hotel-management-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// ReservationRequest is shared by create and full update.
type ReservationRequest struct {
	GuestID         uuid.UUID `json:"guestId" binding:"required"`
	RoomID          uuid.UUID `json:"roomId" binding:"required"`
	CheckInDate     string    `json:"checkInDate" binding:"required"`
	CheckOutDate    string    `json:"checkOutDate" binding:"required"`
	CheckInTime     *string   `json:"checkInTime,omitempty"`
	CheckOutTime    *string   `json:"checkOutTime,omitempty"`
	NumAdults       int       `json:"numAdults" binding:"required,min=1"`
	NumChildren     int       `json:"numChildren" binding:"min=0"`
	ChildrenAges    *string   `json:"childrenAges,omitempty"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	Status          *string   `json:"status,omitempty" binding:"omitempty,oneof=confirmed cancelled completed"`
	PaymentStatus   *string   `json:"paymentStatus,omitempty" binding:"omitempty,oneof=pending paid failed refunded"`
	Source          *string   `json:"source,omitempty" binding:"omitempty,oneof=website mobile_app walk_in agent call_center"`
}

func (r ReservationRequest) ToInput() commands.ReservationInput {
	return commands.ReservationInput{
		RoomID: r.RoomID,
		Details: reservation.DetailsInput{
			GuestID:         r.GuestID,
			CheckInDate:     r.CheckInDate,
			CheckOutDate:    r.CheckOutDate,
			CheckInTime:     patch.Coalesce(r.CheckInTime, ""),
			CheckOutTime:    patch.Coalesce(r.CheckOutTime, ""),
			NumAdults:       r.NumAdults,
			NumChildren:     r.NumChildren,
			ChildrenAges:    patch.Coalesce(r.ChildrenAges, ""),
			SpecialRequests: r.SpecialRequests,
			Status:          patch.Coalesce(r.Status, ""),
			PaymentStatus:   patch.Coalesce(r.PaymentStatus, ""),
			Source:          patch.Coalesce(r.Source, ""),
		},
	}
}

type QuoteRequest struct {
	RoomID       uuid.UUID `json:"roomId" binding:"required"`
	CheckInDate  string    `json:"checkInDate" binding:"required"`
	CheckOutDate string    `json:"checkOutDate" binding:"required"`
	CheckInTime  *string   `json:"checkInTime,omitempty"`
	CheckOutTime *string   `json:"checkOutTime,omitempty"`
	ChildrenAges *string   `json:"childrenAges,omitempty"`
}

func (r QuoteRequest) ToInput() commands.QuoteInput {
	return commands.QuoteInput{
		RoomID:       r.RoomID,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		CheckInTime:  patch.Coalesce(r.CheckInTime, ""),
		CheckOutTime: patch.Coalesce(r.CheckOutTime, ""),
		ChildrenAges: patch.Coalesce(r.ChildrenAges, ""),
	}
}
