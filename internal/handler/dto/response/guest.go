package response

import (
	"time"

	"hotel-management-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Gender    *string   `json:"gender,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Country   *string   `json:"country,omitempty"`
	City      *string   `json:"city,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromGuestView(v *queries.GuestView) *GuestResponse {
	return &GuestResponse{
		ID:        v.ID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
		Gender:    v.Gender,
		Phone:     v.Phone,
		Country:   v.Country,
		City:      v.City,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromGuestList(views []*queries.GuestView) []*GuestResponse {
	out := make([]*GuestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromGuestView(v))
	}
	return out
}
