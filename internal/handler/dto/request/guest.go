package request

import (
	"hotel-management-api/internal/domain/guest"
)

type CreateGuestRequest struct {
	FirstName string  `json:"firstName" binding:"required,max=100"`
	LastName  string  `json:"lastName" binding:"required,max=100"`
	Email     string  `json:"email" binding:"required,email"`
	Gender    *string `json:"gender,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Country   *string `json:"country,omitempty"`
	City      *string `json:"city,omitempty"`
}

func (r CreateGuestRequest) ToProfile() guest.Profile {
	return guest.Profile{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Gender:    r.Gender,
		Phone:     r.Phone,
		Country:   r.Country,
		City:      r.City,
	}
}
