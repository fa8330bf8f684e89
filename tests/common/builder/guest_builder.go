//go:build unit || e2e

package builder

import (
	"time"

	"hotel-management-api/internal/domain/guest"
	reqdto "hotel-management-api/internal/handler/dto/request"
	"hotel-management-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	FirstName string
	LastName  string
	Email     string
	Gender    *string
	Phone     *string
	Country   *string
	City      *string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		FirstName: "Abebe",
		LastName:  "Kebede",
		Email:     "abebe@example.com",
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

func (g *GuestBuilder) WithEmail(email string) *GuestBuilder {
	g.Email = email
	return g
}

func (g *GuestBuilder) BuildProfile() guest.Profile {
	return guest.Profile{
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		Gender:    g.Gender,
		Phone:     g.Phone,
		Country:   g.Country,
		City:      g.City,
	}
}

func (g *GuestBuilder) BuildDomain() (*guest.Guest, error) {
	return guest.NewGuest(g.BuildProfile(), time.Now())
}

func (g *GuestBuilder) BuildRequestDTO() reqdto.CreateGuestRequest {
	return reqdto.CreateGuestRequest{
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		Gender:    g.Gender,
		Phone:     g.Phone,
		Country:   g.Country,
		City:      g.City,
	}
}

func (g *GuestBuilder) BuildView() *queries.GuestView {
	now := time.Now().UTC()
	return &queries.GuestView{
		ID:        uuid.New(),
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		Gender:    g.Gender,
		Phone:     g.Phone,
		Country:   g.Country,
		City:      g.City,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
