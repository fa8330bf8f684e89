package guest

import (
	"strings"
	"time"

	"hotel-management-api/internal/domain/user"

	"github.com/google/uuid"
)

type Profile struct {
	FirstName string
	LastName  string
	Email     string
	Gender    *string
	Phone     *string
	Country   *string
	City      *string
}

type Guest struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     user.Email
	gender    *Gender
	phone     *string
	country   *string
	city      *string
	createdAt time.Time
}

func NewGuest(p Profile, now time.Time) (*Guest, error) {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	if first == "" || last == "" {
		return nil, ErrMissingName
	}

	email, err := user.NewEmail(p.Email)
	if err != nil {
		return nil, err
	}

	var gender *Gender
	if p.Gender != nil && strings.TrimSpace(*p.Gender) != "" {
		g, err := NewGender(*p.Gender)
		if err != nil {
			return nil, err
		}
		gender = &g
	}

	phone, err := optional(p.Phone, maxPhoneLen)
	if err != nil {
		return nil, err
	}
	country, err := optional(p.Country, maxLocationLen)
	if err != nil {
		return nil, err
	}
	city, err := optional(p.City, maxLocationLen)
	if err != nil {
		return nil, err
	}

	return &Guest{
		id:        uuid.New(),
		firstName: first,
		lastName:  last,
		email:     email,
		gender:    gender,
		phone:     phone,
		country:   country,
		city:      city,
		createdAt: now,
	}, nil
}

func (g *Guest) FullName() string {
	return g.firstName + " " + g.lastName
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) FirstName() string    { return g.firstName }
func (g *Guest) LastName() string     { return g.lastName }
func (g *Guest) Email() user.Email    { return g.email }
func (g *Guest) Gender() *Gender      { return g.gender }
func (g *Guest) Phone() *string       { return g.phone }
func (g *Guest) Country() *string     { return g.country }
func (g *Guest) City() *string        { return g.city }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
