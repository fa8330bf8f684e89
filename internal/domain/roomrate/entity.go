package roomrate

import (
	"time"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice   = errs.New("price must be zero or greater")
	ErrMissingRatePlan = errs.New("rate plan is required")
)

// Plan is the rate plan a price row belongs to. Occupancy of the row follows the plan's maximum occupancy.
type Plan struct {
	ID           uuid.UUID
	MaxOccupancy int
}

type Spec struct {
	Hotel     string
	DayOfWeek string
	Price     decimal.Decimal
}

// RoomRate is one row of a rate plan's price table: the nightly price for a hotel and day classification.
type RoomRate struct {
	id         uuid.UUID
	ratePlanID uuid.UUID
	hotel      hotel.Hotel
	class      pricing.DayClass
	price      decimal.Decimal
	occupancy  int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRoomRate(plan Plan, spec Spec, now time.Time) (*RoomRate, error) {
	r := &RoomRate{id: uuid.New(), createdAt: now}
	if err := r.apply(plan, spec, now); err != nil {
		return nil, err
	}
	return r, nil
}

// Change replaces every field of the row, re-reading occupancy from plan.
func (r *RoomRate) Change(plan Plan, spec Spec, now time.Time) error {
	return r.apply(plan, spec, now)
}

func (r *RoomRate) apply(plan Plan, spec Spec, now time.Time) error {
	if plan.ID == uuid.Nil {
		return ErrMissingRatePlan
	}
	h, err := hotel.NewHotel(spec.Hotel)
	if err != nil {
		return err
	}
	class, err := pricing.NewDayClass(spec.DayOfWeek)
	if err != nil {
		return err
	}
	if spec.Price.IsNegative() {
		return ErrNegativePrice
	}

	r.ratePlanID = plan.ID
	r.hotel = h
	r.class = class
	r.price = spec.Price.Round(2)
	r.occupancy = plan.MaxOccupancy
	r.updatedAt = now
	return nil
}

type Record struct {
	ID         uuid.UUID
	RatePlanID uuid.UUID
	Hotel      hotel.Hotel
	Class      pricing.DayClass
	Price      decimal.Decimal
	Occupancy  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructRoomRate(rec Record) *RoomRate {
	return &RoomRate{
		id:         rec.ID,
		ratePlanID: rec.RatePlanID,
		hotel:      rec.Hotel,
		class:      rec.Class,
		price:      rec.Price,
		occupancy:  rec.Occupancy,
		createdAt:  rec.CreatedAt,
		updatedAt:  rec.UpdatedAt,
	}
}

// DailyRate exposes the row as input for the pricing engine.
func (r *RoomRate) DailyRate() pricing.DailyRate {
	return pricing.DailyRate{PlanID: r.ratePlanID, Hotel: r.hotel, Class: r.class, Price: r.price}
}

func (r *RoomRate) ID() uuid.UUID              { return r.id }
func (r *RoomRate) RatePlanID() uuid.UUID      { return r.ratePlanID }
func (r *RoomRate) Hotel() hotel.Hotel         { return r.hotel }
func (r *RoomRate) DayClass() pricing.DayClass { return r.class }
func (r *RoomRate) Price() decimal.Decimal     { return r.price }
func (r *RoomRate) Occupancy() int             { return r.occupancy }
func (r *RoomRate) CreatedAt() time.Time       { return r.createdAt }
func (r *RoomRate) UpdatedAt() time.Time       { return r.updatedAt }
