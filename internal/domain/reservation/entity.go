package reservation

import (
	"errors"
	"time"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidSource        = errors.New("invalid reservation source")
	ErrInvalidOccupancy     = errors.New("at least one adult is required and children cannot be negative")
	ErrInvalidTimeOfDay     = errors.New("invalid time of day")
	ErrMissingGuest         = errors.New("guest is required")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
)

type Services struct {
	Clock      clock.Clock
	Calculator *pricing.Calculator
}

// RoomSpec is what pricing needs to know about the booked room.
// RatePlanID is uuid.Nil when the room has no plan.
type RoomSpec struct {
	ID         uuid.UUID
	Hotel      hotel.Hotel
	RatePlanID uuid.UUID
}

type Details struct {
	GuestID         uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	CheckInTime     TimeOfDay
	CheckOutTime    TimeOfDay
	Occupancy       Occupancy
	SpecialRequests *string
	Status          Status
	PaymentStatus   PaymentStatus
	Source          Source
}

func (d Details) stay() pricing.Stay {
	return pricing.NewStay(d.CheckInDate, d.CheckOutDate)
}

type Reservation struct {
	id          uuid.UUID
	code        string
	roomID      uuid.UUID
	hotel       hotel.Hotel
	details     Details
	totalPrice  decimal.Decimal
	createdBy   uuid.UUID
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation prices the stay against rates and returns the reservation with the breakdown used.
func NewReservation(
	services *Services,
	room RoomSpec,
	details Details,
	createdBy uuid.UUID,
	rates pricing.RateLookup,
) (*Reservation, pricing.Breakdown, error) {
	if details.GuestID == uuid.Nil {
		return nil, pricing.Breakdown{}, ErrMissingGuest
	}

	now := services.Clock.Now()
	breakdown := Quote(services.Calculator, room, details, rates)

	var cancelledAt *time.Time
	if details.Status == StatusCancelled {
		cancelledAt = &now
	}

	return &Reservation{
		id:          uuid.New(),
		code:        NewCode(now),
		roomID:      room.ID,
		hotel:       room.Hotel,
		details:     details,
		totalPrice:  breakdown.TotalPrice,
		createdBy:   createdBy,
		cancelledAt: cancelledAt,
		createdAt:   now,
		updatedAt:   now,
	}, breakdown, nil
}

// Revise replaces the booking details and recomputes the price from scratch.
func (r *Reservation) Revise(
	services *Services,
	room RoomSpec,
	details Details,
	rates pricing.RateLookup,
) (pricing.Breakdown, error) {
	if details.GuestID == uuid.Nil {
		return pricing.Breakdown{}, ErrMissingGuest
	}

	breakdown := Quote(services.Calculator, room, details, rates)
	r.roomID = room.ID
	r.hotel = room.Hotel
	r.details = details
	r.totalPrice = breakdown.TotalPrice
	r.updatedAt = services.Clock.Now()
	switch {
	case details.Status != StatusCancelled:
		r.cancelledAt = nil
	case r.cancelledAt == nil:
		now := r.updatedAt
		r.cancelledAt = &now
	}
	return breakdown, nil
}

// Cancel is a soft delete; an already cancelled reservation keeps its first cancellation time.
func (r *Reservation) Cancel(now time.Time) {
	if r.details.Status == StatusCancelled && r.cancelledAt != nil {
		return
	}
	r.details.Status = StatusCancelled
	r.cancelledAt = &now
	r.updatedAt = now
}

type Record struct {
	ID          uuid.UUID
	Code        string
	RoomID      uuid.UUID
	Hotel       hotel.Hotel
	Details     Details
	TotalPrice  decimal.Decimal
	CreatedBy   uuid.UUID
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ReconstructReservation(rec Record) *Reservation {
	return &Reservation{
		id:          rec.ID,
		code:        rec.Code,
		roomID:      rec.RoomID,
		hotel:       rec.Hotel,
		details:     rec.Details,
		totalPrice:  rec.TotalPrice,
		createdBy:   rec.CreatedBy,
		cancelledAt: rec.CancelledAt,
		createdAt:   rec.CreatedAt,
		updatedAt:   rec.UpdatedAt,
	}
}

func (r *Reservation) IsCancelled() bool {
	return r.details.Status == StatusCancelled
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) Code() string                 { return r.code }
func (r *Reservation) RoomID() uuid.UUID            { return r.roomID }
func (r *Reservation) Hotel() hotel.Hotel           { return r.hotel }
func (r *Reservation) GuestID() uuid.UUID           { return r.details.GuestID }
func (r *Reservation) CheckInDate() time.Time       { return r.details.CheckInDate }
func (r *Reservation) CheckOutDate() time.Time      { return r.details.CheckOutDate }
func (r *Reservation) CheckInTime() TimeOfDay       { return r.details.CheckInTime }
func (r *Reservation) CheckOutTime() TimeOfDay      { return r.details.CheckOutTime }
func (r *Reservation) Occupancy() Occupancy         { return r.details.Occupancy }
func (r *Reservation) SpecialRequests() *string     { return r.details.SpecialRequests }
func (r *Reservation) Status() Status               { return r.details.Status }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.details.PaymentStatus }
func (r *Reservation) Source() Source               { return r.details.Source }
func (r *Reservation) TotalPrice() decimal.Decimal  { return r.totalPrice }
func (r *Reservation) CreatedBy() uuid.UUID         { return r.createdBy }
func (r *Reservation) CancelledAt() *time.Time      { return r.cancelledAt }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
