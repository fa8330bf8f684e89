package shared

import (
	"time"

	"hotel-management-api/internal/domain/hotel"
	"hotel-management-api/internal/domain/reservation"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

type RoomSnapshot struct {
	ID         uuid.UUID
	RoomNumber string
	Hotel      hotel.Hotel
	RatePlanID uuid.UUID // uuid.Nil when the room has no plan
}

func (s RoomSnapshot) Spec() reservation.RoomSpec {
	return reservation.RoomSpec{ID: s.ID, Hotel: s.Hotel, RatePlanID: s.RatePlanID}
}

type GuestSnapshot struct {
	ID    uuid.UUID
	Email string
}

type RatePlanSnapshot struct {
	ID           uuid.UUID
	Name         string
	MaxOccupancy int
}

// ReservationSnapshot carries what survives a full update: identity, audit fields and cancellation state.
type ReservationSnapshot struct {
	ID          uuid.UUID
	Code        string
	Status      reservation.Status
	CreatedBy   uuid.UUID
	CancelledAt *time.Time
	CreatedAt   time.Time
}

func (s ReservationSnapshot) Reconstruct() *reservation.Reservation {
	return reservation.ReconstructReservation(reservation.Record{
		ID:          s.ID,
		Code:        s.Code,
		Details:     reservation.Details{Status: s.Status},
		CreatedBy:   s.CreatedBy,
		CancelledAt: s.CancelledAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.CreatedAt,
	})
}
