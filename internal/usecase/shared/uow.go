package shared

import (
	"context"

	"hotel-management-api/internal/domain/guest"
	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/domain/reservation"
	"hotel-management-api/internal/domain/roomrate"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	RoomRates() RoomRateRepository
	Guests() GuestRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	GuestByID(ctx context.Context, id uuid.UUID) (*GuestSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	RatePlanByID(ctx context.Context, id uuid.UUID) (*RatePlanSnapshot, error)
	RoomRateByID(ctx context.Context, id uuid.UUID) (*roomrate.RoomRate, error)
	// RatesForPlan returns every daily rate of the plan across hotels. Unknown plans yield an empty table.
	RatesForPlan(ctx context.Context, planID uuid.UUID) (*pricing.RateTable, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Cancel(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type RoomRateRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rate *roomrate.RoomRate) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, rate *roomrate.RoomRate) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type GuestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, g *guest.Guest) (uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
