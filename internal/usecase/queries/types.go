package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// ReservationView is a reservation joined with its guest, room and rate plan
type ReservationView struct {
	ID              uuid.UUID
	Code            string
	Hotel           string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	CheckInTime     string
	CheckOutTime    string
	NumAdults       int
	NumChildren     int
	ChildrenAges    string
	SpecialRequests *string
	Status          string
	PaymentStatus   string
	Source          string
	TotalPrice      decimal.Decimal
	CreatedBy       uuid.UUID
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	GuestID         uuid.UUID
	GuestFirstName  string
	GuestLastName   string
	GuestEmail      string
	RoomID          uuid.UUID
	RoomNumber      string
	RatePlanName    *string
}

type ReservationListItem struct {
	ID             uuid.UUID
	Code           string
	Hotel          string
	CheckInDate    time.Time
	CheckOutDate   time.Time
	Status         string
	PaymentStatus  string
	TotalPrice     decimal.Decimal
	GuestFirstName string
	GuestLastName  string
	RoomNumber     string
	RatePlanName   *string
	CreatedAt      time.Time
}

type RoomView struct {
	ID           uuid.UUID
	RoomNumber   string
	Hotel        string
	RatePlanID   *uuid.UUID
	RatePlanName *string
	Status       string
}

// RoomListItem carries the plan's nightly prices; nil when the plan has no row for that day class.
type RoomListItem struct {
	RoomView
	WeekdayPrice *decimal.Decimal
	WeekendPrice *decimal.Decimal
}

type RoomRateView struct {
	ID           uuid.UUID
	RatePlanID   uuid.UUID
	RatePlanName string
	Hotel        string
	DayOfWeek    string
	Price        decimal.Decimal
	Occupancy    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RoomRateFilter struct {
	Hotel     *string
	Occupancy *int
}

type GuestView struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Gender    *string
	Phone     *string
	Country   *string
	City      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PricingDebugView shows the rows a room would be priced from and the flat base rate of the legacy policy.
type PricingDebugView struct {
	Room           RoomView
	Rates          []*RoomRateView
	LegacyBaseRate decimal.Decimal
}
