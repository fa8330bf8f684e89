//go:build unit || e2e

package builder

import (
	"time"

	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/domain/reservation"
	reqdto "hotel-management-api/internal/handler/dto/request"
	"hotel-management-api/internal/usecase/commands"
	"hotel-management-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	Hotel           string
	CheckInDate     string
	CheckOutDate    string
	CheckInTime     *string
	CheckOutTime    *string
	NumAdults       int
	NumChildren     int
	ChildrenAges    *string
	SpecialRequests *string
	TotalPrice      decimal.Decimal
	CreatedBy       uuid.UUID
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		GuestID:      uuid.New(),
		RoomID:       uuid.New(),
		Hotel:        "entoto",
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		NumAdults:    2,
		TotalPrice:   decimal.RequireFromString("200.00"),
		CreatedBy:    uuid.New(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithTimes(checkIn, checkOut string) *ReservationBuilder {
	r.CheckInTime = &checkIn
	r.CheckOutTime = &checkOut
	return r
}

func (r *ReservationBuilder) WithChildren(ages string, count int) *ReservationBuilder {
	r.ChildrenAges = &ages
	r.NumChildren = count
	return r
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.ReservationRequest {
	return reqdto.ReservationRequest{
		GuestID:         r.GuestID,
		RoomID:          r.RoomID,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		CheckInTime:     r.CheckInTime,
		CheckOutTime:    r.CheckOutTime,
		NumAdults:       r.NumAdults,
		NumChildren:     r.NumChildren,
		ChildrenAges:    r.ChildrenAges,
		SpecialRequests: r.SpecialRequests,
	}
}

func (r *ReservationBuilder) BuildQuoteDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		RoomID:       r.RoomID,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
		ChildrenAges: r.ChildrenAges,
	}
}

func (r *ReservationBuilder) BuildInput() commands.ReservationInput {
	return r.BuildRequestDTO().ToInput()
}

func (r *ReservationBuilder) BuildDetailsInput() reservation.DetailsInput {
	return r.BuildInput().Details
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now().UTC()
	in, _ := time.Parse(time.DateOnly, r.CheckInDate)
	out, _ := time.Parse(time.DateOnly, r.CheckOutDate)
	checkIn, checkOut := "14:00:00", "12:00:00"
	if r.CheckInTime != nil {
		checkIn = *r.CheckInTime
	}
	if r.CheckOutTime != nil {
		checkOut = *r.CheckOutTime
	}
	ages := ""
	if r.ChildrenAges != nil {
		ages = *r.ChildrenAges
	}
	return &queries.ReservationView{
		ID:              uuid.New(),
		Code:            "RES-TEST0001",
		Hotel:           r.Hotel,
		CheckInDate:     in,
		CheckOutDate:    out,
		CheckInTime:     checkIn,
		CheckOutTime:    checkOut,
		NumAdults:       r.NumAdults,
		NumChildren:     r.NumChildren,
		ChildrenAges:    ages,
		SpecialRequests: r.SpecialRequests,
		Status:          "confirmed",
		PaymentStatus:   "pending",
		Source:          "website",
		TotalPrice:      r.TotalPrice,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
		GuestID:         r.GuestID,
		GuestFirstName:  "Abebe",
		GuestLastName:   "Kebede",
		GuestEmail:      "abebe@example.com",
		RoomID:          r.RoomID,
		RoomNumber:      "101",
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	v := r.BuildView()
	return &queries.ReservationListItem{
		ID:             v.ID,
		Code:           v.Code,
		Hotel:          v.Hotel,
		CheckInDate:    v.CheckInDate,
		CheckOutDate:   v.CheckOutDate,
		Status:         v.Status,
		PaymentStatus:  v.PaymentStatus,
		TotalPrice:     v.TotalPrice,
		GuestFirstName: v.GuestFirstName,
		GuestLastName:  v.GuestLastName,
		RoomNumber:     v.RoomNumber,
		CreatedAt:      v.CreatedAt,
	}
}

// BuildBreakdown returns a two-weekday-night stay at 100.00 with no surcharges.
func (r *ReservationBuilder) BuildBreakdown() pricing.Breakdown {
	hundred := decimal.RequireFromString("100.00")
	return pricing.Breakdown{
		Nights:        2,
		RoomPrice:     hundred.Mul(decimal.NewFromInt(2)),
		PerNightPrice: hundred,
		TotalPrice:    r.TotalPrice,
	}
}

func (r *ReservationBuilder) BuildResult() *commands.ReservationResult {
	return &commands.ReservationResult{Reservation: r.BuildView(), Breakdown: r.BuildBreakdown()}
}
