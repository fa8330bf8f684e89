package response

import (
	"time"

	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/usecase/commands"
	"hotel-management-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	Hotel           string     `json:"hotel"`
	CheckInDate     string     `json:"checkInDate"`
	CheckOutDate    string     `json:"checkOutDate"`
	CheckInTime     string     `json:"checkInTime"`
	CheckOutTime    string     `json:"checkOutTime"`
	NumAdults       int        `json:"numAdults"`
	NumChildren     int        `json:"numChildren"`
	ChildrenAges    string     `json:"childrenAges"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus"`
	Source          string     `json:"source"`
	TotalPrice      string     `json:"totalPrice"`
	CreatedBy       uuid.UUID  `json:"createdBy"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	GuestID         uuid.UUID  `json:"guestId"`
	GuestFirstName  string     `json:"guestFirstName"`
	GuestLastName   string     `json:"guestLastName"`
	GuestEmail      string     `json:"guestEmail"`
	RoomID          uuid.UUID  `json:"roomId"`
	RoomNumber      string     `json:"roomNumber"`
	RatePlanName    *string    `json:"ratePlanName,omitempty"`
}

type ReservationListResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Hotel          string    `json:"hotel"`
	CheckInDate    string    `json:"checkInDate"`
	CheckOutDate   string    `json:"checkOutDate"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	TotalPrice     string    `json:"totalPrice"`
	GuestFirstName string    `json:"guestFirstName"`
	GuestLastName  string    `json:"guestLastName"`
	RoomNumber     string    `json:"roomNumber"`
	RatePlanName   *string   `json:"ratePlanName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type PriceBreakdownResponse struct {
	Nights                 int    `json:"nights"`
	RoomPrice              string `json:"roomPrice"`
	PerNightPrice          string `json:"perNightPrice"`
	ChildrenBedPrice       string `json:"childrenBedPrice"`
	ChildrenBreakfastPrice string `json:"childrenBreakfastPrice"`
	EarlyCheckInCharge     string `json:"earlyCheckInCharge"`
	LateCheckOutCharge     string `json:"lateCheckOutCharge"`
	TotalPrice             string `json:"totalPrice"`
}

type ReservationWithPriceResponse struct {
	Reservation    *ReservationResponse    `json:"reservation"`
	PriceBreakdown *PriceBreakdownResponse `json:"priceBreakdown"`
}

type QuoteResponse struct {
	RoomID         uuid.UUID               `json:"roomId"`
	Hotel          string                  `json:"hotel"`
	CheckInTime    string                  `json:"checkInTime"`
	CheckOutTime   string                  `json:"checkOutTime"`
	PriceBreakdown *PriceBreakdownResponse `json:"priceBreakdown"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	resp := &ReservationResponse{}
	if err := copyInto(resp, v); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromReservationList(items []*queries.ReservationListItem) ([]*ReservationListResponse, error) {
	out := make([]*ReservationListResponse, 0, len(items))
	for _, item := range items {
		resp := &ReservationListResponse{}
		if err := copyInto(resp, item); err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func FromBreakdown(b pricing.Breakdown) (*PriceBreakdownResponse, error) {
	resp := &PriceBreakdownResponse{}
	if err := copyInto(resp, &b); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromReservationResult(r *commands.ReservationResult) (*ReservationWithPriceResponse, error) {
	res, err := FromReservationView(r.Reservation)
	if err != nil {
		return nil, err
	}
	breakdown, err := FromBreakdown(r.Breakdown)
	if err != nil {
		return nil, err
	}
	return &ReservationWithPriceResponse{Reservation: res, PriceBreakdown: breakdown}, nil
}

func FromQuoteResult(r *commands.QuoteResult) (*QuoteResponse, error) {
	breakdown, err := FromBreakdown(r.Breakdown)
	if err != nil {
		return nil, err
	}
	return &QuoteResponse{
		RoomID:         r.RoomID,
		Hotel:          r.Hotel,
		CheckInTime:    r.CheckInTime,
		CheckOutTime:   r.CheckOutTime,
		PriceBreakdown: breakdown,
	}, nil
}
