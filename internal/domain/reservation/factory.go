package reservation

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// DetailsInput is the raw booking data as received from clients.
type DetailsInput struct {
	GuestID         uuid.UUID
	CheckInDate     string
	CheckOutDate    string
	CheckInTime     string
	CheckOutTime    string
	NumAdults       int
	NumChildren     int
	ChildrenAges    string
	SpecialRequests *string
	Status          string
	PaymentStatus   string
	Source          string
}

// Factory turns raw input into Details, filling in the hotel's standard check-in and check-out times.
type Factory struct {
	defaultCheckIn  TimeOfDay
	defaultCheckOut TimeOfDay
}

func NewFactory(defaultCheckIn, defaultCheckOut string) (*Factory, error) {
	in, err := NewTimeOfDay(defaultCheckIn)
	if err != nil {
		return nil, err
	}
	out, err := NewTimeOfDay(defaultCheckOut)
	if err != nil {
		return nil, err
	}
	return &Factory{defaultCheckIn: in, defaultCheckOut: out}, nil
}

func (f *Factory) DefaultCheckIn() TimeOfDay  { return f.defaultCheckIn }
func (f *Factory) DefaultCheckOut() TimeOfDay { return f.defaultCheckOut }

func (f *Factory) BuildDetails(in DetailsInput) (Details, error) {
	checkIn, err := parseDate(in.CheckInDate)
	if err != nil {
		return Details{}, err
	}
	checkOut, err := parseDate(in.CheckOutDate)
	if err != nil {
		return Details{}, err
	}

	checkInTime, err := f.timeOrDefault(in.CheckInTime, f.defaultCheckIn)
	if err != nil {
		return Details{}, err
	}
	checkOutTime, err := f.timeOrDefault(in.CheckOutTime, f.defaultCheckOut)
	if err != nil {
		return Details{}, err
	}

	occupancy, err := NewOccupancy(in.NumAdults, in.NumChildren, in.ChildrenAges)
	if err != nil {
		return Details{}, err
	}
	status, err := NewStatus(in.Status)
	if err != nil {
		return Details{}, err
	}
	payment, err := NewPaymentStatus(in.PaymentStatus)
	if err != nil {
		return Details{}, err
	}
	source, err := NewSource(in.Source)
	if err != nil {
		return Details{}, err
	}

	var requests *string
	if in.SpecialRequests != nil && strings.TrimSpace(*in.SpecialRequests) != "" {
		v := strings.TrimSpace(*in.SpecialRequests)
		requests = &v
	}

	return Details{
		GuestID:         in.GuestID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		CheckInTime:     checkInTime,
		CheckOutTime:    checkOutTime,
		Occupancy:       occupancy,
		SpecialRequests: requests,
		Status:          status,
		PaymentStatus:   payment,
		Source:          source,
	}, nil
}

func (f *Factory) timeOrDefault(s string, def TimeOfDay) (TimeOfDay, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return NewTimeOfDay(s)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
