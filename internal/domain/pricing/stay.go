package pricing

import "time"

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = int64(24 * 60 * 60)
)

// Stay is a half-open interval of calendar days: check-in is billed, check-out is not.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) Stay {
	return Stay{checkIn: checkIn, checkOut: checkOut}
}

// ParseStay reads two YYYY-MM-DD dates as UTC midnights.
func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(in, out), nil
}

// Nights is the number of started days between check-in and check-out.
// An inverted or empty stay has zero nights.
func (s Stay) Nights() int {
	if !s.checkOut.After(s.checkIn) {
		return 0
	}
	secs := s.checkOut.Unix() - s.checkIn.Unix()
	n := secs / secondsPerDay
	if secs%secondsPerDay > 0 || s.checkOut.Nanosecond() > s.checkIn.Nanosecond() {
		n++
	}
	return int(n)
}

// ClassCounts splits the billed days, check-in included and check-out excluded,
// into weekdays and weekend days.
func (s Stay) ClassCounts() (weekdays, weekends int) {
	n := s.Nights()
	weekends = n / 7 * 2
	first := s.checkIn.Weekday()
	for i := 0; i < n%7; i++ {
		if isWeekend(time.Weekday((int(first) + i) % 7)) {
			weekends++
		}
	}
	return n - weekends, weekends
}
