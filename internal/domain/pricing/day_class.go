package pricing

import (
	"errors"
	"time"
)

var ErrInvalidDayClass = errors.New("invalid day classification")

// DayClass is the rate column a calendar day is billed against.
type DayClass string

const (
	Weekday DayClass = "weekdays"
	Weekend DayClass = "weekends"
)

func (c DayClass) String() string {
	return string(c)
}

func (c DayClass) IsValid() bool {
	switch c {
	case Weekday, Weekend:
		return true
	default:
		return false
	}
}

func NewDayClass(s string) (DayClass, error) {
	c := DayClass(s)
	if !c.IsValid() {
		return "", ErrInvalidDayClass
	}
	return c, nil
}

// Classify returns Weekend for Saturday and Sunday, Weekday otherwise.
func Classify(day time.Time) DayClass {
	if isWeekend(day.Weekday()) {
		return Weekend
	}
	return Weekday
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
