package reservation

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const codeSuffixLen = 5

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewCode builds a human-readable reservation code such as RES-LRX4Z1K0-8F2QA.
func NewCode(now time.Time) string {
	var b strings.Builder
	b.WriteString("RES-")
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	b.WriteByte('-')
	for range codeSuffixLen {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return strings.ToUpper(b.String())
}

// TimeOfDay is a wall-clock time stored with second precision.
type TimeOfDay struct {
	seconds int
}

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

func NewTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{seconds: t.Hour()*3600 + t.Minute()*60 + t.Second()}, nil
		}
	}
	return TimeOfDay{}, ErrInvalidTimeOfDay
}

func TimeOfDayFromDuration(d time.Duration) TimeOfDay {
	return TimeOfDay{seconds: int(d / time.Second)}
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.seconds) * time.Second
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.seconds/3600, (t.seconds%3600)/60, t.seconds%60)
}

type Occupancy struct {
	adults       int
	children     int
	childrenAges string
}

func NewOccupancy(adults, children int, childrenAges string) (Occupancy, error) {
	if adults < 1 || children < 0 {
		return Occupancy{}, ErrInvalidOccupancy
	}
	return Occupancy{
		adults:       adults,
		children:     children,
		childrenAges: strings.TrimSpace(childrenAges),
	}, nil
}

func (o Occupancy) Adults() int          { return o.adults }
func (o Occupancy) Children() int        { return o.children }
func (o Occupancy) ChildrenAges() string { return o.childrenAges }
