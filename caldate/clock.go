package caldate

import (
	"fmt"
	"time"
)

// ClockTime is a time of day with minute precision, used for event
// start and end times.
type ClockTime struct {
	Hour   int
	Minute int
}

// NewClock builds a ClockTime without normalization; callers are
// expected to pass values already in range.
func NewClock(hour, minute int) ClockTime {
	return ClockTime{Hour: hour, Minute: minute}
}

// ParseClock reads a time in "15:04" form.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("caldate: invalid clock time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Compare returns -1, 0 or 1 as c is before, equal to or after o.
func (c ClockTime) Compare(o ClockTime) int {
	if c.Hour != o.Hour {
		return sign(c.Hour - o.Hour)
	}
	return sign(c.Minute - o.Minute)
}

// Before reports whether c is strictly earlier in the day than o.
func (c ClockTime) Before(o ClockTime) bool { return c.Compare(o) < 0 }

// On anchors the clock time on the given date, midnight-based UTC.
func (c ClockTime) On(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, 0, 0, time.UTC)
}

// String formats the time as "15:04".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
