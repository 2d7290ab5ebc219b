// Package schedule holds the academic event model and the recurrence
// engine that expands weekly class templates into dated occurrences.
package schedule

import (
	"strings"
	"time"

	"github.com/samber/mo"

	"github.com/lfmelo/agenda/caldate"
)

// EventKind classifies a calendar event.
type EventKind string

const (
	EventClass    EventKind = "class"
	EventExam     EventKind = "exam"
	EventDelivery EventKind = "delivery"
	EventOther    EventKind = "other"
)

// Discipline is a course the student is enrolled in. Color is a
// presentation token ("blue", "amber", ...) and carries no meaning
// inside the engine.
type Discipline struct {
	ID    string
	Name  string
	Color string
}

// WeekdaySet is a set of weekdays a template recurs on, stored as a
// bitmask indexed by time.Weekday.
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// Contains reports whether d is in the set.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// IsEmpty reports whether the set has no weekdays.
func (s WeekdaySet) IsEmpty() bool { return s == 0 }

// Weekdays returns the members in Sunday-first order.
func (s WeekdaySet) Weekdays() []time.Weekday {
	var out []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s WeekdaySet) String() string {
	if s.IsEmpty() {
		return "none"
	}
	var names []string
	for _, d := range s.Weekdays() {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ",")
}

// EventTemplate is an event definition as stored: either a one-off
// event, or a weekly-recurring one described by a weekday set. A
// template with Recurring set but an empty weekday set behaves as
// non-recurring.
type EventTemplate struct {
	ID         string
	Title      string
	Discipline mo.Option[Discipline]
	Kind       EventKind

	StartDate caldate.Date
	EndDate   caldate.Date
	StartTime caldate.ClockTime
	EndTime   caldate.ClockTime
	Location  string

	Recurring      bool
	RecurrenceDays WeekdaySet
}

// recurs reports whether expansion should derive extra occurrences.
func (t EventTemplate) recurs() bool {
	return t.Recurring && !t.RecurrenceDays.IsEmpty()
}

// disciplineID returns the referenced discipline's ID, or "" when the
// template has none.
func (t EventTemplate) disciplineID() string {
	return t.Discipline.OrElse(Discipline{}).ID
}

// EventInstance is one concrete dated occurrence of a template. The
// occurrence coinciding with the template's own start date is the
// origin occurrence and carries Origin = true.
type EventInstance struct {
	ID         string
	TemplateID string
	Title      string
	Discipline mo.Option[Discipline]
	Kind       EventKind

	Date      caldate.Date
	StartTime caldate.ClockTime
	EndTime   caldate.ClockTime
	Location  string

	Origin bool
}

// DisciplineID returns the referenced discipline's ID, or "" when the
// instance has none.
func (i EventInstance) DisciplineID() string {
	return i.Discipline.OrElse(Discipline{}).ID
}
