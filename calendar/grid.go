package calendar

import (
	"github.com/samber/mo"

	"github.com/lfmelo/agenda/caldate"
	"github.com/lfmelo/agenda/schedule"
)

// MonthGridCells is the fixed size of a month grid: 6 weeks of 7 days,
// enough to hold any month at any weekday alignment.
const MonthGridCells = 42

// Default hour bounds for the week view, inclusive.
const (
	DefaultWeekFirstHour = 7
	DefaultWeekLastHour  = 19
)

// DayCell is one cell of the month grid.
type DayCell struct {
	Date           caldate.Date
	InCurrentMonth bool
	Events         []schedule.EventInstance
}

// DayColumn is one weekday column of the week grid.
type DayColumn struct {
	Date   caldate.Date
	Events []schedule.EventInstance
}

// WeekSlot is one hourly row of the week grid: the event starting at
// that hour in each of the seven weekday columns, if any.
type WeekSlot struct {
	Hour  caldate.ClockTime
	Slots [7]mo.Option[schedule.EventInstance]
}

// WeekGrid is the week view: seven day columns and one row per visible
// hour.
type WeekGrid struct {
	Days  [7]DayColumn
	Hours []WeekSlot
}

// Builder assembles grid views. The zero value is not usable; obtain
// one from NewBuilder or NewBuilderWithHours.
type Builder struct {
	firstHour int
	lastHour  int
}

// NewBuilder creates a builder with the default 07:00–19:00 week view.
func NewBuilder() *Builder {
	return NewBuilderWithHours(DefaultWeekFirstHour, DefaultWeekLastHour)
}

// NewBuilderWithHours creates a builder with custom inclusive hour
// bounds for the week view. Bounds outside 0–23 or inverted bounds
// fall back to the defaults.
func NewBuilderWithHours(firstHour, lastHour int) *Builder {
	if firstHour < 0 || lastHour > 23 || firstHour > lastHour {
		firstHour, lastHour = DefaultWeekFirstHour, DefaultWeekLastHour
	}
	return &Builder{firstHour: firstHour, lastHour: lastHour}
}

// BuildMonthGrid returns the 42-cell grid for the month containing
// referenceDate: leading cells from the previous month to align the
// 1st on its weekday column (Sunday first), every day of the month,
// and trailing cells from the next month up to 42. Each cell carries
// the events dated that day that pass the filter, in input order.
func (b *Builder) BuildMonthGrid(referenceDate caldate.Date, events []schedule.EventInstance, filter DisciplineFilter) []DayCell {
	first := referenceDate.FirstOfMonth()
	last := referenceDate.LastOfMonth()

	cells := make([]DayCell, 0, MonthGridCells)

	for i := int(first.Weekday()); i > 0; i-- {
		d := first.AddDays(-i)
		cells = append(cells, DayCell{Date: d, Events: eventsOn(d, events, filter)})
	}

	for d := first; !d.After(last); d = d.AddDays(1) {
		cells = append(cells, DayCell{Date: d, InCurrentMonth: true, Events: eventsOn(d, events, filter)})
	}

	for d := last.AddDays(1); len(cells) < MonthGridCells; d = d.AddDays(1) {
		cells = append(cells, DayCell{Date: d, Events: eventsOn(d, events, filter)})
	}

	return cells
}

// BuildWeekGrid returns the week view for the Sunday-start week
// containing referenceDate. Each hourly row holds at most one event
// per weekday column: the first filtered event of that day whose start
// time equals the row's hour; later claimants of the same slot are
// dropped.
func (b *Builder) BuildWeekGrid(referenceDate caldate.Date, events []schedule.EventInstance, filter DisciplineFilter) WeekGrid {
	start := referenceDate.StartOfWeek()

	var grid WeekGrid
	for i := range grid.Days {
		d := start.AddDays(i)
		grid.Days[i] = DayColumn{Date: d, Events: eventsOn(d, events, filter)}
	}

	grid.Hours = make([]WeekSlot, 0, b.lastHour-b.firstHour+1)
	for hour := b.firstHour; hour <= b.lastHour; hour++ {
		slot := WeekSlot{Hour: caldate.NewClock(hour, 0)}
		for i, day := range grid.Days {
			slot.Slots[i] = eventAtHour(day.Events, slot.Hour)
		}
		grid.Hours = append(grid.Hours, slot)
	}

	return grid
}

func eventsOn(d caldate.Date, events []schedule.EventInstance, filter DisciplineFilter) []schedule.EventInstance {
	var out []schedule.EventInstance
	for _, ev := range events {
		if ev.Date.Equal(d) && filter.Matches(ev.DisciplineID()) {
			out = append(out, ev)
		}
	}
	return out
}

func eventAtHour(events []schedule.EventInstance, hour caldate.ClockTime) mo.Option[schedule.EventInstance] {
	for _, ev := range events {
		if ev.StartTime == hour {
			return mo.Some(ev)
		}
	}
	return mo.None[schedule.EventInstance]()
}
