// Package ics exports expanded event instances as an iCalendar
// document so a semester schedule can be imported into an external
// calendar application.
package ics

import (
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/lfmelo/agenda/schedule"
)

const prodID = "-//agenda//Semester Schedule//EN"

// Calendar builds a VCALENDAR holding one VEVENT per instance. The
// instances' day + clock times are rendered as UTC date-times; the
// engine is timezone-agnostic, so the exported times carry the same
// wall-clock values the grids display.
func Calendar(name string, instances []schedule.EventInstance) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	if name != "" {
		cal.Props.SetText(ical.PropName, name)
	}

	now := time.Now().UTC()
	for _, inst := range instances {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, inst.ID)
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetText(ical.PropSummary, inst.Title)
		event.Props.SetDateTime(ical.PropDateTimeStart, inst.StartTime.On(inst.Date))
		event.Props.SetDateTime(ical.PropDateTimeEnd, inst.EndTime.On(inst.Date))
		event.Props.SetText(ical.PropCategories, string(inst.Kind))
		if inst.Location != "" {
			event.Props.SetText(ical.PropLocation, inst.Location)
		}
		if disc, ok := inst.Discipline.Get(); ok {
			event.Props.SetText(ical.PropComment, disc.Name)
		}
		cal.Children = append(cal.Children, event.Component)
	}

	return cal
}

// Encode renders the calendar in iCalendar wire format.
func Encode(cal *ical.Calendar) (string, error) {
	var buf strings.Builder
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", err
	}
	return buf.String(), nil
}
