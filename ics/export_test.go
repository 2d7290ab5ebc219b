package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfmelo/agenda/caldate"
	"github.com/lfmelo/agenda/schedule"
)

func sampleInstances() []schedule.EventInstance {
	calcI := schedule.Discipline{ID: "1", Name: "Cálculo I", Color: "blue"}
	return []schedule.EventInstance{
		{
			ID:         "inst-1",
			TemplateID: "t1",
			Title:      "Cálculo I",
			Discipline: mo.Some(calcI),
			Kind:       schedule.EventClass,
			Date:       caldate.New(2023, time.October, 2),
			StartTime:  caldate.NewClock(8, 0),
			EndTime:    caldate.NewClock(10, 0),
			Location:   "Sala 302",
			Origin:     true,
		},
		{
			ID:         "inst-2",
			TemplateID: "t2",
			Title:      "ENTREGA Projeto Final",
			Kind:       schedule.EventDelivery,
			Date:       caldate.New(2023, time.October, 5),
			StartTime:  caldate.NewClock(14, 0),
			EndTime:    caldate.NewClock(14, 0),
		},
	}
}

func TestCalendar_Props(t *testing.T) {
	cal := Calendar("Semestre 2023.2", sampleInstances())

	version, err := cal.Props.Text(ical.PropVersion)
	require.NoError(t, err)
	assert.Equal(t, "2.0", version)

	name, err := cal.Props.Text(ical.PropName)
	require.NoError(t, err)
	assert.Equal(t, "Semestre 2023.2", name)

	require.Len(t, cal.Children, 2)

	first := cal.Children[0]
	assert.Equal(t, ical.CompEvent, first.Name)

	uid, err := first.Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, "inst-1", uid)

	summary, err := first.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Cálculo I", summary)

	start, err := first.Props.DateTime(ical.PropDateTimeStart, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.October, 2, 8, 0, 0, 0, time.UTC), start)

	location, err := first.Props.Text(ical.PropLocation)
	require.NoError(t, err)
	assert.Equal(t, "Sala 302", location)

	// The second instance has no location and no discipline.
	second := cal.Children[1]
	assert.Nil(t, second.Props.Get(ical.PropLocation))
	assert.Nil(t, second.Props.Get(ical.PropComment))
}

func TestEncode_RoundTrip(t *testing.T) {
	out, err := Encode(Calendar("Semestre", sampleInstances()))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "BEGIN:VEVENT")

	decoded, err := ical.NewDecoder(strings.NewReader(out)).Decode()
	require.NoError(t, err)
	assert.Len(t, decoded.Events(), 2)
}
