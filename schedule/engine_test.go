package schedule

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfmelo/agenda/caldate"
)

var calcI = Discipline{ID: "1", Name: "Cálculo I", Color: "blue"}

func classTemplate(id string, disc Discipline, start caldate.Date, startHour int, days ...time.Weekday) EventTemplate {
	return EventTemplate{
		ID:             id,
		Title:          disc.Name,
		Discipline:     mo.Some(disc),
		Kind:           EventClass,
		StartDate:      start,
		EndDate:        start,
		StartTime:      caldate.NewClock(startHour, 0),
		EndTime:        caldate.NewClock(startHour+2, 0),
		Location:       "Sala 302",
		Recurring:      true,
		RecurrenceDays: NewWeekdaySet(days...),
	}
}

func TestEngine_Expand_InvalidRange(t *testing.T) {
	engine := NewEngineWithConfig(DisabledCacheConfig)

	_, err := engine.Expand(nil,
		caldate.New(2023, time.October, 31), caldate.New(2023, time.October, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestEngine_Expand_MonWedFriOctober(t *testing.T) {
	engine := NewEngineWithConfig(DisabledCacheConfig)

	// Recurs Mon/Wed/Fri at 08:00 starting Monday October 2 2023.
	tmpl := classTemplate("t1", calcI, caldate.New(2023, time.October, 2), 8,
		time.Monday, time.Wednesday, time.Friday)

	instances, err := engine.Expand([]EventTemplate{tmpl},
		caldate.New(2023, time.October, 1), caldate.New(2023, time.October, 31))
	require.NoError(t, err)

	// October 2023 has 13 Mon/Wed/Fri days (5 Mondays, 4 Wednesdays,
	// 4 Fridays): the origin on October 2 plus 12 derived occurrences.
	assert.Len(t, instances, 13)

	origins := 0
	for _, inst := range instances {
		assert.True(t, tmpl.RecurrenceDays.Contains(inst.Date.Weekday()),
			"instance on %s falls outside the weekday set", inst.Date)
		assert.Equal(t, "t1", inst.TemplateID)
		assert.Equal(t, caldate.NewClock(8, 0), inst.StartTime)
		if inst.Origin {
			origins++
			assert.Equal(t, caldate.New(2023, time.October, 2), inst.Date)
		}
	}
	assert.Equal(t, 1, origins, "exactly one origin occurrence expected")
}

func TestEngine_Expand_NonRecurring(t *testing.T) {
	engine := NewEngineWithConfig(DisabledCacheConfig)

	exam := EventTemplate{
		ID:         "exam1",
		Title:      "Prova 1: Cálculo",
		Discipline: mo.Some(calcI),
		Kind:       EventExam,
		StartDate:  caldate.New(2023, time.October, 11),
		EndDate:    caldate.New(2023, time.October, 11),
		StartTime:  caldate.NewClock(8, 0),
		EndTime:    caldate.NewClock(10, 0),
	}

	tests := []struct {
		name       string
		rangeStart caldate.Date
		rangeEnd   caldate.Date
		expected   int
	}{
		{
			name:       "start date inside range",
			rangeStart: caldate.New(2023, time.October, 1),
			rangeEnd:   caldate.New(2023, time.October, 31),
			expected:   1,
		},
		{
			name:       "start date outside range",
			rangeStart: caldate.New(2023, time.November, 1),
			rangeEnd:   caldate.New(2023, time.November, 30),
			expected:   0,
		},
		{
			name:       "single-day range on the start date",
			rangeStart: caldate.New(2023, time.October, 11),
			rangeEnd:   caldate.New(2023, time.October, 11),
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instances, err := engine.Expand([]EventTemplate{exam}, tt.rangeStart, tt.rangeEnd)
			require.NoError(t, err)
			assert.Len(t, instances, tt.expected)
		})
	}
}

func TestEngine_Expand_RecurringWithEmptyWeekdaySet(t *testing.T) {
	engine := NewEngineWithConfig(DisabledCacheConfig)

	// Recurring flag set but no weekdays: behaves as non-recurring.
	tmpl := EventTemplate{
		ID:        "t1",
		Title:     "Órfã",
		Kind:      EventOther,
		StartDate: caldate.New(2023, time.October, 5),
		StartTime: caldate.NewClock(14, 0),
		Recurring: true,
	}

	instances, err := engine.Expand([]EventTemplate{tmpl},
		caldate.New(2023, time.October, 1), caldate.New(2023, time.October, 31))
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.True(t, instances[0].Origin)
	assert.Equal(t, caldate.New(2023, time.October, 5), instances[0].Date)
}

func TestEngine_Expand_DedupSameSlot(t *testing.T) {
	engine := NewEngineWithConfig(DisabledCacheConfig)

	// Two templates of the same discipline occupying the same weekday
	// slot at the same hour: the second one's clashes are dropped.
	a := classTemplate("a", calcI, caldate.New(2023, time.October, 2), 8, time.Monday)
	b := classTemplate("b", calcI, caldate.New(2023, time.October, 9), 8, time.Monday)

	instances, err := engine.Expand([]EventTemplate{a, b},
		caldate.New(2023, time.October, 1), caldate.New(2023, time.October, 31))
	require.NoError(t, err)

	// 5 Mondays in October 2023, one instance per slot.
	assert.Len(t, instances, 5)

	seen := map[caldate.Date]string{}
	for _, inst := range instances {
		_, dup := seen[inst.Date]
		assert.False(t, dup, "duplicate slot on %s", inst.Date)
		seen[inst.Date] = inst.TemplateID
	}
	// Template a appears first, so its derived occurrences win every
	// Monday; b's origin on October 9 is shadowed.
	assert.Equal(t, "a", seen[caldate.New(2023, time.October, 9)])
}

func TestEngine_Expand_Idempotent(t *testing.T) {
	templates := []EventTemplate{
		classTemplate("t1", calcI, caldate.New(2023, time.October, 2), 8,
			time.Monday, time.Wednesday, time.Friday),
		classTemplate("t2", Discipline{ID: "4", Name: "Algoritmos", Color: "emerald"},
			caldate.New(2023, time.October, 2), 14, time.Monday, time.Wednesday, time.Friday),
	}
	rangeStart := caldate.New(2023, time.October, 1)
	rangeEnd := caldate.New(2023, time.October, 31)

	for _, config := range []EngineConfig{DisabledCacheConfig, DefaultEngineConfig} {
		engine := NewEngineWithConfig(config)

		first, err := engine.Expand(templates, rangeStart, rangeEnd)
		require.NoError(t, err)
		second, err := engine.Expand(templates, rangeStart, rangeEnd)
		require.NoError(t, err)

		assert.Equal(t, first, second, "repeated expansion must not accumulate")
		engine.Close()
	}
}

func TestEngine_Expand_Ordering(t *testing.T) {
	engine := NewEngineWithConfig(DisabledCacheConfig)

	fisica := Discipline{ID: "3", Name: "Física Geral", Color: "violet"}
	templates := []EventTemplate{
		classTemplate("b-later", fisica, caldate.New(2023, time.October, 4), 16, time.Wednesday),
		classTemplate("a-early", calcI, caldate.New(2023, time.October, 2), 8,
			time.Monday, time.Wednesday),
	}

	instances, err := engine.Expand(templates,
		caldate.New(2023, time.October, 1), caldate.New(2023, time.October, 14))
	require.NoError(t, err)
	require.NotEmpty(t, instances)

	for i := 1; i < len(instances); i++ {
		prev, cur := instances[i-1], instances[i]
		c := prev.Date.Compare(cur.Date)
		require.LessOrEqual(t, c, 0, "dates out of order at %d", i)
		if c == 0 {
			s := prev.StartTime.Compare(cur.StartTime)
			require.LessOrEqual(t, s, 0, "start times out of order at %d", i)
			if s == 0 {
				require.LessOrEqual(t, prev.TemplateID, cur.TemplateID)
			}
		}
	}
}

func TestEngine_Expand_DeterministicInstanceIDs(t *testing.T) {
	engine := NewEngineWithConfig(DisabledCacheConfig)
	tmpl := classTemplate("t1", calcI, caldate.New(2023, time.October, 2), 8, time.Monday)

	first, err := engine.Expand([]EventTemplate{tmpl},
		caldate.New(2023, time.October, 1), caldate.New(2023, time.October, 31))
	require.NoError(t, err)
	second, err := engine.Expand([]EventTemplate{tmpl},
		caldate.New(2023, time.October, 1), caldate.New(2023, time.October, 31))
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestWeekdaySet(t *testing.T) {
	s := NewWeekdaySet(time.Monday, time.Wednesday, time.Friday)
	assert.True(t, s.Contains(time.Monday))
	assert.False(t, s.Contains(time.Tuesday))
	assert.False(t, s.IsEmpty())
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, s.Weekdays())
	assert.Equal(t, "Mon,Wed,Fri", s.String())

	var empty WeekdaySet
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "none", empty.String())
}
