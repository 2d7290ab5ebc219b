package caldate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Weekday(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected time.Weekday
	}{
		{"October 1 2023 is a Sunday", New(2023, time.October, 1), time.Sunday},
		{"October 2 2023 is a Monday", New(2023, time.October, 2), time.Monday},
		{"leap day 2024", New(2024, time.February, 29), time.Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.date.Weekday())
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		days     int
		expected Date
	}{
		{"within month", New(2023, time.October, 10), 5, New(2023, time.October, 15)},
		{"across month boundary", New(2023, time.October, 30), 3, New(2023, time.November, 2)},
		{"across year boundary", New(2023, time.December, 31), 1, New(2024, time.January, 1)},
		{"backwards into previous month", New(2023, time.October, 1), -1, New(2023, time.September, 30)},
		{"leap February", New(2024, time.February, 28), 1, New(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.date.AddDays(tt.days))
		})
	}
}

func TestDate_MonthBounds(t *testing.T) {
	d := New(2023, time.October, 17)
	assert.Equal(t, New(2023, time.October, 1), d.FirstOfMonth())
	assert.Equal(t, New(2023, time.October, 31), d.LastOfMonth())
	assert.Equal(t, 31, d.DaysInMonth())

	feb := New(2024, time.February, 10)
	assert.Equal(t, 29, feb.DaysInMonth())
	assert.Equal(t, 28, New(2023, time.February, 10).DaysInMonth())
}

func TestDate_StartOfWeek(t *testing.T) {
	// Wednesday October 4 2023 belongs to the week starting Sunday October 1.
	assert.Equal(t, New(2023, time.October, 1), New(2023, time.October, 4).StartOfWeek())
	// A Sunday starts its own week.
	assert.Equal(t, New(2023, time.October, 1), New(2023, time.October, 1).StartOfWeek())
}

func TestDate_Compare(t *testing.T) {
	a := New(2023, time.October, 2)
	b := New(2023, time.October, 3)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(New(2023, time.October, 2)))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, New(2022, time.December, 31).Compare(a))
}

func TestParse(t *testing.T) {
	d, err := Parse("2023-10-02")
	require.NoError(t, err)
	assert.Equal(t, New(2023, time.October, 2), d)

	_, err = Parse("02/10/2023")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("08:00")
	require.NoError(t, err)
	assert.Equal(t, NewClock(8, 0), c)
	assert.Equal(t, "08:00", c.String())

	_, err = ParseClock("8am")
	assert.Error(t, err)
}

func TestClockTime_Compare(t *testing.T) {
	assert.True(t, NewClock(8, 0).Before(NewClock(8, 30)))
	assert.True(t, NewClock(8, 30).Before(NewClock(9, 0)))
	assert.Equal(t, 0, NewClock(14, 0).Compare(NewClock(14, 0)))
}

func TestClockTime_On(t *testing.T) {
	got := NewClock(8, 30).On(New(2023, time.October, 2))
	assert.Equal(t, time.Date(2023, time.October, 2, 8, 30, 0, 0, time.UTC), got)
}
