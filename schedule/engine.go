package schedule

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/lfmelo/agenda/caldate"
)

// ErrInvalidRange is returned by Expand when the range start falls
// after the range end. The range is never silently swapped.
var ErrInvalidRange = errors.New("range start after range end")

// instanceNamespace seeds deterministic occurrence IDs so repeated
// expansions of the same template over the same day produce the same
// instance identity.
var instanceNamespace = uuid.MustParse("e3b51c9c-20a5-4f7e-9b3a-6f0d8a4c91d2")

// Engine expands event templates into concrete occurrences. It holds
// no state between calls apart from an optional result cache keyed by
// the full input tuple; every call recomputes from the raw templates.
type Engine struct {
	cache  *ExpansionCache
	config EngineConfig
}

// NewEngine creates an engine with the default configuration.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig)
}

// NewEngineWithConfig creates an engine with custom configuration.
func NewEngineWithConfig(config EngineConfig) *Engine {
	var cache *ExpansionCache
	if config.CacheEnabled {
		cache = NewExpansionCache(config.Cache)
	}
	return &Engine{cache: cache, config: config}
}

// Close releases the cache's background resources, if caching is on.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// occurrenceKey is the dedup identity of an occurrence. Two instances
// with the same discipline, day and start time are the same class slot
// and only the first is kept.
type occurrenceKey struct {
	disciplineID string
	date         caldate.Date
	start        caldate.ClockTime
}

// Expand turns templates into dated occurrences within the inclusive
// range [rangeStart, rangeEnd]:
//
//   - every template contributes its origin occurrence when its start
//     date falls inside the range
//   - recurring templates additionally contribute one occurrence per
//     range day whose weekday is in the template's weekday set, except
//     the origin day itself
//   - occurrences sharing (discipline, date, start time) with an
//     earlier one are dropped
//
// The result is ordered by date, then start time, then template ID,
// and is rebuilt from scratch on every call, so repeated calls with
// identical inputs yield identical output.
func (e *Engine) Expand(templates []EventTemplate, rangeStart, rangeEnd caldate.Date) ([]EventInstance, error) {
	if rangeStart.After(rangeEnd) {
		return nil, fmt.Errorf("expand: range %s..%s: %w", rangeStart, rangeEnd, ErrInvalidRange)
	}

	if e.cache != nil {
		if cached, ok := e.cache.Get(templates, rangeStart, rangeEnd); ok {
			return cached, nil
		}
	}

	seen := make(map[occurrenceKey]struct{})
	var out []EventInstance

	for _, t := range templates {
		if !t.StartDate.Before(rangeStart) && !t.StartDate.After(rangeEnd) {
			emit(&out, seen, newInstance(t, t.StartDate, true))
		}

		if !t.recurs() {
			continue
		}

		dates, err := recurrenceDates(t.RecurrenceDays, rangeStart, rangeEnd)
		if err != nil {
			// A malformed rule never invalidates the whole expansion;
			// the template just contributes its origin occurrence.
			slog.Error("expand: building recurrence rule failed",
				"template", t.ID, "days", t.RecurrenceDays, "err", err)
			continue
		}

		for _, d := range dates {
			if d.Equal(t.StartDate) {
				// The origin occurrence is already counted.
				continue
			}
			emit(&out, seen, newInstance(t, d, false))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Date.Compare(out[j].Date); c != 0 {
			return c < 0
		}
		if c := out[i].StartTime.Compare(out[j].StartTime); c != 0 {
			return c < 0
		}
		return out[i].TemplateID < out[j].TemplateID
	})

	if e.cache != nil {
		e.cache.Set(templates, rangeStart, rangeEnd, out)
	}

	return out, nil
}

func emit(out *[]EventInstance, seen map[occurrenceKey]struct{}, inst EventInstance) {
	key := occurrenceKey{
		disciplineID: inst.DisciplineID(),
		date:         inst.Date,
		start:        inst.StartTime,
	}
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}
	*out = append(*out, inst)
}

func newInstance(t EventTemplate, date caldate.Date, origin bool) EventInstance {
	return EventInstance{
		ID:         instanceID(t.ID, date),
		TemplateID: t.ID,
		Title:      t.Title,
		Discipline: t.Discipline,
		Kind:       t.Kind,
		Date:       date,
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
		Location:   t.Location,
		Origin:     origin,
	}
}

// instanceID derives a stable per-occurrence ID from the template ID
// and the occurrence date.
func instanceID(templateID string, date caldate.Date) string {
	return uuid.NewSHA1(instanceNamespace, []byte(templateID+"/"+date.String())).String()
}

// recurrenceDates lists every day in [rangeStart, rangeEnd] whose
// weekday is in the set, using a weekly BYDAY rule anchored at the
// range start.
func recurrenceDates(days WeekdaySet, rangeStart, rangeEnd caldate.Date) ([]caldate.Date, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   rangeStart.Time(),
		Until:     rangeEnd.Time(),
		Byweekday: toRRuleWeekdays(days),
	})
	if err != nil {
		return nil, err
	}

	times := rule.All()
	out := make([]caldate.Date, 0, len(times))
	for _, t := range times {
		out = append(out, caldate.FromTime(t))
	}
	return out, nil
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

func toRRuleWeekdays(days WeekdaySet) []rrule.Weekday {
	var out []rrule.Weekday
	for _, d := range days.Weekdays() {
		out = append(out, rruleWeekdays[d])
	}
	return out
}
