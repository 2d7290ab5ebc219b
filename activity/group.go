package activity

import (
	"strings"

	"github.com/lfmelo/agenda/caldate"
	"github.com/lfmelo/agenda/schedule"
)

// Counts summarizes the whole activity collection, independent of any
// search or status filter applied to the visible list.
type Counts struct {
	Total int
	Todo  int
	Done  int
}

// Groups partitions a filtered activity list into the four mutually
// exclusive due-date buckets of the list view. Every completed
// activity lands in Completed; every other one lands in exactly one of
// the remaining three.
type Groups struct {
	DueToday    []Activity
	DueNextWeek []Activity
	Completed   []Activity
	Other       []Activity

	Counts Counts
}

// FilterAndGroup applies the text query and status filter, then
// partitions the survivors by due date relative to today:
//
//   - completed → Completed, unconditionally
//   - no due date, past-due, or more than a week out → Other
//   - due exactly today → DueToday
//   - due within the next seven days → DueNextWeek
//
// The query matches title, discipline name and description, case-
// insensitively. Counts always describe the full unfiltered input.
// The input slice is never mutated.
func FilterAndGroup(activities []Activity, query string, status StatusFilter, today caldate.Date) Groups {
	groups := Groups{Counts: countAll(activities)}
	nextWeek := today.AddDays(7)

	query = strings.ToLower(strings.TrimSpace(query))

	for _, a := range activities {
		if query != "" && !matchesQuery(a, query) {
			continue
		}
		switch status {
		case FilterTodo:
			if a.Completed() {
				continue
			}
		case FilterDone:
			if !a.Completed() {
				continue
			}
		}

		switch {
		case a.Completed():
			groups.Completed = append(groups.Completed, a)
		default:
			due, ok := a.DueDate.Get()
			switch {
			case !ok:
				groups.Other = append(groups.Other, a)
			case due.Equal(today):
				groups.DueToday = append(groups.DueToday, a)
			case due.After(today) && !due.After(nextWeek):
				groups.DueNextWeek = append(groups.DueNextWeek, a)
			default:
				// Past-due or beyond a week out.
				groups.Other = append(groups.Other, a)
			}
		}
	}

	return groups
}

func countAll(activities []Activity) Counts {
	counts := Counts{Total: len(activities)}
	for _, a := range activities {
		if a.Completed() {
			counts.Done++
		} else {
			counts.Todo++
		}
	}
	return counts
}

func matchesQuery(a Activity, query string) bool {
	if strings.Contains(strings.ToLower(a.Title), query) {
		return true
	}
	name := a.Discipline.OrElse(schedule.Discipline{}).Name
	if strings.Contains(strings.ToLower(name), query) {
		return true
	}
	return strings.Contains(strings.ToLower(a.Description.OrElse("")), query)
}
