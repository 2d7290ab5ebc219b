// Package calendar assembles month and week grid views from expanded
// event instances.
package calendar

import "sort"

// DisciplineFilter restricts which disciplines are visible in a grid.
// It is a tagged value: either "all disciplines" or an explicit subset
// of discipline IDs. The zero value behaves like AllDisciplines().
//
// It is immutable; Toggle and Reset return new filters.
type DisciplineFilter struct {
	subset map[string]struct{}
}

// AllDisciplines returns the unrestricted filter.
func AllDisciplines() DisciplineFilter {
	return DisciplineFilter{}
}

// SelectedDisciplines returns a filter restricted to the given IDs.
// With no IDs it is equivalent to AllDisciplines().
func SelectedDisciplines(ids ...string) DisciplineFilter {
	if len(ids) == 0 {
		return AllDisciplines()
	}
	subset := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		subset[id] = struct{}{}
	}
	return DisciplineFilter{subset: subset}
}

// IsAll reports whether the filter is unrestricted.
func (f DisciplineFilter) IsAll() bool {
	return len(f.subset) == 0
}

// Matches reports whether an event with the given discipline ID passes
// the filter. Under a subset filter, events without a discipline (id
// "") are hidden.
func (f DisciplineFilter) Matches(disciplineID string) bool {
	if f.IsAll() {
		return true
	}
	_, ok := f.subset[disciplineID]
	return ok
}

// Toggle flips the given discipline in or out of the selection:
// toggling on the unrestricted filter narrows it to just that
// discipline, and removing the last selected discipline reverts to
// the unrestricted filter.
func (f DisciplineFilter) Toggle(disciplineID string) DisciplineFilter {
	if f.IsAll() {
		return SelectedDisciplines(disciplineID)
	}

	subset := make(map[string]struct{}, len(f.subset)+1)
	for id := range f.subset {
		subset[id] = struct{}{}
	}
	if _, ok := subset[disciplineID]; ok {
		delete(subset, disciplineID)
	} else {
		subset[disciplineID] = struct{}{}
	}

	if len(subset) == 0 {
		return AllDisciplines()
	}
	return DisciplineFilter{subset: subset}
}

// Reset returns the unrestricted filter, regardless of current state.
func (f DisciplineFilter) Reset() DisciplineFilter {
	return AllDisciplines()
}

// IDs returns the selected discipline IDs in sorted order, or nil for
// the unrestricted filter.
func (f DisciplineFilter) IDs() []string {
	if f.IsAll() {
		return nil
	}
	out := make([]string, 0, len(f.subset))
	for id := range f.subset {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
