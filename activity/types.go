// Package activity holds the task model and the search/status
// filtering plus due-date grouping behind the activities screen.
package activity

import (
	"time"

	"github.com/samber/mo"

	"github.com/lfmelo/agenda/caldate"
	"github.com/lfmelo/agenda/schedule"
)

// Kind classifies an activity.
type Kind string

const (
	KindExam       Kind = "exam"
	KindAssignment Kind = "assignment"
	KindStudy      Kind = "study"
	KindSeminar    Kind = "seminar"
	KindOther      Kind = "other"
)

// Priority is the student-assigned urgency of an activity.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status is the progress state of an activity. Completion is derived
// from it; there is no separately tracked boolean to fall out of sync.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// StatusFilter selects activities by completion for the list view.
type StatusFilter string

const (
	FilterAll  StatusFilter = "all"
	FilterTodo StatusFilter = "todo"
	FilterDone StatusFilter = "done"
)

// Activity is a task the student tracks: an assignment, a study
// session, exam prep and so on.
type Activity struct {
	ID          string
	Title       string
	Description mo.Option[string]
	Discipline  mo.Option[schedule.Discipline]
	Kind        Kind

	DueDate mo.Option[caldate.Date]
	DueTime mo.Option[caldate.ClockTime]

	Priority Priority
	Status   Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Completed reports whether the activity is done.
func (a Activity) Completed() bool {
	return a.Status == StatusDone
}

// SetCompleted marks the activity done or, when un-completing a done
// activity, returns it to the todo state.
func (a *Activity) SetCompleted(done bool) {
	if done {
		a.Status = StatusDone
	} else if a.Status == StatusDone {
		a.Status = StatusTodo
	}
}

// Overdue reports whether the activity is not completed and its due
// date has passed relative to today.
func (a Activity) Overdue(today caldate.Date) bool {
	if a.Completed() {
		return false
	}
	due, ok := a.DueDate.Get()
	return ok && due.Before(today)
}
