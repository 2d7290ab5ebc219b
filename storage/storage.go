// Package storage defines the persistence collaborator that supplies
// disciplines, event templates and activities to the engine. The
// engine itself performs no I/O; it consumes plain slices returned by
// a Storage implementation.
package storage

import (
	"context"
	"fmt"

	"github.com/lfmelo/agenda/activity"
	"github.com/lfmelo/agenda/schedule"
)

// ErrorType discriminates storage errors.
type ErrorType string

const (
	ErrNotFound      ErrorType = "not_found"
	ErrAlreadyExists ErrorType = "already_exists"
	ErrInvalidInput  ErrorType = "invalid_input"
)

// Error represents a storage-related error.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a storage not-found error.
func IsNotFound(err error) bool {
	storageErr, ok := err.(*Error)
	return ok && storageErr.Type == ErrNotFound
}

// Storage is the interface that must be implemented by persistence
// backends. All returned values are snapshots; mutating them does not
// affect stored state.
type Storage interface {
	// Discipline operations
	ListDisciplines(ctx context.Context) ([]schedule.Discipline, error)
	GetDiscipline(ctx context.Context, id string) (*schedule.Discipline, error)
	CreateDiscipline(ctx context.Context, d *schedule.Discipline) error
	UpdateDiscipline(ctx context.Context, d *schedule.Discipline) error
	DeleteDiscipline(ctx context.Context, id string) error

	// Event template operations
	ListTemplates(ctx context.Context) ([]schedule.EventTemplate, error)
	GetTemplate(ctx context.Context, id string) (*schedule.EventTemplate, error)
	CreateTemplate(ctx context.Context, t *schedule.EventTemplate) error
	UpdateTemplate(ctx context.Context, t *schedule.EventTemplate) error
	DeleteTemplate(ctx context.Context, id string) error

	// Activity operations
	ListActivities(ctx context.Context) ([]activity.Activity, error)
	GetActivity(ctx context.Context, id string) (*activity.Activity, error)
	CreateActivity(ctx context.Context, a *activity.Activity) error
	UpdateActivity(ctx context.Context, a *activity.Activity) error
	DeleteActivity(ctx context.Context, id string) error
}
