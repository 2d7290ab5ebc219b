// memory based implementation for small deployments and testing
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lfmelo/agenda/activity"
	"github.com/lfmelo/agenda/schedule"
	"github.com/lfmelo/agenda/storage"
)

// Store implements storage.Storage using in-memory maps.
type Store struct {
	mu          sync.RWMutex
	disciplines map[string]schedule.Discipline
	templates   map[string]schedule.EventTemplate
	activities  map[string]activity.Activity
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		disciplines: make(map[string]schedule.Discipline),
		templates:   make(map[string]schedule.EventTemplate),
		activities:  make(map[string]activity.Activity),
	}
}

// Discipline operations

func (s *Store) ListDisciplines(_ context.Context) ([]schedule.Discipline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.Discipline, 0, len(s.disciplines))
	for _, d := range s.disciplines {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetDiscipline(_ context.Context, id string) (*schedule.Discipline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.disciplines[id]
	if !ok {
		return nil, &storage.Error{Type: storage.ErrNotFound, Message: "discipline not found"}
	}
	return &d, nil
}

func (s *Store) CreateDiscipline(_ context.Context, d *schedule.Discipline) error {
	if d == nil {
		return &storage.Error{Type: storage.ErrInvalidInput, Message: "discipline is nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = uuid.NewString()
	} else if _, exists := s.disciplines[d.ID]; exists {
		return &storage.Error{Type: storage.ErrAlreadyExists, Message: "discipline already exists"}
	}
	s.disciplines[d.ID] = *d
	return nil
}

func (s *Store) UpdateDiscipline(_ context.Context, d *schedule.Discipline) error {
	if d == nil {
		return &storage.Error{Type: storage.ErrInvalidInput, Message: "discipline is nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.disciplines[d.ID]; !exists {
		return &storage.Error{Type: storage.ErrNotFound, Message: "discipline not found"}
	}
	s.disciplines[d.ID] = *d
	return nil
}

func (s *Store) DeleteDiscipline(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.disciplines[id]; !exists {
		return &storage.Error{Type: storage.ErrNotFound, Message: "discipline not found"}
	}
	delete(s.disciplines, id)
	return nil
}

// Event template operations

func (s *Store) ListTemplates(_ context.Context) ([]schedule.EventTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.EventTemplate, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetTemplate(_ context.Context, id string) (*schedule.EventTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, &storage.Error{Type: storage.ErrNotFound, Message: "event template not found"}
	}
	return &t, nil
}

func (s *Store) CreateTemplate(_ context.Context, t *schedule.EventTemplate) error {
	if t == nil {
		return &storage.Error{Type: storage.ErrInvalidInput, Message: "event template is nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	} else if _, exists := s.templates[t.ID]; exists {
		return &storage.Error{Type: storage.ErrAlreadyExists, Message: "event template already exists"}
	}
	s.templates[t.ID] = *t
	return nil
}

func (s *Store) UpdateTemplate(_ context.Context, t *schedule.EventTemplate) error {
	if t == nil {
		return &storage.Error{Type: storage.ErrInvalidInput, Message: "event template is nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.templates[t.ID]; !exists {
		return &storage.Error{Type: storage.ErrNotFound, Message: "event template not found"}
	}
	s.templates[t.ID] = *t
	return nil
}

func (s *Store) DeleteTemplate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.templates[id]; !exists {
		return &storage.Error{Type: storage.ErrNotFound, Message: "event template not found"}
	}
	delete(s.templates, id)
	return nil
}

// Activity operations

func (s *Store) ListActivities(_ context.Context) ([]activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]activity.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetActivity(_ context.Context, id string) (*activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[id]
	if !ok {
		return nil, &storage.Error{Type: storage.ErrNotFound, Message: "activity not found"}
	}
	return &a, nil
}

func (s *Store) CreateActivity(_ context.Context, a *activity.Activity) error {
	if a == nil {
		return &storage.Error{Type: storage.ErrInvalidInput, Message: "activity is nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	} else if _, exists := s.activities[a.ID]; exists {
		return &storage.Error{Type: storage.ErrAlreadyExists, Message: "activity already exists"}
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	s.activities[a.ID] = *a
	return nil
}

func (s *Store) UpdateActivity(_ context.Context, a *activity.Activity) error {
	if a == nil {
		return &storage.Error{Type: storage.ErrInvalidInput, Message: "activity is nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.activities[a.ID]; !exists {
		return &storage.Error{Type: storage.ErrNotFound, Message: "activity not found"}
	}
	a.UpdatedAt = time.Now()
	s.activities[a.ID] = *a
	return nil
}

func (s *Store) DeleteActivity(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.activities[id]; !exists {
		return &storage.Error{Type: storage.ErrNotFound, Message: "activity not found"}
	}
	delete(s.activities, id)
	return nil
}
