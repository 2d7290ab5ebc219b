package storage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lfmelo/agenda/activity"
	"github.com/lfmelo/agenda/schedule"
)

// MockStorage implements the Storage interface for testing
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) ListDisciplines(ctx context.Context) ([]schedule.Discipline, error) {
	args := m.Called(ctx)
	return args.Get(0).([]schedule.Discipline), args.Error(1)
}

func (m *MockStorage) GetDiscipline(ctx context.Context, id string) (*schedule.Discipline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.Discipline), args.Error(1)
}

func (m *MockStorage) CreateDiscipline(ctx context.Context, d *schedule.Discipline) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockStorage) UpdateDiscipline(ctx context.Context, d *schedule.Discipline) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockStorage) DeleteDiscipline(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) ListTemplates(ctx context.Context) ([]schedule.EventTemplate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]schedule.EventTemplate), args.Error(1)
}

func (m *MockStorage) GetTemplate(ctx context.Context, id string) (*schedule.EventTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.EventTemplate), args.Error(1)
}

func (m *MockStorage) CreateTemplate(ctx context.Context, t *schedule.EventTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockStorage) UpdateTemplate(ctx context.Context, t *schedule.EventTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockStorage) DeleteTemplate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) ListActivities(ctx context.Context) ([]activity.Activity, error) {
	args := m.Called(ctx)
	return args.Get(0).([]activity.Activity), args.Error(1)
}

func (m *MockStorage) GetActivity(ctx context.Context, id string) (*activity.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*activity.Activity), args.Error(1)
}

func (m *MockStorage) CreateActivity(ctx context.Context, a *activity.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockStorage) UpdateActivity(ctx context.Context, a *activity.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockStorage) DeleteActivity(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
