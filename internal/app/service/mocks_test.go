package service_test

import (
	"context"
	"time"

	"tasklist/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type listRepositoryMock struct {
	mock.Mock
}

func (m *listRepositoryMock) ListByOwner(ctx context.Context, ownerID uint64, filter domain.ListFilter, page domain.PageRequest) (domain.Page[domain.List], error) {
	args := m.Called(ctx, ownerID, filter, page)
	return args.Get(0).(domain.Page[domain.List]), args.Error(1)
}

func (m *listRepositoryMock) Create(ctx context.Context, ownerID uint64, date time.Time, important bool) (domain.List, error) {
	args := m.Called(ctx, ownerID, date, important)
	return args.Get(0).(domain.List), args.Error(1)
}

func (m *listRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.List, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.List), args.Error(1)
}

func (m *listRepositoryMock) Summary(ctx context.Context, id uint64) (domain.ListSummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ListSummary), args.Error(1)
}

func (m *listRepositoryMock) Update(ctx context.Context, id uint64, patch domain.ListPatch) (domain.List, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.List), args.Error(1)
}

func (m *listRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListByList(ctx context.Context, listID uint64, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.Task], error) {
	args := m.Called(ctx, listID, filter, page)
	return args.Get(0).(domain.Page[domain.Task]), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, listID uint64, input domain.NewTask) (domain.Task, error) {
	args := m.Called(ctx, listID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}
