package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tasklist/internal/core/domain"
)

type listServiceMock struct {
	mock.Mock
}

func (m *listServiceMock) ListLists(ctx context.Context, principal domain.Principal, filter domain.ListFilter, page domain.PageRequest) (domain.Page[domain.List], error) {
	args := m.Called(ctx, principal, filter, page)
	return args.Get(0).(domain.Page[domain.List]), args.Error(1)
}

func (m *listServiceMock) CreateList(ctx context.Context, principal domain.Principal, input domain.NewList) (domain.List, error) {
	args := m.Called(ctx, principal, input)
	return args.Get(0).(domain.List), args.Error(1)
}

func (m *listServiceMock) GetList(ctx context.Context, listID uint64) (domain.List, error) {
	args := m.Called(ctx, listID)
	return args.Get(0).(domain.List), args.Error(1)
}

func (m *listServiceMock) GetListDetails(ctx context.Context, listID uint64) (domain.ListSummary, error) {
	args := m.Called(ctx, listID)
	return args.Get(0).(domain.ListSummary), args.Error(1)
}

func (m *listServiceMock) UpdateList(ctx context.Context, principal domain.Principal, listID uint64, patch domain.ListPatch) (domain.List, error) {
	args := m.Called(ctx, principal, listID, patch)
	return args.Get(0).(domain.List), args.Error(1)
}

func (m *listServiceMock) DeleteList(ctx context.Context, principal domain.Principal, listID uint64) error {
	args := m.Called(ctx, principal, listID)
	return args.Error(0)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, listID uint64, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.Task], error) {
	args := m.Called(ctx, listID, filter, page)
	return args.Get(0).(domain.Page[domain.Task]), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, listID uint64, input domain.NewTask) (domain.Task, error) {
	args := m.Called(ctx, listID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTaskDetails(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, principal domain.Principal, listID, taskID uint64, input domain.TaskReplace) (domain.Task, error) {
	args := m.Called(ctx, principal, listID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, principal domain.Principal, listID, taskID uint64) error {
	args := m.Called(ctx, principal, listID, taskID)
	return args.Error(0)
}
