package ports

import (
	"context"

	"tasklist/internal/core/domain"
)

type TaskRepository interface {
	ListByList(ctx context.Context, listID uint64, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.Task], error)
	Create(ctx context.Context, listID uint64, input domain.NewTask) (domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, listID uint64, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.Task], error)
	CreateTask(ctx context.Context, listID uint64, input domain.NewTask) (domain.Task, error)
	GetTaskDetails(ctx context.Context, taskID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, principal domain.Principal, listID, taskID uint64, input domain.TaskReplace) (domain.Task, error)
	DeleteTask(ctx context.Context, principal domain.Principal, listID, taskID uint64) error
}
