package service

import (
	"context"

	"tasklist/internal/app/guard"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	listRepository ports.ListRepository
}

func NewTaskService(taskRepository ports.TaskRepository, listRepository ports.ListRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, listRepository: listRepository}
}

// ListTasks does not check ownership; the caller authorizes the parent list.
func (s *TaskService) ListTasks(ctx context.Context, listID uint64, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.Task], error) {
	return s.taskRepository.ListByList(ctx, listID, filter, page.Normalize())
}

func (s *TaskService) CreateTask(ctx context.Context, listID uint64, input domain.NewTask) (domain.Task, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	if listID == 0 {
		return domain.Task{}, domain.ErrListNotFound
	}
	if _, err := s.listRepository.GetByID(ctx, listID); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.Create(ctx, listID, input)
}

func (s *TaskService) GetTaskDetails(ctx context.Context, taskID uint64) (domain.Task, error) {
	if taskID == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return s.taskRepository.GetByID(ctx, taskID)
}

// UpdateTask replaces title and description, and the completion state and
// tag when given.
func (s *TaskService) UpdateTask(ctx context.Context, principal domain.Principal, listID, taskID uint64, input domain.TaskReplace) (domain.Task, error) {
	task, err := s.taskInList(ctx, listID, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := guard.AuthorizeTask(principal, task); err != nil {
		return domain.Task{}, err
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.Update(ctx, input.Apply(task))
}

func (s *TaskService) DeleteTask(ctx context.Context, principal domain.Principal, listID, taskID uint64) error {
	task, err := s.taskInList(ctx, listID, taskID)
	if err != nil {
		return err
	}
	if err := guard.AuthorizeTask(principal, task); err != nil {
		return err
	}
	return s.taskRepository.Delete(ctx, taskID)
}

// taskInList treats a task addressed through the wrong list as missing.
func (s *TaskService) taskInList(ctx context.Context, listID, taskID uint64) (domain.Task, error) {
	task, err := s.GetTaskDetails(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.ListID != listID {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

var _ ports.TaskService = (*TaskService)(nil)
