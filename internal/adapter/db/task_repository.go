package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id,
  t.list_id,
  l.owner_id AS list_owner_id,
  t.title,
  t.description,
  t.is_completed,
  t.tag,
  t.created_at
FROM tasks t
JOIN lists l ON l.id = t.list_id`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64 `db:"id"`
	ListID      uint64 `db:"list_id"`
	ListOwnerID uint64 `db:"list_owner_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	IsCompleted bool   `db:"is_completed"`
	Tag         string `db:"tag"`
	CreatedAt   dbTime `db:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByList(ctx context.Context, listID uint64, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.Task], error) {
	var cond conditions
	cond.add("t.list_id = ?", listID)
	if filter.IsCompleted != nil {
		cond.add("t.is_completed = ?", *filter.IsCompleted)
	}
	if filter.Tag != nil {
		cond.add("t.tag = ?", string(*filter.Tag))
	}

	var total int
	countQuery := r.db.Rebind("SELECT COUNT(*) FROM tasks t" + cond.where())
	if err := r.db.GetContext(ctx, &total, countQuery, cond.args...); err != nil {
		return domain.Page[domain.Task]{}, fmt.Errorf("count tasks: %w", err)
	}

	var rows []taskRow
	selectQuery := r.db.Rebind(selectTasksQuery + cond.where() + " ORDER BY t.id LIMIT ? OFFSET ?")
	args := append(cond.args, page.Size, page.Offset())
	if err := r.db.SelectContext(ctx, &rows, selectQuery, args...); err != nil {
		return domain.Page[domain.Task]{}, fmt.Errorf("select tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return domain.Page[domain.Task]{Items: tasks, Total: total}, nil
}

func (r *TaskRepository) Create(ctx context.Context, listID uint64, input domain.NewTask) (domain.Task, error) {
	id, err := insertReturningID(ctx, r.db,
		"INSERT INTO tasks (list_id, title, description, is_completed, tag) VALUES (?, ?, ?, ?, ?)",
		listID, input.Title, input.Description, input.IsCompleted, string(input.Tag),
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(selectTasksQuery+" WHERE t.id = ?"), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	query := r.db.Rebind("UPDATE tasks SET title = ?, description = ?, is_completed = ?, tag = ? WHERE id = ?")
	if _, err := r.db.ExecContext(ctx, query, task.Title, task.Description, task.IsCompleted, string(task.Tag), task.ID); err != nil {
		return domain.Task{}, fmt.Errorf("update task %d: %w", task.ID, err)
	}
	return r.GetByID(ctx, task.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM tasks WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		ListID:      row.ListID,
		ListOwnerID: row.ListOwnerID,
		Title:       row.Title,
		Description: row.Description,
		IsCompleted: row.IsCompleted,
		Tag:         domain.Tag(row.Tag),
		CreatedAt:   row.CreatedAt.Time,
	}
}
