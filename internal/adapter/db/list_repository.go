package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

const listColumns = `l.id, l.owner_id, l.date, l.important_flag, l.created_at`

const listSummaryQuery = `
SELECT
  ` + listColumns + `,
  COUNT(t.id) AS total_tasks,
  COALESCE(SUM(CASE WHEN t.is_completed THEN 1 ELSE 0 END), 0) AS completed_tasks
FROM lists l
LEFT JOIN tasks t ON t.list_id = l.id
WHERE l.id = ?
GROUP BY l.id, l.owner_id, l.date, l.important_flag, l.created_at
`

type ListRepository struct {
	db *sqlx.DB
}

type listRow struct {
	ID            uint64 `db:"id"`
	OwnerID       uint64 `db:"owner_id"`
	Date          dbTime `db:"date"`
	ImportantFlag bool   `db:"important_flag"`
	CreatedAt     dbTime `db:"created_at"`
}

type listSummaryRow struct {
	listRow
	TotalTasks     int `db:"total_tasks"`
	CompletedTasks int `db:"completed_tasks"`
}

var _ ports.ListRepository = (*ListRepository)(nil)

func NewListRepository(db *sqlx.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) ListByOwner(ctx context.Context, ownerID uint64, filter domain.ListFilter, page domain.PageRequest) (domain.Page[domain.List], error) {
	var cond conditions
	cond.add("l.owner_id = ?", ownerID)
	if filter.Date != nil {
		cond.add("l.date = ?", formatDate(*filter.Date))
	}
	if filter.ImportantFlag != nil {
		cond.add("l.important_flag = ?", *filter.ImportantFlag)
	}

	var total int
	countQuery := r.db.Rebind("SELECT COUNT(*) FROM lists l" + cond.where())
	if err := r.db.GetContext(ctx, &total, countQuery, cond.args...); err != nil {
		return domain.Page[domain.List]{}, fmt.Errorf("count lists: %w", err)
	}

	var rows []listRow
	selectQuery := r.db.Rebind("SELECT " + listColumns + " FROM lists l" + cond.where() + " ORDER BY l.id LIMIT ? OFFSET ?")
	args := append(cond.args, page.Size, page.Offset())
	if err := r.db.SelectContext(ctx, &rows, selectQuery, args...); err != nil {
		return domain.Page[domain.List]{}, fmt.Errorf("select lists: %w", err)
	}

	lists := make([]domain.List, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, mapListRowToDomainList(row))
	}
	return domain.Page[domain.List]{Items: lists, Total: total}, nil
}

func (r *ListRepository) Create(ctx context.Context, ownerID uint64, date time.Time, important bool) (domain.List, error) {
	id, err := insertReturningID(ctx, r.db,
		"INSERT INTO lists (owner_id, date, important_flag) VALUES (?, ?, ?)",
		ownerID, formatDate(date), important,
	)
	if err != nil {
		return domain.List{}, fmt.Errorf("insert list: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ListRepository) GetByID(ctx context.Context, id uint64) (domain.List, error) {
	var row listRow
	query := r.db.Rebind("SELECT " + listColumns + " FROM lists l WHERE l.id = ?")
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.List{}, domain.ErrListNotFound
		}
		return domain.List{}, fmt.Errorf("get list %d: %w", id, err)
	}
	return mapListRowToDomainList(row), nil
}

// Summary reads the list and its task counts in one statement.
func (r *ListRepository) Summary(ctx context.Context, id uint64) (domain.ListSummary, error) {
	var row listSummaryRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(listSummaryQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ListSummary{}, domain.ErrListNotFound
		}
		return domain.ListSummary{}, fmt.Errorf("summarize list %d: %w", id, err)
	}

	return domain.ListSummary{
		List:           mapListRowToDomainList(row.listRow),
		TotalTasks:     row.TotalTasks,
		CompletedTasks: row.CompletedTasks,
	}, nil
}

func (r *ListRepository) Update(ctx context.Context, id uint64, patch domain.ListPatch) (domain.List, error) {
	var (
		sets []string
		args []any
	)
	if patch.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, formatDate(*patch.Date))
	}
	if patch.ImportantFlag != nil {
		sets = append(sets, "important_flag = ?")
		args = append(args, *patch.ImportantFlag)
	}

	if len(sets) > 0 {
		query := r.db.Rebind("UPDATE lists SET " + strings.Join(sets, ", ") + " WHERE id = ?")
		if _, err := r.db.ExecContext(ctx, query, append(args, id)...); err != nil {
			return domain.List{}, fmt.Errorf("update list %d: %w", id, err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *ListRepository) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete list %d: %w", id, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM tasks WHERE list_id = ?"), id); err != nil {
		return fmt.Errorf("delete tasks of list %d: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM lists WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete list %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete list %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrListNotFound
	}

	return tx.Commit()
}

func mapListRowToDomainList(row listRow) domain.List {
	return domain.List{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Date:          domain.TruncateDate(row.Date.Time),
		ImportantFlag: row.ImportantFlag,
		CreatedAt:     row.CreatedAt.Time,
	}
}
