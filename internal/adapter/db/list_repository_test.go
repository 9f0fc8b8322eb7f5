package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dbadapter "tasklist/internal/adapter/db"
	"tasklist/internal/core/domain"
)

var (
	sep5  = time.Date(2023, 9, 5, 0, 0, 0, 0, time.UTC)
	sep10 = time.Date(2023, 9, 10, 0, 0, 0, 0, time.UTC)
)

func TestListRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := dbadapter.NewListRepository(newTestDB(t))

	created, err := repo.Create(ctx, 1, sep5, true)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, uint64(1), created.OwnerID)
	require.True(t, created.Date.Equal(sep5))
	require.True(t, created.ImportantFlag)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = repo.GetByID(ctx, created.ID+100)
	require.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestListRepository_ListByOwner_FiltersAndPages(t *testing.T) {
	ctx := context.Background()
	repo := dbadapter.NewListRepository(newTestDB(t))

	var aliceIDs []uint64
	for i := 0; i < 5; i++ {
		date := sep5
		if i%2 == 1 {
			date = sep10
		}
		l, err := repo.Create(ctx, 1, date, i == 0)
		require.NoError(t, err)
		aliceIDs = append(aliceIDs, l.ID)
	}
	_, err := repo.Create(ctx, 2, sep5, true)
	require.NoError(t, err)

	page, err := repo.ListByOwner(ctx, 1, domain.ListFilter{}, domain.PageRequest{Number: 1, Size: 2})
	require.NoError(t, err)
	require.Equal(t, 5, page.Total)
	require.Len(t, page.Items, 2)
	require.Equal(t, aliceIDs[0], page.Items[0].ID)
	require.Equal(t, aliceIDs[1], page.Items[1].ID)

	page, err = repo.ListByOwner(ctx, 1, domain.ListFilter{}, domain.PageRequest{Number: 3, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, aliceIDs[4], page.Items[0].ID)

	page, err = repo.ListByOwner(ctx, 1, domain.ListFilter{Date: &sep10}, domain.PageRequest{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	for _, l := range page.Items {
		require.True(t, l.Date.Equal(sep10))
	}

	important := true
	page, err = repo.ListByOwner(ctx, 1, domain.ListFilter{ImportantFlag: &important}, domain.PageRequest{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, aliceIDs[0], page.Items[0].ID)

	page, err = repo.ListByOwner(ctx, 3, domain.ListFilter{}, domain.PageRequest{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Zero(t, page.Total)
	require.Empty(t, page.Items)
}

func TestListRepository_Summary(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	lists := dbadapter.NewListRepository(db)
	tasks := dbadapter.NewTaskRepository(db)

	l, err := lists.Create(ctx, 1, sep5, false)
	require.NoError(t, err)

	summary, err := lists.Summary(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, l, summary.List)
	require.Zero(t, summary.TotalTasks)
	require.Zero(t, summary.CompletedTasks)

	for i := 0; i < 4; i++ {
		_, err := tasks.Create(ctx, l.ID, domain.NewTask{Title: "t", Description: "d", IsCompleted: i < 3, Tag: domain.TagOther})
		require.NoError(t, err)
	}
	other, err := lists.Create(ctx, 1, sep5, false)
	require.NoError(t, err)
	_, err = tasks.Create(ctx, other.ID, domain.NewTask{Title: "t", Description: "d", IsCompleted: true, Tag: domain.TagOther})
	require.NoError(t, err)

	summary, err = lists.Summary(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, 4, summary.TotalTasks)
	require.Equal(t, 3, summary.CompletedTasks)

	_, err = lists.Summary(ctx, 9999)
	require.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestListRepository_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	repo := dbadapter.NewListRepository(newTestDB(t))

	l, err := repo.Create(ctx, 1, sep5, false)
	require.NoError(t, err)

	important := true
	updated, err := repo.Update(ctx, l.ID, domain.ListPatch{ImportantFlag: &important})
	require.NoError(t, err)
	require.True(t, updated.ImportantFlag)
	require.True(t, updated.Date.Equal(sep5))

	updated, err = repo.Update(ctx, l.ID, domain.ListPatch{Date: &sep10})
	require.NoError(t, err)
	require.True(t, updated.ImportantFlag)
	require.True(t, updated.Date.Equal(sep10))

	_, err = repo.Update(ctx, l.ID+1, domain.ListPatch{Date: &sep10})
	require.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestListRepository_DeleteCascadesToTasks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	lists := dbadapter.NewListRepository(db)
	tasks := dbadapter.NewTaskRepository(db)

	l, err := lists.Create(ctx, 1, sep5, false)
	require.NoError(t, err)
	task, err := tasks.Create(ctx, l.ID, domain.NewTask{Title: "t", Description: "d", Tag: domain.TagHome})
	require.NoError(t, err)

	require.NoError(t, lists.Delete(ctx, l.ID))

	_, err = lists.GetByID(ctx, l.ID)
	require.ErrorIs(t, err, domain.ErrListNotFound)
	_, err = tasks.GetByID(ctx, task.ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	var orphans int
	require.NoError(t, db.Get(&orphans, "SELECT COUNT(*) FROM tasks WHERE list_id = ?", l.ID))
	require.Zero(t, orphans)

	require.ErrorIs(t, lists.Delete(ctx, l.ID), domain.ErrListNotFound)
}
