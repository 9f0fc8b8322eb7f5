package ports

import (
	"context"
	"time"

	"tasklist/internal/core/domain"
)

type ListRepository interface {
	ListByOwner(ctx context.Context, ownerID uint64, filter domain.ListFilter, page domain.PageRequest) (domain.Page[domain.List], error)
	Create(ctx context.Context, ownerID uint64, date time.Time, important bool) (domain.List, error)
	GetByID(ctx context.Context, id uint64) (domain.List, error)
	Summary(ctx context.Context, id uint64) (domain.ListSummary, error)
	Update(ctx context.Context, id uint64, patch domain.ListPatch) (domain.List, error)
	// Delete removes the list and its tasks atomically.
	Delete(ctx context.Context, id uint64) error
}

type ListService interface {
	ListLists(ctx context.Context, principal domain.Principal, filter domain.ListFilter, page domain.PageRequest) (domain.Page[domain.List], error)
	CreateList(ctx context.Context, principal domain.Principal, input domain.NewList) (domain.List, error)
	GetList(ctx context.Context, listID uint64) (domain.List, error)
	GetListDetails(ctx context.Context, listID uint64) (domain.ListSummary, error)
	UpdateList(ctx context.Context, principal domain.Principal, listID uint64, patch domain.ListPatch) (domain.List, error)
	DeleteList(ctx context.Context, principal domain.Principal, listID uint64) error
}
