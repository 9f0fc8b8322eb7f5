package service

import (
	"context"
	"time"

	"tasklist/internal/app/guard"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

type ListService struct {
	listRepository ports.ListRepository
	now            func() time.Time
}

func NewListService(listRepository ports.ListRepository) *ListService {
	return &ListService{listRepository: listRepository, now: time.Now}
}

// WithClock replaces the clock used to default the date of new lists.
func (s *ListService) WithClock(now func() time.Time) *ListService {
	s.now = now
	return s
}

// ListLists only ever returns lists owned by principal, ordered by id.
func (s *ListService) ListLists(ctx context.Context, principal domain.Principal, filter domain.ListFilter, page domain.PageRequest) (domain.Page[domain.List], error) {
	if err := guard.RequireAuthenticated(principal); err != nil {
		return domain.Page[domain.List]{}, err
	}
	if filter.Date != nil {
		date := domain.TruncateDate(*filter.Date)
		filter.Date = &date
	}
	return s.listRepository.ListByOwner(ctx, principal.UserID, filter, page.Normalize())
}

func (s *ListService) CreateList(ctx context.Context, principal domain.Principal, input domain.NewList) (domain.List, error) {
	if err := guard.RequireAuthenticated(principal); err != nil {
		return domain.List{}, err
	}

	date := s.now().UTC()
	if input.Date != nil {
		date = *input.Date
	}
	return s.listRepository.Create(ctx, principal.UserID, domain.TruncateDate(date), input.ImportantFlag)
}

func (s *ListService) GetList(ctx context.Context, listID uint64) (domain.List, error) {
	if listID == 0 {
		return domain.List{}, domain.ErrListNotFound
	}
	return s.listRepository.GetByID(ctx, listID)
}

// GetListDetails does not check ownership; callers authorize the returned
// summary's list before exposing it.
func (s *ListService) GetListDetails(ctx context.Context, listID uint64) (domain.ListSummary, error) {
	if listID == 0 {
		return domain.ListSummary{}, domain.ErrListNotFound
	}
	return s.listRepository.Summary(ctx, listID)
}

func (s *ListService) UpdateList(ctx context.Context, principal domain.Principal, listID uint64, patch domain.ListPatch) (domain.List, error) {
	list, err := s.GetList(ctx, listID)
	if err != nil {
		return domain.List{}, err
	}
	if err := guard.AuthorizeList(principal, list); err != nil {
		return domain.List{}, err
	}

	if patch.IsEmpty() {
		return list, nil
	}
	if patch.Date != nil {
		date := domain.TruncateDate(*patch.Date)
		patch.Date = &date
	}
	return s.listRepository.Update(ctx, listID, patch)
}

func (s *ListService) DeleteList(ctx context.Context, principal domain.Principal, listID uint64) error {
	list, err := s.GetList(ctx, listID)
	if err != nil {
		return err
	}
	if err := guard.AuthorizeList(principal, list); err != nil {
		return err
	}
	return s.listRepository.Delete(ctx, listID)
}

var _ ports.ListService = (*ListService)(nil)
