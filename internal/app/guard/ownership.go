// Package guard decides whether a principal may act on a list or task.
//
// A task has no owner of its own: access is always decided by the owner of
// its parent list.
package guard

import "tasklist/internal/core/domain"

func AuthorizeList(principal domain.Principal, list domain.List) error {
	return authorize(principal, list.OwnerID)
}

func AuthorizeTask(principal domain.Principal, task domain.Task) error {
	return authorize(principal, task.ListOwnerID)
}

// RequireAuthenticated rejects the anonymous principal.
func RequireAuthenticated(principal domain.Principal) error {
	if !principal.IsAuthenticated() {
		return domain.ErrForbidden
	}
	return nil
}

func authorize(principal domain.Principal, ownerID uint64) error {
	if !principal.IsAuthenticated() || principal.UserID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}
