package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/mapper"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/adapter/http/validation"
	"tasklist/internal/app/guard"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
	"tasklist/pkg/apierrors"
)

type ListHandler struct {
	listService ports.ListService
	pageSize    int
}

func NewListHandler(listService ports.ListService, pageSize int) *ListHandler {
	return &ListHandler{listService: listService, pageSize: pageSize}
}

func (h *ListHandler) ListLists(c *gin.Context) {
	msgs := messages{invalid: apierrors.MsgInvalidFilter, fail: apierrors.MsgFailListLists}

	filter, err := validation.ParseListFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, err, msgs)
		return
	}
	page, ok := parsePage(c, h.pageSize)
	if !ok {
		return
	}

	lists, err := h.listService.ListLists(c.Request.Context(), middleware.GetPrincipal(c), filter, page)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	writePage(c, page, lists.Total, mapper.ToListItems(lists.Items))
}

func (h *ListHandler) CreateList(c *gin.Context) {
	msgs := messages{invalid: apierrors.MsgInvalidListPayload, fail: apierrors.MsgFailCreateList}

	var req dto.ListRequest
	if err := bindBody(c, &req); err != nil {
		respondError(c, err, msgs)
		return
	}
	input, err := validation.BuildNewList(req)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	list, err := h.listService.CreateList(c.Request.Context(), middleware.GetPrincipal(c), input)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToListItem(list))
}

func (h *ListHandler) GetListDetails(c *gin.Context) {
	msgs := messages{fail: apierrors.MsgFailGetList}

	listID, ok := parseIDParam(c, "listID")
	if !ok {
		return
	}

	summary, err := h.listService.GetListDetails(c.Request.Context(), listID)
	if err == nil {
		err = guard.AuthorizeList(middleware.GetPrincipal(c), summary.List)
	}
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	c.JSON(http.StatusOK, mapper.ToListSummary(summary))
}

func (h *ListHandler) UpdateList(c *gin.Context) {
	msgs := messages{invalid: apierrors.MsgInvalidListPayload, fail: apierrors.MsgFailUpdateList}

	listID, ok := parseIDParam(c, "listID")
	if !ok {
		return
	}
	principal := middleware.GetPrincipal(c)

	// Ownership is settled before the body is looked at.
	if _, err := authorizedList(c, h.listService, principal, listID); err != nil {
		respondError(c, err, msgs)
		return
	}

	var req dto.ListRequest
	if err := bindBody(c, &req); err != nil {
		respondError(c, err, msgs)
		return
	}
	patch, err := validation.BuildListPatch(req)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	list, err := h.listService.UpdateList(c.Request.Context(), principal, listID, patch)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	c.JSON(http.StatusOK, mapper.ToListItem(list))
}

func (h *ListHandler) DeleteList(c *gin.Context) {
	listID, ok := parseIDParam(c, "listID")
	if !ok {
		return
	}

	if err := h.listService.DeleteList(c.Request.Context(), middleware.GetPrincipal(c), listID); err != nil {
		respondError(c, err, messages{fail: apierrors.MsgFailDeleteList})
		return
	}

	c.Status(http.StatusNoContent)
}

// authorizedList loads a list and checks that principal owns it.
func authorizedList(c *gin.Context, lists ports.ListService, principal domain.Principal, listID uint64) (domain.List, error) {
	list, err := lists.GetList(c.Request.Context(), listID)
	if err != nil {
		return domain.List{}, err
	}
	if err := guard.AuthorizeList(principal, list); err != nil {
		return domain.List{}, err
	}
	return list, nil
}
