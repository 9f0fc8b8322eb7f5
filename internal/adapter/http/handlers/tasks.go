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

// TaskHandler serves tasks nested under /lists/:listID. Every route first
// resolves the parent list so a missing list answers 404 and a foreign one
// answers 403.
type TaskHandler struct {
	taskService ports.TaskService
	listService ports.ListService
	pageSize    int
}

func NewTaskHandler(taskService ports.TaskService, listService ports.ListService, pageSize int) *TaskHandler {
	return &TaskHandler{taskService: taskService, listService: listService, pageSize: pageSize}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	msgs := messages{invalid: apierrors.MsgInvalidFilter, fail: apierrors.MsgFailListTasks}

	listID, ok := parseIDParam(c, "listID")
	if !ok {
		return
	}
	if _, err := authorizedList(c, h.listService, middleware.GetPrincipal(c), listID); err != nil {
		respondError(c, err, msgs)
		return
	}

	filter, err := validation.ParseTaskFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, err, msgs)
		return
	}
	page, ok := parsePage(c, h.pageSize)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), listID, filter, page)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	writePage(c, page, tasks.Total, mapper.ToTaskItems(tasks.Items))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	msgs := messages{invalid: apierrors.MsgInvalidTaskPayload, fail: apierrors.MsgFailCreateTask}

	listID, ok := parseIDParam(c, "listID")
	if !ok {
		return
	}
	if _, err := authorizedList(c, h.listService, middleware.GetPrincipal(c), listID); err != nil {
		respondError(c, err, msgs)
		return
	}

	var req dto.TaskRequest
	if err := bindBody(c, &req); err != nil {
		respondError(c, err, msgs)
		return
	}
	input, err := validation.BuildNewTask(req)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), listID, input)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTaskDetails(c *gin.Context) {
	task, ok := h.authorizedTask(c, messages{fail: apierrors.MsgFailGetTask})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	msgs := messages{invalid: apierrors.MsgInvalidTaskPayload, fail: apierrors.MsgFailUpdateTask}

	current, ok := h.authorizedTask(c, msgs)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := bindBody(c, &req); err != nil {
		respondError(c, err, msgs)
		return
	}
	input, err := validation.BuildTaskReplace(req)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetPrincipal(c), current.ListID, current.ID, input)
	if err != nil {
		respondError(c, err, msgs)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	listID, ok := parseIDParam(c, "listID")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskID")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetPrincipal(c), listID, taskID); err != nil {
		respondError(c, err, messages{fail: apierrors.MsgFailDeleteTask})
		return
	}

	c.Status(http.StatusNoContent)
}

// authorizedTask loads the addressed task and checks ownership through its
// parent list. It writes the error response itself and reports false.
func (h *TaskHandler) authorizedTask(c *gin.Context, msgs messages) (domain.Task, bool) {
	listID, ok := parseIDParam(c, "listID")
	if !ok {
		return domain.Task{}, false
	}
	taskID, ok := parseIDParam(c, "taskID")
	if !ok {
		return domain.Task{}, false
	}

	task, err := h.taskService.GetTaskDetails(c.Request.Context(), taskID)
	if err == nil && task.ListID != listID {
		err = domain.ErrTaskNotFound
	}
	if err == nil {
		err = guard.AuthorizeTask(middleware.GetPrincipal(c), task)
	}
	if err != nil {
		respondError(c, err, msgs)
		return domain.Task{}, false
	}
	return task, true
}
