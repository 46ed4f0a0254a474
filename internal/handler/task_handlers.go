package handler

import (
	"net/http"
	"time"

	"github.com/flynaut/workforcemgmt/internal/domain"
	"github.com/flynaut/workforcemgmt/internal/handler/dto"
	"github.com/flynaut/workforcemgmt/internal/service"
)

// handleCreateTasks creates a batch of tasks.
// @Summary Create tasks
// @Description Creates one task per request item with status ASSIGNED. Items are independent; failures are reported per item.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTasksRequest true "Task creation batch"
// @Success 201 {object} dto.BatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks [post]
func (h *Handler) handleCreateTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CreateTasksRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	items := make([]service.CreateTaskParams, len(req.Requests))
	for i, item := range req.Requests {
		var deadline *time.Time
		if item.Deadline != nil {
			t := time.UnixMilli(*item.Deadline)
			deadline = &t
		}
		items[i] = service.CreateTaskParams{
			ReferenceID:   item.ReferenceID,
			ReferenceType: domain.ReferenceType(item.ReferenceType),
			Kind:          domain.TaskKind(item.Kind),
			Priority:      domain.TaskPriority(item.Priority),
			AssigneeID:    item.AssigneeID,
			Deadline:      deadline,
		}
	}

	results := h.taskService.CreateTasks(ctx, items)
	respondJSON(w, http.StatusCreated, dto.ToBatchResponse(results))
}

// handleUpdateTasks applies a batch of partial task patches.
// @Summary Update tasks
// @Description Applies status/description patches per item; absent fields are left untouched. Failures are reported per item.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.UpdateTasksRequest true "Task update batch"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/update [post]
func (h *Handler) handleUpdateTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.UpdateTasksRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	items := make([]service.UpdateTaskParams, len(req.Requests))
	for i, item := range req.Requests {
		params := service.UpdateTaskParams{
			TaskID:      item.TaskID,
			Description: item.Description,
		}
		if item.Status != nil {
			status := domain.TaskStatus(*item.Status)
			params.Status = &status
		}
		items[i] = params
	}

	results := h.taskService.UpdateTasks(ctx, items)
	respondJSON(w, http.StatusOK, dto.ToBatchResponse(results))
}

// handleAssignByReference reassigns all applicable task kinds for a reference.
// @Summary Assign tasks by reference
// @Description Cancels any active task per applicable kind and creates fresh ASSIGNED tasks for the assignee.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.AssignByReferenceRequest true "Reassignment request"
// @Success 200 {object} dto.MessageResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/assign-by-ref [post]
func (h *Handler) handleAssignByReference(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.AssignByReferenceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	referenceType, err := service.ParseReferenceType(req.ReferenceType)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	message, err := h.taskService.AssignByReference(ctx, req.ReferenceID, referenceType, req.AssigneeID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.MessageResponse{Message: message})
}

// handleFetchByDate returns tasks relevant to a date window.
// @Summary Fetch tasks by date window
// @Description Returns the assignees' tasks with a deadline inside the window, plus open tasks overdue from before it.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.FetchByDateRequest true "Date window request"
// @Success 200 {object} dto.TasksResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/fetch-by-date [post]
func (h *Handler) handleFetchByDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.FetchByDateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	start := time.UnixMilli(req.StartDate)
	end := time.UnixMilli(req.EndDate)

	tasks, err := h.taskService.FetchByDateWindow(ctx, req.AssigneeIDs, start, end)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTasksResponse(tasks))
}

// handleGetTask retrieves a single task.
// @Summary Get task by id
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleUpdatePriority changes a task's priority.
// @Summary Update task priority
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body dto.UpdatePriorityRequest true "Priority update"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/{id}/priority [patch]
func (h *Handler) handleUpdatePriority(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePriorityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	priority, err := service.ParsePriority(req.Priority)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	task, err := h.taskService.UpdatePriority(ctx, taskID, priority)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleFetchByPriority returns all tasks with the given priority.
// @Summary Fetch tasks by priority
// @Tags tasks
// @Produce json
// @Param priority path string true "Priority (HIGH, MEDIUM, LOW)"
// @Success 200 {object} dto.TasksResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/priority/{priority} [get]
func (h *Handler) handleFetchByPriority(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	priority, err := service.ParsePriority(r.PathValue("priority"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	tasks, err := h.taskService.FetchByPriority(ctx, priority)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTasksResponse(tasks))
}
