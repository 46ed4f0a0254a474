package handler

import (
	"net/http"

	"github.com/flynaut/workforcemgmt/internal/handler/dto"
)

// handleAddComment appends a comment to a task's history.
// @Summary Add comment to task
// @Description Appends a comment and a correlated "Comment added" activity entry.
// @Tags history
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body dto.AddCommentRequest true "Comment"
// @Success 201 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/{id}/comments [post]
func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.historyService.AddComment(ctx, taskID, req.Comment, req.CommentedBy); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.MessageResponse{Message: "Comment added successfully."})
}

// handleGetHistory returns the merged comment/activity timeline for a task.
// @Summary Get task history
// @Description Returns comments and activity entries merged into one sequence, ascending by timestamp.
// @Tags history
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} dto.HistoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id}/history [get]
func (h *Handler) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	entries, err := h.historyService.History(ctx, taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToHistoryResponse(entries))
}
