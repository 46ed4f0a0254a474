package handler

import (
	"net/http"

	"github.com/flynaut/workforcemgmt/internal/handler/dto"
)

// handleGetStats returns aggregate task counts.
// @Summary Get task statistics
// @Description Returns task counts per status and priority, and the number of open tasks past their deadline.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.taskRepo.GetStats(ctx)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.StatsResponse{
		TasksByStatus:   stats.TasksByStatus,
		TasksByPriority: stats.TasksByPriority,
		OverdueOpen:     stats.OverdueOpen,
	})
}
