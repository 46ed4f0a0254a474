package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/flynaut/workforcemgmt/docs" // Import generated docs
	"github.com/flynaut/workforcemgmt/internal/handler/dto"
	"github.com/flynaut/workforcemgmt/internal/repository"
	"github.com/flynaut/workforcemgmt/internal/service"
)

// validate checks request DTOs against their struct tags.
var validate = validator.New()

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool           *pgxpool.Pool
	taskService    *service.TaskService
	historyService *service.HistoryService
	taskRepo       *repository.TaskRepository
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool) *Handler {
	taskRepo := repository.NewTaskRepository(pool)
	historyStore := repository.NewHistoryStore()

	historyService := service.NewHistoryService(historyStore, taskRepo)
	taskService := service.NewTaskService(pool, taskRepo, historyService)

	return &Handler{
		pool:           pool,
		taskService:    taskService,
		historyService: historyService,
		taskRepo:       taskRepo,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// API v1 routes
	mux.HandleFunc("POST /api/v1/tasks", h.handleCreateTasks)
	mux.HandleFunc("POST /api/v1/tasks/update", h.handleUpdateTasks)
	mux.HandleFunc("POST /api/v1/tasks/assign-by-ref", h.handleAssignByReference)
	mux.HandleFunc("POST /api/v1/tasks/fetch-by-date", h.handleFetchByDate)
	mux.HandleFunc("GET /api/v1/tasks/priority/{priority}", h.handleFetchByPriority)
	mux.HandleFunc("GET /api/v1/tasks/{id}", h.handleGetTask)
	mux.HandleFunc("PATCH /api/v1/tasks/{id}/priority", h.handleUpdatePriority)
	mux.HandleFunc("POST /api/v1/tasks/{id}/comments", h.handleAddComment)
	mux.HandleFunc("GET /api/v1/tasks/{id}/history", h.handleGetHistory)
	mux.HandleFunc("GET /api/v1/stats", h.handleGetStats)
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a domain error and writes the error response.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// decodeJSON decodes and validates a request body into dst. Returns false if
// an error response was already written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return false
	}
	return true
}

// extractTaskID extracts and validates the task id path parameter.
// Returns (id, true) if valid, (0, false) if invalid (error already sent).
func extractTaskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "task id is required")
		return 0, false
	}

	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || taskID <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "task id must be a positive integer")
		return 0, false
	}

	return taskID, true
}
