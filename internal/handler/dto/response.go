package dto

import (
	"time"

	"github.com/flynaut/workforcemgmt/internal/domain"
	"github.com/flynaut/workforcemgmt/internal/service"
)

// TaskResponse represents a task on the wire. Deadline is epoch milliseconds
// to match the inbound format.
type TaskResponse struct {
	ID            int64     `json:"id"`
	ReferenceID   int64     `json:"reference_id"`
	ReferenceType string    `json:"reference_type"`
	Kind          string    `json:"kind"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority,omitempty"`
	AssigneeID    *int64    `json:"assignee_id"`
	Deadline      *int64    `json:"deadline"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToTaskResponse converts a domain.Task to TaskResponse.
func ToTaskResponse(task *domain.Task) TaskResponse {
	var deadline *int64
	if task.Deadline != nil {
		ms := task.Deadline.UnixMilli()
		deadline = &ms
	}

	return TaskResponse{
		ID:            task.ID,
		ReferenceID:   task.ReferenceID,
		ReferenceType: string(task.ReferenceType),
		Kind:          string(task.Kind),
		Description:   task.Description,
		Status:        string(task.Status),
		Priority:      string(task.Priority),
		AssigneeID:    task.AssigneeID,
		Deadline:      deadline,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

// BatchItemResponse reports one item of a batch operation: either the
// resulting task or the per-item error.
type BatchItemResponse struct {
	Task  *TaskResponse `json:"task,omitempty"`
	Error *ErrorDetail  `json:"error,omitempty"`
}

// BatchResponse represents the response for batch create/update.
type BatchResponse struct {
	Results []BatchItemResponse `json:"results"`
}

// ToBatchResponse converts service batch results to the wire format.
func ToBatchResponse(results []service.BatchResult) BatchResponse {
	out := BatchResponse{Results: make([]BatchItemResponse, len(results))}
	for i, res := range results {
		if res.Err != nil {
			_, code, message := MapDomainError(res.Err)
			out.Results[i] = BatchItemResponse{Error: &ErrorDetail{Code: code, Message: message}}
			continue
		}
		task := ToTaskResponse(res.Task)
		out.Results[i] = BatchItemResponse{Task: &task}
	}
	return out
}

// TasksResponse represents a list of tasks.
type TasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToTasksResponse converts a slice of domain tasks to the wire format.
func ToTasksResponse(tasks []*domain.Task) TasksResponse {
	out := TasksResponse{Tasks: make([]TaskResponse, len(tasks))}
	for i, task := range tasks {
		out.Tasks[i] = ToTaskResponse(task)
	}
	return out
}

// MessageResponse carries a confirmation string.
type MessageResponse struct {
	Message string `json:"message"`
}

// HistoryEntryResponse represents one history entry, tagged by kind so
// consumers can render comments and activity distinctly.
type HistoryEntryResponse struct {
	Kind      string    `json:"kind"`
	TaskID    int64     `json:"task_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse represents the merged timeline for a task.
type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

// ToHistoryResponse converts history entries to the wire format.
func ToHistoryResponse(entries []domain.HistoryEntry) HistoryResponse {
	out := HistoryResponse{Entries: make([]HistoryEntryResponse, len(entries))}
	for i, entry := range entries {
		out.Entries[i] = HistoryEntryResponse{
			Kind:      string(entry.Kind),
			TaskID:    entry.TaskID,
			Author:    entry.Author,
			Text:      entry.Text,
			Timestamp: entry.Timestamp,
		}
	}
	return out
}

// StatsResponse represents aggregate task counts.
type StatsResponse struct {
	TasksByStatus   map[string]int `json:"tasks_by_status"`
	TasksByPriority map[string]int `json:"tasks_by_priority"`
	OverdueOpen     int            `json:"overdue_open"`
}
