package dto

// CreateTasksRequest represents the request body for POST /tasks.
type CreateTasksRequest struct {
	Requests []CreateTaskItem `json:"requests" validate:"required,min=1,dive"`
}

// CreateTaskItem is one task to create. Deadline is epoch milliseconds.
type CreateTaskItem struct {
	ReferenceID   int64  `json:"reference_id" validate:"required"`
	ReferenceType string `json:"reference_type" validate:"required"`
	Kind          string `json:"kind" validate:"required"`
	Priority      string `json:"priority,omitempty"`
	AssigneeID    *int64 `json:"assignee_id,omitempty"`
	Deadline      *int64 `json:"deadline,omitempty"`
}

// UpdateTasksRequest represents the request body for POST /tasks/update.
type UpdateTasksRequest struct {
	Requests []UpdateTaskItem `json:"requests" validate:"required,min=1,dive"`
}

// UpdateTaskItem is one partial patch. Absent fields are left untouched.
type UpdateTaskItem struct {
	TaskID      int64   `json:"task_id" validate:"required"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AssignByReferenceRequest represents the request body for
// POST /tasks/assign-by-ref.
type AssignByReferenceRequest struct {
	ReferenceID   int64  `json:"reference_id" validate:"required"`
	ReferenceType string `json:"reference_type" validate:"required"`
	AssigneeID    int64  `json:"assignee_id" validate:"required"`
}

// FetchByDateRequest represents the request body for POST /tasks/fetch-by-date.
// Dates are epoch milliseconds.
type FetchByDateRequest struct {
	AssigneeIDs []int64 `json:"assignee_ids" validate:"required,min=1"`
	StartDate   int64   `json:"start_date" validate:"required"`
	EndDate     int64   `json:"end_date" validate:"required"`
}

// UpdatePriorityRequest represents the request body for
// PATCH /tasks/{id}/priority.
type UpdatePriorityRequest struct {
	Priority string `json:"priority" validate:"required"`
}

// AddCommentRequest represents the request body for POST /tasks/{id}/comments.
type AddCommentRequest struct {
	Comment     string `json:"comment" validate:"required"`
	CommentedBy string `json:"commented_by,omitempty"`
}
