package domain

import "time"

// DefaultDescription is set on every task at creation time.
const DefaultDescription = "New task created."

// TaskStatus represents the status of a task in the state machine.
type TaskStatus string

const (
	TaskStatusAssigned  TaskStatus = "ASSIGNED"
	TaskStatusStarted   TaskStatus = "STARTED"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusCancelled TaskStatus = "CANCELLED"
)

// IsTerminal returns true if the status is terminal (no transitions allowed).
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// IsOpen returns true if the task still represents pending work.
func (s TaskStatus) IsOpen() bool {
	return s == TaskStatusAssigned || s == TaskStatusStarted
}

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusAssigned, TaskStatusStarted, TaskStatusCompleted, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// TaskPriority represents the priority level of a task.
// The empty string means the priority has not been set.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityLow    TaskPriority = "LOW"
)

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	default:
		return false
	}
}

// Task represents a unit of work tied to an external business reference.
type Task struct {
	ID            int64
	ReferenceID   int64
	ReferenceType ReferenceType
	Kind          TaskKind
	Description   string
	Status        TaskStatus
	Priority      TaskPriority // empty when unset
	AssigneeID    *int64
	Deadline      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAssignedTo checks if the task is owned by the given assignee.
func (t *Task) IsAssignedTo(assigneeID int64) bool {
	return t.AssigneeID != nil && *t.AssigneeID == assigneeID
}
