package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flynaut/workforcemgmt/internal/domain"
	"github.com/flynaut/workforcemgmt/internal/repository"
)

// TaskService owns the task lifecycle: creation, partial updates, priority
// changes, and the reference-based reassignment protocol.
type TaskService struct {
	pool     *pgxpool.Pool
	taskRepo *repository.TaskRepository
	history  *HistoryService
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	pool *pgxpool.Pool,
	taskRepo *repository.TaskRepository,
	history *HistoryService,
) *TaskService {
	return &TaskService{
		pool:     pool,
		taskRepo: taskRepo,
		history:  history,
	}
}

// CreateTaskParams holds the caller-supplied fields for a new task.
type CreateTaskParams struct {
	ReferenceID   int64
	ReferenceType domain.ReferenceType
	Kind          domain.TaskKind
	Priority      domain.TaskPriority // empty leaves the priority unset
	AssigneeID    *int64
	Deadline      *time.Time
}

// UpdateTaskParams holds a partial patch for an existing task. Nil fields
// are left untouched.
type UpdateTaskParams struct {
	TaskID      int64
	Status      *domain.TaskStatus
	Description *string
}

// BatchResult reports the outcome of one item in a batch operation. Items
// are independent: a failed item never aborts the rest of the batch.
type BatchResult struct {
	Task *domain.Task
	Err  error
}

// rollback discards a transaction, logging unexpected failures.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		slog.Error("failed to rollback transaction", "error", err)
	}
}

// CreateTasks creates one task per input item with status ASSIGNED and the
// default description. Results are reported per item.
func (s *TaskService) CreateTasks(ctx context.Context, items []CreateTaskParams) []BatchResult {
	results := make([]BatchResult, len(items))
	for i, item := range items {
		task, err := s.createTask(ctx, item)
		results[i] = BatchResult{Task: task, Err: err}
	}
	return results
}

func (s *TaskService) createTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	if !params.ReferenceType.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidReferenceType, params.ReferenceType)
	}
	if !params.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTaskKind, params.Kind)
	}
	if params.Priority != "" && !params.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, params.Priority)
	}

	task := &domain.Task{
		ReferenceID:   params.ReferenceID,
		ReferenceType: params.ReferenceType,
		Kind:          params.Kind,
		Description:   domain.DefaultDescription,
		Status:        domain.TaskStatusAssigned,
		Priority:      params.Priority,
		AssigneeID:    params.AssigneeID,
		Deadline:      params.Deadline,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer rollback(ctx, tx)

	if _, err := s.taskRepo.Insert(ctx, tx, task); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w: %w", domain.ErrStoreUnavailable, err)
	}

	s.history.RecordActivity(task.ID, "Task created", domain.SystemAuthor)

	slog.Info("task created",
		"task_id", task.ID,
		"reference_id", task.ReferenceID,
		"reference_type", task.ReferenceType,
		"kind", task.Kind,
	)

	return task, nil
}

// UpdateTasks applies a partial patch per input item: only non-nil status
// and description fields are written. Results are reported per item.
func (s *TaskService) UpdateTasks(ctx context.Context, items []UpdateTaskParams) []BatchResult {
	results := make([]BatchResult, len(items))
	for i, item := range items {
		task, err := s.updateTask(ctx, item)
		results[i] = BatchResult{Task: task, Err: err}
	}
	return results
}

func (s *TaskService) updateTask(ctx context.Context, params UpdateTaskParams) (*domain.Task, error) {
	if params.Status != nil && !params.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *params.Status)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer rollback(ctx, tx)

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, params.TaskID)
	if err != nil {
		return nil, err
	}

	oldStatus := task.Status
	if params.Status != nil {
		task.Status = *params.Status
	}
	if params.Description != nil {
		task.Description = *params.Description
	}

	if err := CheckRecordComplete(task); err != nil {
		return nil, err
	}

	if _, err := s.taskRepo.Update(ctx, tx, task); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w: %w", domain.ErrStoreUnavailable, err)
	}

	if params.Status != nil && *params.Status != oldStatus {
		s.history.RecordActivity(task.ID,
			fmt.Sprintf("Status changed from %s to %s", oldStatus, task.Status),
			domain.SystemAuthor,
		)
	}

	slog.Info("task updated",
		"task_id", task.ID,
		"old_status", oldStatus,
		"new_status", task.Status,
	)

	return task, nil
}

// UpdatePriority sets the priority of a single task.
func (s *TaskService) UpdatePriority(
	ctx context.Context,
	taskID int64,
	priority domain.TaskPriority,
) (*domain.Task, error) {
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer rollback(ctx, tx)

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	task.Priority = priority

	if _, err := s.taskRepo.Update(ctx, tx, task); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w: %w", domain.ErrStoreUnavailable, err)
	}

	s.history.RecordActivity(task.ID,
		fmt.Sprintf("Priority changed to %s", priority),
		domain.SystemAuthor,
	)

	slog.Info("task priority updated", "task_id", task.ID, "priority", priority)

	return task, nil
}

// AssignByReference runs the reassignment protocol: for every task kind
// applicable to the reference type, the existing non-terminal task of that
// kind (if any) is cancelled and a fresh ASSIGNED task is created for the
// given assignee. The whole protocol executes in one transaction holding an
// advisory lock on the reference, so concurrent calls for the same reference
// serialize and the at-most-one-active-per-kind invariant holds. Each call
// creates fresh task ids; callers must treat re-invocation as re-assign, not
// as a no-op.
func (s *TaskService) AssignByReference(
	ctx context.Context,
	referenceID int64,
	referenceType domain.ReferenceType,
	assigneeID int64,
) (string, error) {
	kinds := domain.KindsForReferenceType(referenceType)
	if len(kinds) == 0 {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidReferenceType, referenceType)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer rollback(ctx, tx)

	if err := s.taskRepo.LockReference(ctx, tx, referenceID, referenceType); err != nil {
		return "", err
	}

	existing, err := s.taskRepo.FindByReferenceForUpdate(ctx, tx, referenceID, referenceType)
	if err != nil {
		return "", err
	}

	var cancelledIDs, createdIDs []int64
	for _, kind := range kinds {
		for _, task := range existing {
			if task.Kind != kind || task.Status.IsTerminal() {
				continue
			}
			task.Status = domain.TaskStatusCancelled
			if _, err := s.taskRepo.Update(ctx, tx, task); err != nil {
				return "", err
			}
			cancelledIDs = append(cancelledIDs, task.ID)
			break // at most one active task per kind
		}

		assignee := assigneeID
		newTask := &domain.Task{
			ReferenceID:   referenceID,
			ReferenceType: referenceType,
			Kind:          kind,
			Description:   domain.DefaultDescription,
			Status:        domain.TaskStatusAssigned,
			AssigneeID:    &assignee,
		}
		if _, err := s.taskRepo.Insert(ctx, tx, newTask); err != nil {
			return "", err
		}
		createdIDs = append(createdIDs, newTask.ID)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit transaction: %w: %w", domain.ErrStoreUnavailable, err)
	}

	// Activity entries are recorded only once the transaction is durable.
	for _, id := range cancelledIDs {
		s.history.RecordActivity(id, "Task superseded by reassignment", domain.SystemAuthor)
	}
	for _, id := range createdIDs {
		s.history.RecordActivity(id, "Task created by reassignment", domain.SystemAuthor)
	}

	slog.Info("tasks reassigned",
		"reference_id", referenceID,
		"reference_type", referenceType,
		"assignee_id", assigneeID,
		"cancelled", len(cancelledIDs),
		"created", len(createdIDs),
	)

	return fmt.Sprintf("Tasks assigned successfully for reference %d", referenceID), nil
}

// GetTask retrieves a single task by id.
func (s *TaskService) GetTask(ctx context.Context, taskID int64) (*domain.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

// FetchByPriority returns all tasks whose priority equals the argument.
// Tasks with no priority set never match.
func (s *TaskService) FetchByPriority(
	ctx context.Context,
	priority domain.TaskPriority,
) ([]*domain.Task, error) {
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}

	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Task, 0)
	for _, task := range tasks {
		if task.Priority == priority {
			matched = append(matched, task)
		}
	}
	return matched, nil
}

// FetchByDateWindow returns the tasks owned by any of the assignees that are
// relevant to the date range, including overdue-but-open tasks from before
// the range. Store iteration order is preserved.
func (s *TaskService) FetchByDateWindow(
	ctx context.Context,
	assigneeIDs []int64,
	start, end time.Time,
) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.FindByAssignees(ctx, assigneeIDs)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Task, 0)
	for _, task := range tasks {
		if InWindow(task, start, end) {
			matched = append(matched, task)
		}
	}
	return matched, nil
}
