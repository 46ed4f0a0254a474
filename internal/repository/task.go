package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flynaut/workforcemgmt/internal/domain"
)

// taskColumns is the shared list of columns for task queries.
var taskColumns = []string{
	"id", "reference_id", "reference_type", "kind", "description",
	"status", "priority", "assignee_id", "deadline",
	"created_at", "updated_at",
}

// TaskRepository handles database operations for tasks.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// scanTask scans a single row into a Task struct.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.ReferenceID,
		&task.ReferenceType,
		&task.Kind,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.AssigneeID,
		&task.Deadline,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return &task, nil
}

// scanTasks scans multiple rows into a slice of Task structs.
func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return tasks, nil
}

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query: %w", err)
	}

	return scanTask(r.pool.QueryRow(ctx, query, args...))
}

// GetByIDForUpdate retrieves a task by ID with a FOR UPDATE row lock
// (within a transaction).
func (r *TaskRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, taskID int64) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForUpdate query for task %d: %w", taskID, err)
	}

	return scanTask(tx.QueryRow(ctx, query, args...))
}

// ListAll retrieves every task in id order.
func (r *TaskRepository) ListAll(ctx context.Context) ([]*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListAll query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w: %w", domain.ErrStoreUnavailable, err)
	}

	return scanTasks(rows)
}

// FindByReference retrieves all tasks for a business reference.
func (r *TaskRepository) FindByReference(
	ctx context.Context,
	referenceID int64,
	referenceType domain.ReferenceType,
) ([]*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{
			"reference_id":   referenceID,
			"reference_type": referenceType,
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build FindByReference query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks by reference: %w: %w", domain.ErrStoreUnavailable, err)
	}

	return scanTasks(rows)
}

// FindByReferenceForUpdate retrieves all tasks for a business reference with
// FOR UPDATE row locks (within a transaction). Used by the reassignment
// protocol so concurrent callers cannot cancel the same task twice.
func (r *TaskRepository) FindByReferenceForUpdate(
	ctx context.Context,
	tx pgx.Tx,
	referenceID int64,
	referenceType domain.ReferenceType,
) ([]*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{
			"reference_id":   referenceID,
			"reference_type": referenceType,
		}).
		OrderBy("id ASC").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build FindByReferenceForUpdate query: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks by reference: %w: %w", domain.ErrStoreUnavailable, err)
	}

	return scanTasks(rows)
}

// LockReference takes a transaction-scoped advisory lock on a business
// reference. Row locks alone cannot serialize the reassignment protocol when
// no task row exists yet for a kind, so the whole (reference_id,
// reference_type) pair is locked until the transaction ends.
func (r *TaskRepository) LockReference(
	ctx context.Context,
	tx pgx.Tx,
	referenceID int64,
	referenceType domain.ReferenceType,
) error {
	key := fmt.Sprintf("%s:%d", referenceType, referenceID)
	_, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", key)
	if err != nil {
		return fmt.Errorf("lock reference %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	return nil
}

// FindByAssignees retrieves all tasks owned by any of the given assignees.
func (r *TaskRepository) FindByAssignees(ctx context.Context, assigneeIDs []int64) ([]*domain.Task, error) {
	if len(assigneeIDs) == 0 {
		return []*domain.Task{}, nil
	}

	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"assignee_id": assigneeIDs}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build FindByAssignees query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks by assignees: %w: %w", domain.ErrStoreUnavailable, err)
	}

	return scanTasks(rows)
}

// Insert creates a new task within a transaction. Returns the task with ID,
// CreatedAt, and UpdatedAt populated by the store.
func (r *TaskRepository) Insert(ctx context.Context, tx pgx.Tx, task *domain.Task) (*domain.Task, error) {
	query, args, err := psql.
		Insert("tasks").
		Columns(
			"reference_id", "reference_type", "kind", "description",
			"status", "priority", "assignee_id", "deadline",
		).
		Values(
			task.ReferenceID,
			task.ReferenceType,
			task.Kind,
			task.Description,
			task.Status,
			task.Priority,
			task.AssigneeID,
			task.Deadline,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Insert query: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w: %w", domain.ErrStoreUnavailable, err)
	}

	return task, nil
}

// Update persists the mutable fields of a task within a transaction.
func (r *TaskRepository) Update(ctx context.Context, tx pgx.Tx, task *domain.Task) (*domain.Task, error) {
	query, args, err := psql.
		Update("tasks").
		Set("description", task.Description).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("assignee_id", task.AssigneeID).
		Set("deadline", task.Deadline).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": task.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for task %d: %w", task.ID, err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&task.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task %d: %w: %w", task.ID, domain.ErrStoreUnavailable, err)
	}

	return task, nil
}
