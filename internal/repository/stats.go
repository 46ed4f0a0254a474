package repository

import (
	"context"
	"fmt"

	"github.com/flynaut/workforcemgmt/internal/domain"
)

// StatsResult holds aggregate task counts for the stats endpoint.
type StatsResult struct {
	TasksByStatus   map[string]int
	TasksByPriority map[string]int
	OverdueOpen     int
}

// GetStats retrieves aggregate task counts: per status, per set priority,
// and the number of open tasks whose deadline has passed.
func (r *TaskRepository) GetStats(ctx context.Context) (*StatsResult, error) {
	result := &StatsResult{
		TasksByStatus:   make(map[string]int),
		TasksByPriority: make(map[string]int),
	}

	rows, err := r.pool.Query(ctx, "SELECT status, COUNT(*) FROM tasks GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("query status counts: %w: %w", domain.ErrStoreUnavailable, err)
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		result.TasksByStatus[status] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w: %w", domain.ErrStoreUnavailable, err)
	}

	rows, err = r.pool.Query(ctx, "SELECT priority, COUNT(*) FROM tasks WHERE priority <> '' GROUP BY priority")
	if err != nil {
		return nil, fmt.Errorf("query priority counts: %w: %w", domain.ErrStoreUnavailable, err)
	}
	for rows.Next() {
		var priority string
		var count int
		if err := rows.Scan(&priority, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan priority count: %w", err)
		}
		result.TasksByPriority[priority] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate priority counts: %w: %w", domain.ErrStoreUnavailable, err)
	}

	err = r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE deadline IS NOT NULL
		  AND deadline < NOW()
		  AND status IN ($1, $2)
	`, domain.TaskStatusAssigned, domain.TaskStatusStarted).Scan(&result.OverdueOpen)
	if err != nil {
		return nil, fmt.Errorf("query overdue count: %w: %w", domain.ErrStoreUnavailable, err)
	}

	return result, nil
}
