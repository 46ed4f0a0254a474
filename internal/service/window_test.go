package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flynaut/workforcemgmt/internal/domain"
	"github.com/flynaut/workforcemgmt/internal/service"
)

// day returns an instant on the given March day, mid-morning local time.
func day(d int) time.Time {
	return time.Date(2026, time.March, d, 9, 30, 0, 0, time.Local)
}

func windowTask(status domain.TaskStatus, deadline *time.Time) *domain.Task {
	return &domain.Task{
		ID:            1,
		ReferenceID:   100,
		ReferenceType: domain.ReferenceTypeOrder,
		Kind:          domain.TaskKindPack,
		Status:        status,
		Deadline:      deadline,
	}
}

func TestInWindow(t *testing.T) {
	d5 := day(5)
	d10 := day(10)
	d15 := day(15)
	d20 := day(20)
	d21 := day(21)

	tests := []struct {
		name     string
		status   domain.TaskStatus
		deadline *time.Time
		want     bool
	}{
		{"assigned overdue before window", domain.TaskStatusAssigned, &d5, true},
		{"started overdue before window", domain.TaskStatusStarted, &d5, true},
		{"completed overdue before window", domain.TaskStatusCompleted, &d5, false},
		{"cancelled in range", domain.TaskStatusCancelled, &d15, false},
		{"no deadline", domain.TaskStatusAssigned, nil, false},
		{"in range", domain.TaskStatusAssigned, &d15, true},
		{"completed in range", domain.TaskStatusCompleted, &d15, true},
		{"on window start", domain.TaskStatusStarted, &d10, true},
		{"on window end", domain.TaskStatusAssigned, &d20, true},
		{"after window end", domain.TaskStatusAssigned, &d21, false},
		{"completed after window", domain.TaskStatusCompleted, &d21, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := windowTask(tt.status, tt.deadline)
			assert.Equal(t, tt.want, service.InWindow(task, day(10), day(20)))
		})
	}
}

// The comparison is date-granular: a deadline late on the window's end day
// still falls inside the window even if the end instant is earlier that day.
func TestInWindow_DateGranularity(t *testing.T) {
	deadline := time.Date(2026, time.March, 20, 23, 0, 0, 0, time.Local)
	task := windowTask(domain.TaskStatusAssigned, &deadline)

	end := time.Date(2026, time.March, 20, 1, 0, 0, 0, time.Local)
	assert.True(t, service.InWindow(task, day(10), end))
}
