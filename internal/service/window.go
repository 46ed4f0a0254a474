package service

import (
	"time"

	"github.com/flynaut/workforcemgmt/internal/domain"
)

// localDate truncates an instant to its calendar date in the process-local
// zone. The window comparison is date-granular, not instant-granular.
func localDate(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// InWindow reports whether a task is relevant to the date range
// [start, end]. Cancelled tasks and tasks without a deadline never match.
// A task matches when its deadline date falls inside the range, or when it
// is still open (ASSIGNED or STARTED) with a deadline date before the range
// start: overdue work must stay visible in any forward-looking window.
func InWindow(task *domain.Task, start, end time.Time) bool {
	if task.Status == domain.TaskStatusCancelled || task.Deadline == nil {
		return false
	}

	due := localDate(*task.Deadline)
	from := localDate(start)
	to := localDate(end)

	withinRange := !due.Before(from) && !due.After(to)
	overdueOpen := task.Status.IsOpen() && due.Before(from)

	return withinRange || overdueOpen
}
