package service

import (
	"fmt"

	"github.com/flynaut/workforcemgmt/internal/domain"
)

// ParseStatus converts a wire value into a TaskStatus.
func ParseStatus(s string) (domain.TaskStatus, error) {
	status := domain.TaskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, s)
	}
	return status, nil
}

// ParsePriority converts a wire value into a TaskPriority.
func ParsePriority(s string) (domain.TaskPriority, error) {
	priority := domain.TaskPriority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPriority, s)
	}
	return priority, nil
}

// ParseReferenceType converts a wire value into a ReferenceType.
func ParseReferenceType(s string) (domain.ReferenceType, error) {
	rt := domain.ReferenceType(s)
	if !rt.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidReferenceType, s)
	}
	return rt, nil
}

// ParseKind converts a wire value into a TaskKind.
func ParseKind(s string) (domain.TaskKind, error) {
	kind := domain.TaskKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTaskKind, s)
	}
	return kind, nil
}

// CheckRecordComplete verifies the non-null invariants a stored task must
// satisfy before an update may be persisted. A record missing its kind,
// reference type, or priority is corrupt and the update is rejected.
func CheckRecordComplete(task *domain.Task) error {
	switch {
	case task.Kind == "":
		return fmt.Errorf("%w: task %d has no kind", domain.ErrInvalidTaskState, task.ID)
	case task.ReferenceType == "":
		return fmt.Errorf("%w: task %d has no reference type", domain.ErrInvalidTaskState, task.ID)
	case task.Priority == "":
		return fmt.Errorf("%w: task %d has no priority", domain.ErrInvalidTaskState, task.ID)
	}
	return nil
}
