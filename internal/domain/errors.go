package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Task errors
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidTaskState = errors.New("task record is in an invalid state")

	// Validation errors
	ErrInvalidStatus        = errors.New("invalid task status")
	ErrInvalidPriority      = errors.New("invalid task priority")
	ErrInvalidReferenceType = errors.New("invalid reference type")
	ErrInvalidTaskKind      = errors.New("invalid task kind")
	ErrEmptyComment         = errors.New("comment is required")

	// Store errors
	ErrStoreUnavailable = errors.New("task store unavailable")
)
