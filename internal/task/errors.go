package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrForbidden     = errors.New("task belongs to another user")
	ErrEmptyTitle    = errors.New("task title is empty")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrNoAssignee    = errors.New("task has no assignee")
)
