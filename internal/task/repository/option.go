package repository

import (
	"time"

	"clinic-assistant/internal/model"
)

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	Task model.Task // ID, Status and CreatedAt are set by the caller
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
type ListTasksOptions struct {
	AssignedToID string
	Status       string
	Limit        int
	Offset       int
}

// UpdateTaskOptions holds the mutable fields of a task.
type UpdateTaskOptions struct {
	ID              string
	Status          model.TaskStatus
	CalendarEventID string
	CalendarLink    string
	CompletedAt     *time.Time
	UpdatedAt       time.Time
}
