package repository

import (
	"context"

	"clinic-assistant/internal/model"
)

// Repository is the data store for persisted tasks.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetTask returns a zero-value Task (ID == "") when not found.
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
}
