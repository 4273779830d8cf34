package task

import (
	"context"

	"clinic-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create stores a task captured from chat and schedules it in Google Calendar when possible.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the tasks assigned to the caller, newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Complete(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
}
