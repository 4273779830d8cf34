package usecase

import (
	"context"
	"fmt"

	"clinic-assistant/internal/model"
	"clinic-assistant/internal/task"
	"clinic-assistant/internal/task/repository"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// List returns the caller's tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	switch model.TaskStatus(input.Status) {
	case "", model.TaskStatusPending, model.TaskStatusCompleted:
	default:
		return task.ListOutput{}, task.ErrInvalidStatus
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := max(input.Offset, 0)

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		AssignedToID: sc.UserID,
		Status:       input.Status,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.List: repo.ListTasks: %v", err)
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return task.ListOutput{Tasks: tasks, Total: total, Limit: limit, Offset: offset}, nil
}

// Detail returns a task visible to the caller: its assignee, its assigner or an admin.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	if sc.Role != model.RoleAdmin && t.AssignedToID != sc.UserID && t.AssignedByID != sc.UserID {
		return task.DetailOutput{}, task.ErrForbidden
	}
	return task.DetailOutput{Task: t}, nil
}

// Complete marks the task done. Only the assignee or an admin may complete it;
// completing twice returns the task unchanged.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	if sc.Role != model.RoleAdmin && t.AssignedToID != sc.UserID {
		return task.DetailOutput{}, task.ErrForbidden
	}
	if t.Status == model.TaskStatusCompleted {
		return task.DetailOutput{Task: t}, nil
	}

	now := uc.now()
	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          id,
		Status:      model.TaskStatusCompleted,
		CompletedAt: &now,
		UpdatedAt:   now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Complete: repo.UpdateTask: %v", err)
		return task.DetailOutput{}, fmt.Errorf("failed to complete task: %w", err)
	}
	if updated.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}

	if uc.calendar != nil && updated.CalendarEventID != "" {
		if err := uc.calendar.MarkDone(ctx, uc.calendarID, updated.CalendarEventID, updated.Title); err != nil {
			uc.l.Warnf(ctx, "internal.task.usecase.Complete: calendar update failed for %s (non-fatal): %v", id, err)
		}
	}

	return task.DetailOutput{Task: updated}, nil
}

func (uc *implUseCase) get(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.get: repo.GetTask: %v", err)
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
