package memory

import (
	"context"
	"fmt"

	"clinic-assistant/internal/model"
	"clinic-assistant/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := opt.Task
	if t.ID == "" {
		r.l.Errorf(ctx, "task/repository/memory.CreateTask: missing id")
		return model.Task{}, repository.ErrFailedToInsert
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[t.ID]; exists {
		r.l.Errorf(ctx, "task/repository/memory.CreateTask: duplicate id %s", t.ID)
		return model.Task{}, fmt.Errorf("%w: duplicate id", repository.ErrFailedToInsert)
	}
	t.Tags = append([]string(nil), t.Tags...)
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tasks[id], nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []model.Task
	// Newest first.
	for i := len(r.order) - 1; i >= 0; i-- {
		t := r.tasks[r.order[i]]
		if opt.AssignedToID != "" && t.AssignedToID != opt.AssignedToID {
			continue
		}
		if opt.Status != "" && string(t.Status) != opt.Status {
			continue
		}
		matched = append(matched, t)
	}

	total := len(matched)
	if opt.Offset >= total {
		return []model.Task{}, total, nil
	}
	end := total
	if opt.Limit > 0 && opt.Offset+opt.Limit < total {
		end = opt.Offset + opt.Limit
	}
	return matched[opt.Offset:end], total, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	if opt.Status != "" {
		t.Status = opt.Status
	}
	if opt.CalendarEventID != "" {
		t.CalendarEventID = opt.CalendarEventID
	}
	if opt.CalendarLink != "" {
		t.CalendarLink = opt.CalendarLink
	}
	if opt.CompletedAt != nil {
		completed := *opt.CompletedAt
		t.CompletedAt = &completed
	}
	if !opt.UpdatedAt.IsZero() {
		t.UpdatedAt = opt.UpdatedAt
	}
	r.tasks[opt.ID] = t
	return t, nil
}
