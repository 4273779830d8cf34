package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-assistant/internal/model"
	"clinic-assistant/internal/task/repository"
	"clinic-assistant/internal/task/repository/memory"
	"clinic-assistant/pkg/log"
)

func seed(t *testing.T, repo repository.Repository, id, assignee string, status model.TaskStatus) {
	t.Helper()
	_, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{Task: model.Task{
		ID:           id,
		Title:        id,
		Status:       status,
		AssignedToID: assignee,
		CreatedAt:    time.Now(),
	}})
	if err != nil {
		t.Fatalf("CreateTask(%s): %v", id, err)
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := memory.New(log.NewNop())
	ctx := context.Background()

	seed(t, repo, "t1", "u1", model.TaskStatusPending)

	got, err := repo.GetTask(ctx, "t1")
	if err != nil || got.ID != "t1" {
		t.Fatalf("GetTask = %+v, %v", got, err)
	}

	missing, err := repo.GetTask(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Errorf("expected zero task for missing id, got %+v, %v", missing, err)
	}

	_, err = repo.CreateTask(ctx, repository.CreateTaskOptions{Task: model.Task{ID: "t1"}})
	if !errors.Is(err, repository.ErrFailedToInsert) {
		t.Errorf("duplicate insert err = %v", err)
	}
}

func TestListTasks(t *testing.T) {
	repo := memory.New(log.NewNop())
	ctx := context.Background()

	seed(t, repo, "t1", "u1", model.TaskStatusPending)
	seed(t, repo, "t2", "u2", model.TaskStatusPending)
	seed(t, repo, "t3", "u1", model.TaskStatusCompleted)
	seed(t, repo, "t4", "u1", model.TaskStatusPending)

	tests := []struct {
		name      string
		opt       repository.ListTasksOptions
		wantIDs   []string
		wantTotal int
	}{
		{name: "by assignee newest first", opt: repository.ListTasksOptions{AssignedToID: "u1"}, wantIDs: []string{"t4", "t3", "t1"}, wantTotal: 3},
		{name: "by status", opt: repository.ListTasksOptions{AssignedToID: "u1", Status: "pending"}, wantIDs: []string{"t4", "t1"}, wantTotal: 2},
		{name: "paged", opt: repository.ListTasksOptions{AssignedToID: "u1", Limit: 1, Offset: 1}, wantIDs: []string{"t3"}, wantTotal: 3},
		{name: "offset past end", opt: repository.ListTasksOptions{AssignedToID: "u1", Offset: 10}, wantIDs: []string{}, wantTotal: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := repo.ListTasks(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListTasks: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d tasks, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestUpdateTask(t *testing.T) {
	repo := memory.New(log.NewNop())
	ctx := context.Background()
	seed(t, repo, "t1", "u1", model.TaskStatusPending)

	now := time.Now()
	got, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          "t1",
		Status:      model.TaskStatusCompleted,
		CompletedAt: &now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if got.Status != model.TaskStatusCompleted || got.CompletedAt == nil {
		t.Errorf("unexpected task %+v", got)
	}

	missing, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: "nope", Status: model.TaskStatusCompleted})
	if err != nil || missing.ID != "" {
		t.Errorf("expected zero task for missing id, got %+v, %v", missing, err)
	}
}
