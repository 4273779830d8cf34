package postgre

import (
	"reflect"
	"testing"

	repo "clinic-assistant/internal/task/repository"
)

func TestBuildCountQuery(t *testing.T) {
	tests := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no filters",
			opt:     repo.ListTasksOptions{},
			wantSQL: "SELECT COUNT(*) FROM tasks",
		},
		{
			name:     "assignee and status",
			opt:      repo.ListTasksOptions{AssignedToID: "u1", Status: "pending", Limit: 5},
			wantSQL:  "SELECT COUNT(*) FROM tasks WHERE assigned_to_id = $1 AND status = $2",
			wantArgs: []any{"u1", "pending"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildCountQuery(tt.opt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Errorf("args = %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no filters",
			opt:     repo.ListTasksOptions{},
			wantSQL: "SELECT id, title FROM tasks ORDER BY created_at DESC",
		},
		{
			name:     "assignee and page",
			opt:      repo.ListTasksOptions{AssignedToID: "u1", Limit: 20, Offset: 40},
			wantSQL:  "SELECT id, title FROM tasks WHERE assigned_to_id = $1 ORDER BY created_at DESC LIMIT 20 OFFSET 40",
			wantArgs: []any{"u1"},
		},
		{
			name:     "all filters",
			opt:      repo.ListTasksOptions{AssignedToID: "u1", Status: "pending", Limit: 5},
			wantSQL:  "SELECT id, title FROM tasks WHERE assigned_to_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT 5",
			wantArgs: []any{"u1", "pending"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildListQuery("id, title", tt.opt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Errorf("args = %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}
