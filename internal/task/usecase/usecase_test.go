package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-assistant/internal/model"
	"clinic-assistant/internal/task"
	"clinic-assistant/internal/task/repository/memory"
	"clinic-assistant/internal/task/usecase"
	"clinic-assistant/pkg/datemath"
	"clinic-assistant/pkg/gcalendar"
	"clinic-assistant/pkg/log"
	"clinic-assistant/pkg/taskparser"
)

type mockCalendar struct {
	fail     bool
	requests []gcalendar.CreateEventRequest
	done     []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.fail {
		return nil, errors.New("calendar unavailable")
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.google.com/evt-1"}, nil
}

func (m *mockCalendar) MarkDone(ctx context.Context, calendarID, eventID, summary string) error {
	m.done = append(m.done, eventID)
	return nil
}

var (
	clock  = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	doctor = model.Scope{UserID: "u-doc", Username: "BS. Lan", Role: model.RoleDoctor}
	nurse  = model.Scope{UserID: "u-nurse", Username: "ĐD. Hoa", Role: model.RoleNurse}
	admin  = model.Scope{UserID: "u-admin", Username: "Admin", Role: model.RoleAdmin}
)

func newUseCase(t *testing.T, cal *mockCalendar) task.UseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath: %v", err)
	}
	opts := []usecase.Option{usecase.WithClock(func() time.Time { return clock })}
	if cal != nil {
		opts = append(opts, usecase.WithCalendar(cal, "clinic"))
	}
	return usecase.New(log.NewNop(), memory.New(log.NewNop()), dm, opts...)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores pending task for caller", func(t *testing.T) {
		uc := newUseCase(t, nil)
		out, err := uc.Create(ctx, doctor, task.CreateInput{Parsed: taskparser.ParsedTask{
			Title:    "Gọi lại cho bệnh nhân",
			Priority: taskparser.PriorityMedium,
			Type:     taskparser.TypePersonal,
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID == "" {
			t.Error("expected generated id")
		}
		if out.Task.Status != model.TaskStatusPending {
			t.Errorf("status = %s", out.Task.Status)
		}
		if out.Task.AssignedToID != doctor.UserID || out.Task.AssignedByID != doctor.UserID {
			t.Errorf("unexpected assignment: to=%s by=%s", out.Task.AssignedToID, out.Task.AssignedByID)
		}
		if !out.Task.CreatedAt.Equal(clock) {
			t.Errorf("created_at = %v", out.Task.CreatedAt)
		}
	})

	t.Run("explicit assignee wins", func(t *testing.T) {
		uc := newUseCase(t, nil)
		out, err := uc.Create(ctx, doctor, task.CreateInput{
			Parsed: taskparser.ParsedTask{
				Title:      "Lấy mẫu máu",
				AssignedTo: &taskparser.Person{ID: "u-other", Name: "Other"},
			},
			AssignedTo: &model.User{ID: nurse.UserID, Name: nurse.Username, Role: nurse.Role},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.AssignedToID != nurse.UserID {
			t.Errorf("assignee = %s", out.Task.AssignedToID)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		uc := newUseCase(t, nil)
		_, err := uc.Create(ctx, doctor, task.CreateInput{Parsed: taskparser.ParsedTask{Title: "  "}})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("no assignee", func(t *testing.T) {
		uc := newUseCase(t, nil)
		_, err := uc.Create(ctx, model.Scope{}, task.CreateInput{Parsed: taskparser.ParsedTask{Title: "x"}})
		if !errors.Is(err, task.ErrNoAssignee) {
			t.Errorf("expected ErrNoAssignee, got %v", err)
		}
	})

	t.Run("timed event with popup reminder", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newUseCase(t, cal)
		out, err := uc.Create(ctx, doctor, task.CreateInput{Parsed: taskparser.ParsedTask{
			Title:             "Họp khoa",
			Priority:          taskparser.PriorityUrgent,
			DueDate:           "2024-05-02",
			DueTime:           "14:30",
			ReminderEnabled:   true,
			ReminderDate:      "2024-05-02",
			ReminderTime:      "13:30",
			EstimatedDuration: 90,
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.requests) != 1 {
			t.Fatalf("expected 1 calendar request, got %d", len(cal.requests))
		}
		req := cal.requests[0]
		wantStart := time.Date(2024, 5, 2, 14, 30, 0, 0, time.UTC)
		if !req.StartTime.Equal(wantStart) || !req.EndTime.Equal(wantStart.Add(90*time.Minute)) {
			t.Errorf("unexpected range %v - %v", req.StartTime, req.EndTime)
		}
		if req.AllDay {
			t.Error("expected timed event")
		}
		if req.CalendarID != "clinic" {
			t.Errorf("calendar id = %s", req.CalendarID)
		}
		if len(req.Reminders) != 1 || req.Reminders[0].Minutes != 60 || req.Reminders[0].Method != gcalendar.ReminderPopup {
			t.Errorf("unexpected reminders: %+v", req.Reminders)
		}
		if out.Task.CalendarEventID != "evt-1" || out.Task.CalendarLink == "" {
			t.Errorf("calendar fields not stored: %+v", out.Task)
		}
	})

	t.Run("all day event without reminder", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newUseCase(t, cal)
		_, err := uc.Create(ctx, doctor, task.CreateInput{Parsed: taskparser.ParsedTask{
			Title:   "Nộp báo cáo",
			DueDate: "2024-05-03",
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req := cal.requests[0]
		if !req.AllDay {
			t.Error("expected all-day event")
		}
		if !req.EndTime.Equal(req.StartTime.AddDate(0, 0, 1)) {
			t.Errorf("unexpected range %v - %v", req.StartTime, req.EndTime)
		}
		if len(req.Reminders) != 0 {
			t.Errorf("unexpected reminders: %+v", req.Reminders)
		}
	})

	t.Run("reminder after start is dropped", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newUseCase(t, cal)
		_, err := uc.Create(ctx, doctor, task.CreateInput{Parsed: taskparser.ParsedTask{
			Title:           "Khám lại",
			DueDate:         "2024-05-02",
			DueTime:         "08:00",
			ReminderEnabled: true,
			ReminderDate:    "2024-05-02",
			ReminderTime:    "09:00",
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.requests[0].Reminders) != 0 {
			t.Errorf("expected no reminder, got %+v", cal.requests[0].Reminders)
		}
	})

	t.Run("no due date skips calendar", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newUseCase(t, cal)
		if _, err := uc.Create(ctx, doctor, task.CreateInput{Parsed: taskparser.ParsedTask{Title: "Việc chung"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.requests) != 0 {
			t.Errorf("expected no calendar call")
		}
	})

	t.Run("calendar failure still stores task", func(t *testing.T) {
		cal := &mockCalendar{fail: true}
		uc := newUseCase(t, cal)
		out, err := uc.Create(ctx, doctor, task.CreateInput{Parsed: taskparser.ParsedTask{
			Title:   "Họp",
			DueDate: "2024-05-02",
			DueTime: "10:00",
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID == "" || out.Task.CalendarLink != "" {
			t.Errorf("unexpected task: %+v", out.Task)
		}
	})
}

func TestListDetailComplete(t *testing.T) {
	ctx := context.Background()
	cal := &mockCalendar{}
	uc := newUseCase(t, cal)

	mine, _ := uc.Create(ctx, doctor, task.CreateInput{Parsed: taskparser.ParsedTask{Title: "Việc 1", DueDate: "2024-05-02", DueTime: "10:00"}})
	uc.Create(ctx, doctor, task.CreateInput{Parsed: taskparser.ParsedTask{Title: "Việc 2"}})
	delegated, _ := uc.Create(ctx, doctor, task.CreateInput{
		Parsed:     taskparser.ParsedTask{Title: "Việc của điều dưỡng"},
		AssignedTo: &model.User{ID: nurse.UserID, Name: nurse.Username},
	})

	t.Run("list returns own tasks newest first", func(t *testing.T) {
		out, err := uc.List(ctx, doctor, task.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 2 || len(out.Tasks) != 2 {
			t.Fatalf("expected 2 tasks, got total=%d len=%d", out.Total, len(out.Tasks))
		}
		if out.Tasks[0].Title != "Việc 2" {
			t.Errorf("expected newest first, got %s", out.Tasks[0].Title)
		}
		if out.Limit != 20 {
			t.Errorf("default limit = %d", out.Limit)
		}
	})

	t.Run("list clamps limit", func(t *testing.T) {
		out, err := uc.List(ctx, doctor, task.ListInput{Limit: 1000, Offset: -5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Limit != 100 || out.Offset != 0 {
			t.Errorf("limit=%d offset=%d", out.Limit, out.Offset)
		}
	})

	t.Run("list rejects unknown status", func(t *testing.T) {
		_, err := uc.List(ctx, doctor, task.ListInput{Status: "archived"})
		if !errors.Is(err, task.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("detail access", func(t *testing.T) {
		tests := []struct {
			name    string
			sc      model.Scope
			id      string
			wantErr error
		}{
			{"assignee", nurse, delegated.Task.ID, nil},
			{"assigner", doctor, delegated.Task.ID, nil},
			{"admin", admin, mine.Task.ID, nil},
			{"stranger", nurse, mine.Task.ID, task.ErrForbidden},
			{"missing", doctor, "nope", task.ErrTaskNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Detail(ctx, tt.sc, tt.id)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("got %v, want %v", err, tt.wantErr)
				}
			})
		}
	})

	t.Run("assigner cannot complete", func(t *testing.T) {
		_, err := uc.Complete(ctx, doctor, delegated.Task.ID)
		if !errors.Is(err, task.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("complete marks task and calendar event", func(t *testing.T) {
		out, err := uc.Complete(ctx, doctor, mine.Task.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Status != model.TaskStatusCompleted || out.Task.CompletedAt == nil {
			t.Errorf("task not completed: %+v", out.Task)
		}
		if len(cal.done) != 1 || cal.done[0] != "evt-1" {
			t.Errorf("calendar not updated: %v", cal.done)
		}

		again, err := uc.Complete(ctx, doctor, mine.Task.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Task.Status != model.TaskStatusCompleted || len(cal.done) != 1 {
			t.Errorf("second completion should be a no-op")
		}

		pending, _ := uc.List(ctx, doctor, task.ListInput{Status: string(model.TaskStatusPending)})
		if pending.Total != 1 {
			t.Errorf("pending total = %d", pending.Total)
		}
	})
}
