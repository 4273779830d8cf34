package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"clinic-assistant/internal/model"
	"clinic-assistant/internal/task"
	"clinic-assistant/internal/task/repository"
	"clinic-assistant/pkg/gcalendar"
	"clinic-assistant/pkg/taskparser"
)

const (
	defaultEventMinutes = 60
	clockLayout         = "15:04"
)

// Create stores a parsed task and schedules it in Google Calendar when a due date is known.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	p := input.Parsed
	if strings.TrimSpace(p.Title) == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	assignee := resolveAssignee(sc, input)
	if assignee.ID == "" {
		return task.CreateOutput{}, task.ErrNoAssignee
	}

	now := uc.now()
	t := model.Task{
		ID:                uuid.NewString(),
		Title:             p.Title,
		Description:       p.Description,
		Priority:          string(p.Priority),
		Category:          p.Category,
		Tags:              p.Tags,
		Type:              string(p.Type),
		Status:            model.TaskStatusPending,
		DueDate:           p.DueDate,
		DueTime:           p.DueTime,
		ReminderEnabled:   p.ReminderEnabled,
		ReminderDate:      p.ReminderDate,
		ReminderTime:      p.ReminderTime,
		EstimatedDuration: p.EstimatedDuration,
		AssignedToID:      assignee.ID,
		AssignedToName:    assignee.Name,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if p.AssignedBy != nil {
		t.AssignedByID, t.AssignedByName = p.AssignedBy.ID, p.AssignedBy.Name
	} else {
		t.AssignedByID, t.AssignedByName = sc.UserID, sc.Username
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Create: repo.CreateTask: %v", err)
		return task.CreateOutput{}, fmt.Errorf("failed to store task: %w", err)
	}

	uc.l.Infof(ctx, "internal.task.usecase.Create: task=%s assignee=%s due=%s %s", created.ID, created.AssignedToID, created.DueDate, created.DueTime)

	if event := uc.tryCreateCalendarEvent(ctx, created); event != nil {
		updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
			ID:              created.ID,
			CalendarEventID: event.ID,
			CalendarLink:    event.HtmlLink,
			UpdatedAt:       uc.now(),
		})
		if err != nil {
			uc.l.Warnf(ctx, "internal.task.usecase.Create: saving calendar link for %s failed (non-fatal): %v", created.ID, err)
		} else if updated.ID != "" {
			created = updated
		}
	}

	return task.CreateOutput{Task: created}, nil
}

func resolveAssignee(sc model.Scope, input task.CreateInput) model.User {
	if input.AssignedTo != nil && input.AssignedTo.ID != "" {
		return *input.AssignedTo
	}
	if to := input.Parsed.AssignedTo; to != nil && to.ID != "" {
		return model.User{ID: to.ID, Name: to.Name, Role: model.ParseRole(to.Role)}
	}
	return sc.User()
}

// tryCreateCalendarEvent returns nil when there is nothing to schedule or the
// calendar rejected the event (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) *gcalendar.Event {
	if uc.calendar == nil || t.DueDate == "" {
		return nil
	}

	req, err := uc.buildEventRequest(t)
	if err != nil {
		uc.l.Warnf(ctx, "internal.task.usecase.tryCreateCalendarEvent: %s: %v", t.ID, err)
		return nil
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "internal.task.usecase.tryCreateCalendarEvent: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return nil
	}
	return event
}

func (uc *implUseCase) buildEventRequest(t model.Task) (gcalendar.CreateEventRequest, error) {
	loc := uc.dateMath.Location()
	day, err := time.ParseInLocation("2006-01-02", t.DueDate, loc)
	if err != nil {
		return gcalendar.CreateEventRequest{}, fmt.Errorf("invalid due date %q: %w", t.DueDate, err)
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: eventDescription(t),
		Timezone:    loc.String(),
	}

	if t.DueTime == "" {
		req.AllDay = true
		req.StartTime = day
		req.EndTime = day.AddDate(0, 0, 1)
	} else {
		start, err := atClock(day, t.DueTime)
		if err != nil {
			return gcalendar.CreateEventRequest{}, err
		}
		minutes := t.EstimatedDuration
		if minutes <= 0 {
			minutes = defaultEventMinutes
		}
		req.StartTime = start
		req.EndTime = start.Add(time.Duration(minutes) * time.Minute)
	}

	if r, ok := reminderOffset(t, req.StartTime, loc); ok {
		req.Reminders = []gcalendar.Reminder{{Method: gcalendar.ReminderPopup, Minutes: r}}
	}
	return req, nil
}

// reminderOffset converts the task's reminder date and time into minutes before start.
func reminderOffset(t model.Task, start time.Time, loc *time.Location) (int64, bool) {
	if !t.ReminderEnabled || t.ReminderTime == "" {
		return 0, false
	}
	date := t.ReminderDate
	if date == "" {
		date = t.DueDate
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return 0, false
	}
	at, err := atClock(day, t.ReminderTime)
	if err != nil {
		return 0, false
	}
	minutes := int64(start.Sub(at) / time.Minute)
	if minutes < 0 || minutes > gcalendar.MaxReminderMinutes {
		return 0, false
	}
	return minutes, true
}

func atClock(day time.Time, hhmm string) (time.Time, error) {
	c, err := time.Parse(clockLayout, hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, day.Location()), nil
}

func eventDescription(t model.Task) string {
	var b strings.Builder
	if t.Description != "" {
		b.WriteString(t.Description)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Ưu tiên: %s", t.Priority)
	if t.Category != "" {
		fmt.Fprintf(&b, "\nDanh mục: %s", t.Category)
	}
	if t.Type == string(taskparser.TypeAssigned) && t.AssignedByName != "" {
		fmt.Fprintf(&b, "\nGiao bởi: %s", t.AssignedByName)
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "\nThẻ: #%s", strings.Join(t.Tags, " #"))
	}
	return b.String()
}
