package usecase

import (
	"context"
	"time"

	"clinic-assistant/internal/task"
	"clinic-assistant/internal/task/repository"
	"clinic-assistant/pkg/datemath"
	"clinic-assistant/pkg/gcalendar"
	pkgLog "clinic-assistant/pkg/log"
)

// Calendar is the subset of the Google Calendar client the task use case needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	MarkDone(ctx context.Context, calendarID, eventID, summary string) error
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   Calendar
	dateMath   *datemath.Parser
	calendarID string
	now        func() time.Time
}

// Option customises the use case.
type Option func(*implUseCase)

// WithCalendar enables Google Calendar sync. Tasks are still stored when it is absent.
func WithCalendar(c Calendar, calendarID string) Option {
	return func(uc *implUseCase) {
		uc.calendar = c
		uc.calendarID = calendarID
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser, opts ...Option) task.UseCase {
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
