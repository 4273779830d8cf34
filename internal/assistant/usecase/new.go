package usecase

import (
	"clinic-assistant/internal/assistant"
	"clinic-assistant/internal/router"
	"clinic-assistant/internal/stats"
	"clinic-assistant/internal/task"
	"clinic-assistant/internal/transcript"
	pkgLog "clinic-assistant/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	router      router.Router
	transcripts *transcript.Store
	stats       *stats.Snapshot
	tasks       task.UseCase
}

// New creates the assistant use case. tasks may be nil, which disables task capture.
func New(
	l pkgLog.Logger,
	r router.Router,
	transcripts *transcript.Store,
	snapshot *stats.Snapshot,
	tasks task.UseCase,
) assistant.UseCase {
	return &implUseCase{
		l:           l,
		router:      r,
		transcripts: transcripts,
		stats:       snapshot,
		tasks:       tasks,
	}
}
