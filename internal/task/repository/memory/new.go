package memory

import (
	"sync"

	"clinic-assistant/internal/model"
	"clinic-assistant/internal/task/repository"
	"clinic-assistant/pkg/log"
)

type implRepository struct {
	l     log.Logger
	mu    sync.RWMutex
	tasks map[string]model.Task
	order []string // insertion order
}

// New creates an in-process Repository. Data is lost on restart.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:     l,
		tasks: make(map[string]model.Task),
	}
}
