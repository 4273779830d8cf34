// Package stats holds the latest record counts pushed by the clinic front-end.
package stats

import (
	"sync"

	"clinic-assistant/internal/model"
)

// Snapshot is a concurrency-safe holder of model.Stats.
type Snapshot struct {
	mu    sync.RWMutex
	stats model.Stats
}

// New creates a Snapshot starting at initial.
func New(initial model.Stats) *Snapshot {
	return &Snapshot{stats: initial}
}

// Get returns the current counts.
func (s *Snapshot) Get() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Set replaces the current counts.
func (s *Snapshot) Set(stats model.Stats) {
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
}
