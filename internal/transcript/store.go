// Package transcript keeps the append-only chat log of each session.
package transcript

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"clinic-assistant/internal/model"
)

const (
	DefaultCapacity = 1000
	DefaultTTL      = 24 * time.Hour
)

// Store holds transcripts keyed by session. Idle sessions expire after the
// configured TTL; the least recently used session is evicted when full.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
	now      func() time.Time
}

// Option customises a Store.
type Option func(*Store)

type session struct {
	messages []model.Message
}

// WithClock overrides the time source for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Store. Non-positive capacity or ttl use the defaults.
func New(capacity int, ttl time.Duration, opts ...Option) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		sessions: expirable.NewLRU[string, *session](capacity, nil, ttl),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds msg to the end of the session log and returns it as stored.
// Missing IDs and timestamps are filled in.
func (s *Store) Append(key string, msg model.Message) model.Message {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}
	msg = clone(msg)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(key)
	if !ok {
		sess = &session{}
		s.sessions.Add(key, sess)
	}
	sess.messages = append(sess.messages, msg)

	return clone(msg)
}

// List returns the session log in insertion order.
func (s *Store) List(key string) []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(key)
	if !ok {
		return []model.Message{}
	}
	out := make([]model.Message, len(sess.messages))
	for i, m := range sess.messages {
		out[i] = clone(m)
	}
	return out
}

// Len returns the number of messages in the session.
func (s *Store) Len(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(key)
	if !ok {
		return 0
	}
	return len(sess.messages)
}

// Last returns the most recent message of type t.
func (s *Store) Last(key string, t model.MessageType) (model.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(key)
	if !ok {
		return model.Message{}, false
	}
	for i := len(sess.messages) - 1; i >= 0; i-- {
		if sess.messages[i].Type == t {
			return clone(sess.messages[i]), true
		}
	}
	return model.Message{}, false
}

// Reset drops the whole session log.
func (s *Store) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Remove(key)
}

// clone detaches the suggestion slice so callers cannot edit stored messages.
func clone(m model.Message) model.Message {
	if m.Suggestions != nil {
		m.Suggestions = append([]string(nil), m.Suggestions...)
	}
	return m
}
