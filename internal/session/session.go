// Package session holds one caller-owned todo list and feeds actions through
// the reducer.
package session

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/reducer"
)

// Session owns a list for its lifetime. Sessions share nothing with each
// other; a single session may be used from several goroutines.
type Session struct {
	id      string
	reducer reducer.Reducer
	logger  *log.Logger

	mu    sync.Mutex
	items model.List
}

// Option configures a Session.
type Option func(*Session)

func WithReducer(r reducer.Reducer) Option {
	return func(s *Session) { s.reducer = r }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a session with an empty list.
func New(opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		reducer: reducer.New(reducer.UUIDs()),
		logger:  logging.Discard(),
		items:   model.List{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id[:8])
	return s
}

func (s *Session) ID() string { return s.id }

// Dispatch validates a, applies it and returns the new list. A malformed
// action is rejected with action.ErrInvalidAction and the list is kept.
func (s *Session) Dispatch(a action.Action) (model.List, error) {
	if err := action.Validate(a); err != nil {
		s.logger.Warn("rejected action", "err", err)
		return s.Items(), fmt.Errorf("dispatch: %w", err)
	}

	s.mu.Lock()
	prev := len(s.items)
	s.items = s.reducer.Transition(s.items, a)
	out := s.items.Clone()
	s.mu.Unlock()

	s.logger.Debug("dispatch", "kind", a.Kind(), "before", prev, "after", len(out))
	return out, nil
}

// Items returns a copy of the current list.
func (s *Session) Items() model.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Clone()
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Session) Stats() (done, pending int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Stats()
}
