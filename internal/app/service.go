package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/ocean-tic-tac-toe/internal/domain"
)

// ErrNotFound is returned for operations on an unknown session.
var ErrNotFound = errors.New("session not found")

// Session holds the current game of one browser.
type Session struct {
	ID      string
	State   domain.GameState
	Created time.Time
	Updated time.Time
}

// Service keeps sessions in memory. All methods are safe for concurrent use
// and hand out copies, never the stored session.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates an empty service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		sessions: make(map[string]*Session),
		logger:   logger.With("component", "sessions"),
		now:      time.Now,
	}
}

// Open returns session id, or a new session with a fresh game when id is
// unknown or empty. Opening an existing session counts as activity.
func (s *Service) Open(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.Updated = s.now()
		cp := *sess
		return &cp
	}

	now := s.now()
	sess := &Session{ID: uuid.NewString(), State: domain.New(), Created: now, Updated: now}
	s.sessions[sess.ID] = sess
	s.logger.Debug("session opened", "session", sess.ID)
	cp := *sess
	return &cp
}

// Get returns a copy of the session if present.
func (s *Service) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	cp := *sess
	return &cp, true
}

// Play applies a move to the session's game. A move the engine ignores is
// not an error; the returned session then carries the unchanged state.
func (s *Service) Play(id string, index int) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	prev := sess.State
	next := domain.ApplyMove(prev, index)
	if next == prev {
		s.logger.Debug("move ignored", "session", id, "index", index, "terminal", prev.Terminal())
		cp := *sess
		return &cp, nil
	}
	sess.State = next
	sess.Updated = s.now()

	switch {
	case next.Winner != domain.NoPlayer:
		s.logger.Info("game won", "session", id, "winner", next.Winner.String(), "line", *next.WinningLine)
	case next.IsDraw:
		s.logger.Info("game drawn", "session", id)
	}
	cp := *sess
	return &cp, nil
}

// Reset starts a new game in the session.
func (s *Service) Reset(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.State = domain.New()
	sess.Updated = s.now()
	cp := *sess
	return &cp, nil
}

// Len returns the number of live sessions.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions that have not been touched within ttl and returns
// how many were removed.
func (s *Service) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	n := 0
	for id, sess := range s.sessions {
		if sess.Updated.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(ttl); n > 0 {
				s.logger.Info("swept idle sessions", "removed", n, "remaining", s.Len())
			}
		}
	}
}
