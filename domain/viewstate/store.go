package viewstate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/pkg/logger"
	"github.com/wutian475-collab/wutian111/pkg/metrics"
)

// Store maps visitor session ids to their controllers.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Controller

	intake contact.Intake
	hold   time.Duration
	ttl    time.Duration
	log    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewStore creates an empty session store. Sessions idle longer than ttl are
// removed by Sweep.
func NewStore(intake contact.Intake, hold, ttl time.Duration, log *slog.Logger) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	return &Store{
		sessions: make(map[string]*Controller),
		intake:   intake,
		hold:     hold,
		ttl:      ttl,
		log:      log.With(logger.Scope("viewstate.store")),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Get returns the controller for id and marks it active.
func (s *Store) Get(id string) (*Controller, bool) {
	s.mu.RLock()
	c, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		c.Touch()
	}
	return c, ok
}

// Create starts a new session and returns its id.
func (s *Store) Create() (string, *Controller) {
	id := uuid.NewString()
	c := NewController(s.ctx, s.intake, s.hold, s.log)

	s.mu.Lock()
	s.sessions[id] = c
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return id, c
}

// GetOrCreate returns the session for id, creating a new one when id is
// unknown. created reports whether a new id was issued.
func (s *Store) GetOrCreate(id string) (string, *Controller, bool) {
	if id != "" {
		if c, ok := s.Get(id); ok {
			return id, c, false
		}
	}
	newID, c := s.Create()
	return newID, c, true
}

// Sweep removes sessions whose last event is older than the ttl and returns
// how many were removed.
func (s *Store) Sweep(now time.Time) int {
	var expired []*Controller

	s.mu.Lock()
	for id, c := range s.sessions {
		if now.Sub(c.LastSeen()) > s.ttl {
			expired = append(expired, c)
			delete(s.sessions, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	for _, c := range expired {
		c.Close()
	}

	metrics.ActiveSessions.Set(float64(n))
	if len(expired) > 0 {
		metrics.SessionsSwept.Add(float64(len(expired)))
		s.log.Debug("swept idle sessions",
			slog.Int("removed", len(expired)),
			slog.Int("remaining", n),
		)
	}
	return len(expired)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close cancels every session.
func (s *Store) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Controller)
	s.mu.Unlock()

	s.cancel()
	for _, c := range sessions {
		c.Close()
	}
	metrics.ActiveSessions.Set(0)
}
