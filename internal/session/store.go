package session

import (
	"sync"

	"minimarket/internal/cart"
)

// Session is the per-browser state the old ambient session map used to hold:
// the authenticated username and the shopping cart. The cart never touches
// the database and dies with the session.
type Session struct {
	Username string
	Cart     *cart.Cart
}

// Store keeps sessions in process memory, keyed by the sid cookie. The lock
// only guards the map; mutating one Session from two simultaneous requests
// of the same browser is not coordinated.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for sid, or nil when none exists.
func (s *Store) Get(sid string) *Session {
	if sid == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sid]
}

func (s *Store) Set(sid string, ses *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = ses
}

// Ensure returns the session for sid, creating an empty one on first use.
func (s *Store) Ensure(sid string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	ses := s.sessions[sid]
	if ses == nil {
		ses = &Session{}
		s.sessions[sid] = ses
	}
	return ses
}

func (s *Store) Invalidate(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
}
