package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/editsession"
)

// EditSessionStore keeps live edit sessions in memory. A session is owned by
// exactly one edit screen, so a shared external cache would add nothing but
// a second owner; the per-session mutex in Update serializes guard
// decisions and saves.
type EditSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	session *editsession.Session
}

func NewEditSessionStore() *EditSessionStore {
	return &EditSessionStore{
		sessions: make(map[string]*entry),
	}
}

// Create implements editsession.Store.
func (s *EditSessionStore) Create(ctx context.Context, sess *editsession.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; ok {
		return editsession.ErrSessionExists
	}
	s.sessions[sess.ID] = &entry{session: sess}
	return nil
}

// Update implements editsession.Store. fn runs with the session's lock held.
func (s *EditSessionStore) Update(ctx context.Context, id string, fn func(*editsession.Session) error) error {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return editsession.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.LastTouched = time.Now()
	return fn(e.session)
}

// Delete implements editsession.Store.
func (s *EditSessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return editsession.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// DeleteStale implements editsession.Store.
func (s *EditSessionStore) DeleteStale(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, e := range s.sessions {
		if e.session.LastTouched.Before(cutoff) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped, nil
}

// Len returns the number of live sessions.
func (s *EditSessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
