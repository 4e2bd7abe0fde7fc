package session

import (
	"context"
	"sync"

	"github.com/freshnest/bookingadmin/internal/entity"
)

// MemoryStore keeps sessions in process memory. Used in tests and as a
// fallback when no Redis address is configured; sessions then survive a
// client reload but not a server restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.AdminSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]entity.AdminSession)}
}

func (s *MemoryStore) Read(_ context.Context, sid string) (entity.AdminSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sid], nil
}

func (s *MemoryStore) Write(_ context.Context, sid string, sess entity.AdminSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = sess
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
