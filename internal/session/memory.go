package session

import (
	"context"
	"sync"

	"github.com/shelfwise/shelfwise/pkg/models"
)

// MemoryStore keeps the slot in process memory. Used by tests and by the
// client when no redis is reachable; the session then lasts for the process.
type MemoryStore struct {
	mu   sync.Mutex
	user *models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Current(context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, ErrNoSession
	}
	copied := *s.user
	return &copied, nil
}

func (s *MemoryStore) Save(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.user = &copied
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
