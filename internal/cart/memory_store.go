package cart

import (
	"context"
	"sync"
)

// MemoryStore is the default Store: process-local, lost on restart. The
// Redis-backed store in adapter/cache replaces it in deployments that need
// carts to survive the process.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.carts[sessionID]
	// copy the slice so callers cannot mutate stored state
	out := Cart{Items: make([]LineItem, len(c.Items))}
	copy(out.Items, c.Items)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := Cart{Items: make([]LineItem, len(c.Items))}
	copy(stored.Items, c.Items)
	s.carts[sessionID] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

var _ Store = (*MemoryStore)(nil)
