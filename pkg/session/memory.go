package session

import (
	"context"
	"sync"
	"time"

	"github.com/pipesmith/pipesmith/pkg/observability"
)

// MemoryStore is an in-memory result store for development and testing.
// Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[string]*Result
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{results: make(map[string]*Result)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Result, error) {
	s.mu.RLock()
	res, ok := s.results[id]
	s.mu.RUnlock()

	if !ok {
		observability.Store().OnStoreMiss(ctx, "memory")
		return nil, nil
	}
	if res.IsExpired() {
		s.mu.Lock()
		delete(s.results, id)
		s.mu.Unlock()
		observability.Store().OnStoreMiss(ctx, "memory")
		return nil, nil
	}
	observability.Store().OnStoreHit(ctx, "memory")
	return res, nil
}

func (s *MemoryStore) Set(ctx context.Context, result *Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.ID] = result
	observability.Store().OnStoreSet(ctx, "memory", len(result.Files))
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, id)
	return nil
}

func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, res := range s.results {
		if now.After(res.ExpiresAt) {
			delete(s.results, id)
		}
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
