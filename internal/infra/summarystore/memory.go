package summarystore

import (
	"context"
	"sync"
	"time"

	"github.com/kezhang/textsmith/internal/domain/summarizer"
)

type entry struct {
	summary   string
	expiresAt time.Time
}

// MemoryStore is an in-memory summary cache for tests/dev and the default
// when no cache backend is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

// Get implements summarizer.Store.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	item, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if hasExpired(item.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return "", false, nil
	}
	return item.summary, true, nil
}

// Save caches the summary with optional TTL.
func (s *MemoryStore) Save(_ context.Context, key, summary string, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = entry{summary: summary, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ summarizer.Store = (*MemoryStore)(nil)
