package historyrepo

import (
	"context"
	"sync"

	"github.com/kezhang/textsmith/internal/domain/history"
)

const maxMemoryRecords = 1000

// MemoryRepository is an in-memory history.Repository used for tests/dev and
// as the fallback when no Postgres DSN is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []history.Record
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Insert implements history.Repository. The oldest record is dropped once
// the in-memory cap is reached.
func (r *MemoryRepository) Insert(_ context.Context, record history.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	if len(r.records) > maxMemoryRecords {
		r.records = r.records[len(r.records)-maxMemoryRecords:]
	}
	return nil
}

// Recent implements history.Repository, newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]history.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]history.Record, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

var _ history.Repository = (*MemoryRepository)(nil)
