package summarystore

import (
	"context"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/kezhang/textsmith/internal/domain/summarizer"
)

// ValkeyStore caches summaries in a Valkey-compatible database so replicas
// share one cache.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "summary"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements summarizer.Store.
func (s *ValkeyStore) Get(ctx context.Context, key string) (string, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	summary, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return summary, true, nil
}

// Save caches the summary with optional TTL.
func (s *ValkeyStore) Save(ctx context.Context, key, summary string, ttl time.Duration) error {
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(summary)
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return s.prefix + ":" + key
}

var _ summarizer.Store = (*ValkeyStore)(nil)
