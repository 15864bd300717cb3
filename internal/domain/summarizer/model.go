package summarizer

import (
	"context"
	"time"

	"github.com/kezhang/textsmith/pkg/metrics"
)

// Config configures the summarizer heuristics.
type Config struct {
	// DefaultMaxSentences is used when a request does not name a budget.
	DefaultMaxSentences int
	// CacheTTL bounds how long computed summaries stay cached.
	CacheTTL time.Duration
}

// Request represents the incoming summarization payload.
type Request struct {
	Text         string `json:"text"`
	MaxSentences int    `json:"max_sentences,omitempty"`
}

// Response is returned by the summarize endpoint.
type Response struct {
	Summary    string            `json:"summary"`
	Cached     bool              `json:"cached,omitempty"`
	Stats      metrics.TextStats `json:"stats"`
	DurationMs int64             `json:"durationMs,omitempty"`
}

// Store caches computed summaries keyed by content hash.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key, summary string, ttl time.Duration) error
}
