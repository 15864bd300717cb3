package generator

import "github.com/kezhang/textsmith/pkg/metrics"

// Config configures the generation behavior.
type Config struct {
	// DefaultMaxWords is used when a request does not name a length.
	DefaultMaxWords int
	// Seed pins the random source when non-zero, for reproducible output.
	Seed int64
}

// Request represents the incoming generation payload.
type Request struct {
	Prompt    string `json:"prompt"`
	MaxLength int    `json:"max_length,omitempty"`
}

// Response is returned by the generation endpoint.
type Response struct {
	GeneratedText string            `json:"generated_text"`
	Stats         metrics.TextStats `json:"stats"`
	DurationMs    int64             `json:"durationMs,omitempty"`
}
