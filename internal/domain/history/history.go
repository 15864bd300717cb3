package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind labels which operation produced a record.
type Kind string

const (
	KindGenerate  Kind = "generate"
	KindSummarize Kind = "summarize"
)

// Record is one processed request kept for the history endpoint.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	WordCount int       `json:"wordCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository persists history records.
type Repository interface {
	Insert(ctx context.Context, record Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
}
