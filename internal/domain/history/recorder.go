package history

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kezhang/textsmith/pkg/util"
)

// Config controls history recording.
type Config struct {
	Enabled       bool
	MaxFieldBytes int
}

// Recorder writes best-effort history records; failures are logged, never
// returned, so a broken repository cannot fail a text request.
type Recorder struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger
}

// NewRecorder is a wire provider for the history domain.
func NewRecorder(cfg Config, repo Repository, logger *slog.Logger) *Recorder {
	return &Recorder{cfg: cfg, repo: repo, logger: logger.With("component", "history.recorder")}
}

// Record stores one processed request. Input and output are truncated to the
// configured byte cap before persisting.
func (r *Recorder) Record(ctx context.Context, kind Kind, input, output string, wordCount int) {
	if !r.cfg.Enabled || r.repo == nil {
		return
	}
	record := Record{
		ID:        uuid.New(),
		Kind:      kind,
		Input:     truncateBytes(input, r.cfg.MaxFieldBytes),
		Output:    truncateBytes(output, r.cfg.MaxFieldBytes),
		WordCount: wordCount,
		CreatedAt: util.NowUTC(),
	}
	if err := r.repo.Insert(ctx, record); err != nil {
		r.logger.Warn("history insert failed", "kind", kind, "error", err)
	}
}

// Recent returns the newest records, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]Record, error) {
	if !r.cfg.Enabled || r.repo == nil {
		return nil, nil
	}
	return r.repo.Recent(ctx, limit)
}

func truncateBytes(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
