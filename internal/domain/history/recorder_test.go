package history

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	inserted  []Record
	insertErr error
}

func (s *stubRepository) Insert(_ context.Context, record Record) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, record)
	return nil
}

func (s *stubRepository) Recent(_ context.Context, limit int) ([]Record, error) {
	if limit > len(s.inserted) {
		limit = len(s.inserted)
	}
	return s.inserted[:limit], nil
}

func newTestRecorder(repo Repository, cfg Config) *Recorder {
	return NewRecorder(cfg, repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRecorderStoresTruncatedFields(t *testing.T) {
	repo := &stubRepository{}
	recorder := newTestRecorder(repo, Config{Enabled: true, MaxFieldBytes: 10})

	recorder.Record(context.Background(), KindGenerate, strings.Repeat("x", 50), "short", 7)

	require.Len(t, repo.inserted, 1)
	record := repo.inserted[0]
	require.Equal(t, KindGenerate, record.Kind)
	require.Len(t, record.Input, 10)
	require.Equal(t, "short", record.Output)
	require.Equal(t, 7, record.WordCount)
	require.NotZero(t, record.ID)
	require.False(t, record.CreatedAt.IsZero())
}

func TestRecorderTruncatesOnRuneBoundary(t *testing.T) {
	repo := &stubRepository{}
	recorder := newTestRecorder(repo, Config{Enabled: true, MaxFieldBytes: 4})

	recorder.Record(context.Background(), KindSummarize, "aé é", "", 0)

	require.Len(t, repo.inserted, 1)
	require.Equal(t, "aé ", repo.inserted[0].Input)
}

func TestRecorderDisabledSkipsRepository(t *testing.T) {
	repo := &stubRepository{}
	recorder := newTestRecorder(repo, Config{Enabled: false, MaxFieldBytes: 10})

	recorder.Record(context.Background(), KindGenerate, "input", "output", 1)
	require.Empty(t, repo.inserted)

	records, err := recorder.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestRecorderSwallowsInsertErrors(t *testing.T) {
	repo := &stubRepository{insertErr: errors.New("db down")}
	recorder := newTestRecorder(repo, Config{Enabled: true, MaxFieldBytes: 10})

	recorder.Record(context.Background(), KindGenerate, "input", "output", 1)
	require.Empty(t, repo.inserted)
}
