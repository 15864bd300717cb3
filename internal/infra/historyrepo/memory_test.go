package historyrepo

import (
	"context"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kezhang/textsmith/internal/domain/history"
)

func TestMemoryRepositoryRecentNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, history.Record{
			ID:    uuid.New(),
			Kind:  history.KindGenerate,
			Input: "prompt " + strconv.Itoa(i),
		}))
	}

	records, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "prompt 4", records[0].Input)
	require.Equal(t, "prompt 2", records[2].Input)
}

func TestMemoryRepositoryRecentLimitLargerThanStored(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, history.Record{ID: uuid.New(), Kind: history.KindSummarize}))

	records, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestMemoryRepositoryCapsStoredRecords(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < maxMemoryRecords+10; i++ {
		require.NoError(t, repo.Insert(ctx, history.Record{ID: uuid.New()}))
	}

	records, err := repo.Recent(ctx, maxMemoryRecords*2)
	require.NoError(t, err)
	require.Len(t, records, maxMemoryRecords)
}
