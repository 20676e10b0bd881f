package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashureev/mood-sense/internal/domain"
	"github.com/ashureev/mood-sense/internal/store"
)

func sampleHistory() domain.MoodHistory {
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return domain.MoodHistory{
		domain.NewMoodEntry("b", 4, "better", "Keep going.", base.Add(time.Hour)),
		domain.NewMoodEntry("a", 2, "rough morning", "", base),
	}
}

func TestKVRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()

	sqliteKV, err := store.NewSQLite(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteKV.Close() })

	backends := map[string]store.KV{
		"sqlite": sqliteKV,
		"memory": store.NewMemory(),
	}

	for name, kv := range backends {
		t.Run(name, func(t *testing.T) {
			repo := NewKVRepository(kv)

			empty, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			want := sampleHistory()
			require.NoError(t, repo.Save(ctx, want))

			got, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestKVRepositoryStoresJSONArray(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	repo := NewKVRepository(kv)

	require.NoError(t, repo.Save(ctx, nil))
	raw, found, err := kv.Get(ctx, HistoryKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", raw)

	require.NoError(t, repo.Save(ctx, sampleHistory()[1:]))
	raw, _, err = kv.Get(ctx, HistoryKey)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":"a","scale":2,"description":"rough morning","timestamp":"2024-03-10T09:00:00Z"}]`,
		raw)
}

func TestKVRepositoryCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, HistoryKey, "{not json"))

	_, err := NewKVRepository(kv).Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode history")
}

func TestKVRepositoryClosedStore(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Close())

	_, err := NewKVRepository(kv).Load(ctx)
	assert.ErrorIs(t, err, store.ErrClosed)
}

func TestMemoryRepositoryCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	h := sampleHistory()
	require.NoError(t, repo.Save(ctx, h))
	h[0].Description = "mutated"

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "better", got[0].Description)
	assert.Equal(t, 1, repo.Saves())
}

func TestKVRepositorySkipsInvalidEntries(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, HistoryKey, `[
		{"id":"c","scale":9,"description":"too high","timestamp":"2024-03-10T11:00:00Z"},
		{"id":"b","scale":4,"description":"better","timestamp":"2024-03-10T10:00:00Z","insight":"Keep going."},
		{"id":"a","scale":2,"description":"   ","timestamp":"2024-03-10T09:00:00Z"}
	]`))

	got, err := NewKVRepository(kv).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}
