package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "memehustle/internal/models"
	"memehustle/internal/store"
)

func seedMemes(t *testing.T, db *store.MemoryStore, upvotes ...int) []model.Meme {
	t.Helper()
	memes := make([]model.Meme, 0, len(upvotes))
	base := time.Now().UTC()
	for i, up := range upvotes {
		m := model.Meme{
			ID:        string(rune('a' + i)),
			Title:     "meme " + string(rune('a'+i)),
			Upvotes:   up,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, db.InsertMeme(m))
		memes = append(memes, m)
	}
	return memes
}

func TestCache_TopServesSnapshotWithinTTL(t *testing.T) {
	t.Parallel()

	db := store.NewMemoryStore()
	seedMemes(t, db, 5, 10, 1)
	cache := NewCache(db, time.Hour)

	first, err := cache.Top(10)
	require.NoError(t, err)
	require.Len(t, first, 3)
	require.Equal(t, 10, first[0].Upvotes)

	// Mutate the store directly. The snapshot is still fresh, so the stale
	// ranking must be served as-is.
	_, err = db.SetMemeUpvotes("c", 99)
	require.NoError(t, err)

	second, err := cache.Top(10)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCache_ExpiredSnapshotRecomputes(t *testing.T) {
	t.Parallel()

	db := store.NewMemoryStore()
	seedMemes(t, db, 5, 10)
	cache := NewCache(db, time.Nanosecond)

	_, err := cache.Top(10)
	require.NoError(t, err)

	_, err = db.SetMemeUpvotes("a", 99)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	refreshed, err := cache.Top(10)
	require.NoError(t, err)
	require.Equal(t, "a", refreshed[0].ID)
	require.Equal(t, 99, refreshed[0].Upvotes)
}

func TestCache_InvalidateAllForcesRecompute(t *testing.T) {
	t.Parallel()

	db := store.NewMemoryStore()
	seedMemes(t, db, 5, 10)
	cache := NewCache(db, time.Hour)

	_, err := cache.Top(10)
	require.NoError(t, err)

	_, err = db.SetMemeUpvotes("a", 99)
	require.NoError(t, err)
	cache.InvalidateAll()

	refreshed, err := cache.Top(10)
	require.NoError(t, err)
	require.Equal(t, 99, refreshed[0].Upvotes)
}

func TestCache_InvalidateIsPerKind(t *testing.T) {
	t.Parallel()

	db := store.NewMemoryStore()
	seedMemes(t, db, 5, 10)
	cache := NewCache(db, time.Hour)

	topBefore, err := cache.Top(10)
	require.NoError(t, err)
	trendingBefore, err := cache.Trending(10)
	require.NoError(t, err)
	require.NotEmpty(t, trendingBefore)

	_, err = db.SetMemeUpvotes("a", 99)
	require.NoError(t, err)
	cache.Invalidate(KindTop)

	topAfter, err := cache.Top(10)
	require.NoError(t, err)
	require.NotEqual(t, topBefore, topAfter)

	trendingAfter, err := cache.Trending(10)
	require.NoError(t, err)
	require.Equal(t, trendingBefore, trendingAfter)
}

func TestCache_LimitSlicesSharedSnapshot(t *testing.T) {
	t.Parallel()

	db := store.NewMemoryStore()
	seedMemes(t, db, 1, 2, 3, 4, 5)
	cache := NewCache(db, time.Hour)

	all, err := cache.Top(10)
	require.NoError(t, err)
	require.Len(t, all, 5)

	top2, err := cache.Top(2)
	require.NoError(t, err)
	require.Len(t, top2, 2)
	require.Equal(t, all[:2], top2)
}

func TestCache_OversizedLimitBypassesCache(t *testing.T) {
	t.Parallel()

	db := store.NewMemoryStore()
	seedMemes(t, db, 5, 10)
	cache := NewCache(db, time.Hour)

	_, err := cache.Top(10)
	require.NoError(t, err)

	_, err = db.SetMemeUpvotes("a", 99)
	require.NoError(t, err)

	// A limit above the snapshot cap must read through to the store.
	direct, err := cache.Top(snapshotCap + 1)
	require.NoError(t, err)
	require.Equal(t, "a", direct[0].ID)
}

func TestCache_TrendingExcludesNonPositive(t *testing.T) {
	t.Parallel()

	db := store.NewMemoryStore()
	seedMemes(t, db, 3, 0, -2, 7)
	cache := NewCache(db, time.Hour)

	trending, err := cache.Trending(10)
	require.NoError(t, err)
	require.Len(t, trending, 2)
	// Newest first among upvoted memes.
	require.Equal(t, "d", trending[0].ID)
	require.Equal(t, "a", trending[1].ID)
}
