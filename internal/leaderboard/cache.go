package leaderboard

import (
	"sync"
	"time"

	model "memehustle/internal/models"
	"memehustle/internal/store"
	"memehustle/utils"
)

// Kind selects which ranking a snapshot holds.
type Kind string

const (
	// KindTop ranks memes by upvote count.
	KindTop Kind = "top"
	// KindTrending filters to positively voted memes, newest first. It is a
	// recency filter over upvoted memes, not a vote-velocity measure.
	KindTrending Kind = "trending"
)

// snapshotCap bounds how many memes a cached snapshot holds. Requests for
// more than this many rows skip the cache and query the store directly.
const snapshotCap = 100

type snapshot struct {
	memes      []model.Meme
	computedAt time.Time
}

// Cache serves ranked meme lists, recomputing each ranking at most once per
// TTL window unless explicitly invalidated.
type Cache struct {
	db  store.MemeDB
	ttl time.Duration

	mu    sync.Mutex
	snaps map[Kind]*snapshot
}

// NewCache builds a ranking cache over the given store. A non-positive ttl
// falls back to 60 seconds.
func NewCache(db store.MemeDB, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Cache{
		db:    db,
		ttl:   ttl,
		snaps: make(map[Kind]*snapshot),
	}
}

// Top returns up to limit memes ordered by upvotes descending.
func (c *Cache) Top(limit int) ([]model.Meme, error) {
	return c.ranked(KindTop, limit)
}

// Trending returns up to limit positively voted memes, newest first.
func (c *Cache) Trending(limit int) ([]model.Meme, error) {
	return c.ranked(KindTrending, limit)
}

func (c *Cache) ranked(kind Kind, limit int) ([]model.Meme, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > snapshotCap {
		return c.query(kind, limit)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.snaps[kind]
	if snap == nil || time.Since(snap.computedAt) >= c.ttl {
		memes, err := c.query(kind, snapshotCap)
		if err != nil {
			return nil, err
		}
		snap = &snapshot{memes: memes, computedAt: time.Now()}
		c.snaps[kind] = snap
		utils.Debug("leaderboard snapshot recomputed", map[string]any{"kind": string(kind), "size": len(memes)})
	}

	n := limit
	if n > len(snap.memes) {
		n = len(snap.memes)
	}
	out := make([]model.Meme, n)
	copy(out, snap.memes[:n])
	return out, nil
}

func (c *Cache) query(kind Kind, limit int) ([]model.Meme, error) {
	if kind == KindTrending {
		return c.db.RecentUpvotedMemes(limit)
	}
	return c.db.TopMemes(limit)
}

// Invalidate drops the cached snapshot for one ranking.
func (c *Cache) Invalidate(kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snaps, kind)
}

// InvalidateAll drops every cached snapshot so the next read recomputes.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snaps = make(map[Kind]*snapshot)
}
