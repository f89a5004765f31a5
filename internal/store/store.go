package store

import (
	"fmt"
	"sort"
	"sync"

	"memehustle/internal/hustleerrors"
	model "memehustle/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store

// MemeDB defines the durable record-store primitives for memes and bids.
// Implementations only provide get/put/query-by-field/update-field
// operations; multi-step read-modify-write sequences are serialized by the
// callers (bid ledger, vote aggregator), not here.
type MemeDB interface {
	InsertMeme(meme model.Meme) error
	GetMeme(id string) (model.Meme, error)
	// ListMemes returns every meme, newest first.
	ListMemes() ([]model.Meme, error)
	// SetMemeUpvotes overwrites the upvote counter and returns the updated row.
	SetMemeUpvotes(id string, upvotes int) (model.Meme, error)
	// SetMemeCaption overwrites caption and vibe and returns the updated row.
	SetMemeCaption(id, caption, vibe string) (model.Meme, error)
	// TopMemes returns memes ordered by upvotes descending, ties kept in
	// insertion order. limit <= 0 means no limit.
	TopMemes(limit int) ([]model.Meme, error)
	// RecentUpvotedMemes returns memes with upvotes above zero, newest
	// first. limit <= 0 means no limit.
	RecentUpvotedMemes(limit int) ([]model.Meme, error)

	// PutBid inserts the bid or overwrites the existing row with the same ID.
	PutBid(bid model.Bid) error
	// GetBidByMemeAndUser reports the live bid for the pair, if any.
	GetBidByMemeAndUser(memeID, userID string) (model.Bid, bool, error)
	// GetBidsByMeme returns all bids for a meme, credits descending.
	GetBidsByMeme(memeID string) ([]model.Bid, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of MemeDB.
type MemoryStore struct {
	mu    sync.RWMutex
	memes map[string]model.Meme
	order []string                        // meme IDs in insertion order
	bids  map[string]map[string]model.Bid // memeID -> userID -> bid
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		memes: make(map[string]model.Meme),
		bids:  make(map[string]map[string]model.Bid),
	}
}

// InsertMeme adds a new meme row. The ID must not already exist.
func (s *MemoryStore) InsertMeme(meme model.Meme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if meme.ID == "" {
		return fmt.Errorf("insert meme: %w - empty ID", hustleerrors.ErrInvalidMeme)
	}
	if _, ok := s.memes[meme.ID]; ok {
		return fmt.Errorf("insert meme %s: %w - ID already exists", meme.ID, hustleerrors.ErrInvalidMeme)
	}

	s.memes[meme.ID] = cloneMeme(meme)
	s.order = append(s.order, meme.ID)
	return nil
}

// GetMeme returns a single meme row by ID.
func (s *MemoryStore) GetMeme(id string) (model.Meme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meme, ok := s.memes[id]
	if !ok {
		return model.Meme{}, fmt.Errorf("get meme %s: %w", id, hustleerrors.ErrMemeNotFound)
	}
	return cloneMeme(meme), nil
}

// ListMemes returns every meme, newest first.
func (s *MemoryStore) ListMemes() ([]model.Meme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	memes := make([]model.Meme, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		memes = append(memes, cloneMeme(s.memes[s.order[i]]))
	}
	return memes, nil
}

// SetMemeUpvotes overwrites the upvote counter for a meme.
func (s *MemoryStore) SetMemeUpvotes(id string, upvotes int) (model.Meme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meme, ok := s.memes[id]
	if !ok {
		return model.Meme{}, fmt.Errorf("set upvotes for meme %s: %w", id, hustleerrors.ErrMemeNotFound)
	}
	meme.Upvotes = upvotes
	s.memes[id] = meme
	return cloneMeme(meme), nil
}

// SetMemeCaption overwrites caption and vibe for a meme.
func (s *MemoryStore) SetMemeCaption(id, caption, vibe string) (model.Meme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meme, ok := s.memes[id]
	if !ok {
		return model.Meme{}, fmt.Errorf("set caption for meme %s: %w", id, hustleerrors.ErrMemeNotFound)
	}
	meme.Caption = caption
	meme.Vibe = vibe
	s.memes[id] = meme
	return cloneMeme(meme), nil
}

// TopMemes returns memes ordered by upvotes descending. The sort is stable,
// so equal counters keep insertion order.
func (s *MemoryStore) TopMemes(limit int) ([]model.Meme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	memes := make([]model.Meme, 0, len(s.order))
	for _, id := range s.order {
		memes = append(memes, cloneMeme(s.memes[id]))
	}
	sort.SliceStable(memes, func(i, j int) bool {
		return memes[i].Upvotes > memes[j].Upvotes
	})
	return truncate(memes, limit), nil
}

// RecentUpvotedMemes returns memes with upvotes above zero, newest first.
func (s *MemoryStore) RecentUpvotedMemes(limit int) ([]model.Meme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	memes := make([]model.Meme, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		meme := s.memes[s.order[i]]
		if meme.Upvotes > 0 {
			memes = append(memes, cloneMeme(meme))
		}
	}
	return truncate(memes, limit), nil
}

// PutBid inserts or overwrites a bid row.
func (s *MemoryStore) PutBid(bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.memes[bid.MemeID]; !ok {
		return fmt.Errorf("put bid for meme %s: %w", bid.MemeID, hustleerrors.ErrMemeNotFound)
	}

	byUser, ok := s.bids[bid.MemeID]
	if !ok {
		byUser = make(map[string]model.Bid)
		s.bids[bid.MemeID] = byUser
	}
	byUser[bid.UserID] = bid
	return nil
}

// GetBidByMemeAndUser reports the live bid for the (meme, bidder) pair.
func (s *MemoryStore) GetBidByMemeAndUser(memeID, userID string) (model.Bid, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bid, ok := s.bids[memeID][userID]
	return bid, ok, nil
}

// GetBidsByMeme returns all bids for a meme sorted by credits descending,
// ties by earliest timestamp.
func (s *MemoryStore) GetBidsByMeme(memeID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byUser := s.bids[memeID]
	bids := make([]model.Bid, 0, len(byUser))
	for _, bid := range byUser {
		bids = append(bids, bid)
	}
	sort.Slice(bids, func(i, j int) bool {
		if bids[i].Credits != bids[j].Credits {
			return bids[i].Credits > bids[j].Credits
		}
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
	return bids, nil
}

func cloneMeme(meme model.Meme) model.Meme {
	if meme.Tags != nil {
		meme.Tags = append([]string{}, meme.Tags...)
	}
	return meme
}

func truncate(memes []model.Meme, limit int) []model.Meme {
	if limit > 0 && len(memes) > limit {
		return memes[:limit]
	}
	return memes
}
