package vote

import (
	"fmt"

	"memehustle/internal/broadcast"
	"memehustle/internal/hustleerrors"
	"memehustle/internal/keylock"
	model "memehustle/internal/models"
	"memehustle/internal/store"
)

// Vote directions accepted by ApplyVote.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// RankingCache is the slice of the leaderboard cache a vote needs to touch.
type RankingCache interface {
	InvalidateAll()
}

// Aggregator applies up/down votes to meme counters. Votes on one meme are
// serialized so no vote is ever lost to a concurrent read-modify-write.
type Aggregator struct {
	db    store.MemeDB
	locks *keylock.KeyedMutex
	cache RankingCache
	bus   broadcast.Publisher
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(db store.MemeDB, locks *keylock.KeyedMutex, cache RankingCache, bus broadcast.Publisher) *Aggregator {
	return &Aggregator{
		db:    db,
		locks: locks,
		cache: cache,
		bus:   bus,
	}
}

// ApplyVote adjusts a meme's upvote counter by one in the given direction
// and returns the meme with its new count.
func (s *Aggregator) ApplyVote(memeID, direction string) (model.Meme, error) {
	if memeID == "" {
		return model.Meme{}, fmt.Errorf("service: %w - empty meme ID", hustleerrors.ErrInvalidVote)
	}

	var delta int
	switch direction {
	case DirectionUp:
		delta = 1
	case DirectionDown:
		delta = -1
	default:
		return model.Meme{}, fmt.Errorf("service: %w - direction must be up or down, got %q", hustleerrors.ErrInvalidVote, direction)
	}

	unlock := s.locks.Lock(memeID)
	defer unlock()

	meme, err := s.db.GetMeme(memeID)
	if err != nil {
		return model.Meme{}, fmt.Errorf("service: failed to apply vote to meme %s: %w", memeID, err)
	}

	// Counters may go below zero, a downvoted meme stays visible with a
	// negative score.
	updated, err := s.db.SetMemeUpvotes(memeID, meme.Upvotes+delta)
	if err != nil {
		return model.Meme{}, fmt.Errorf("service: failed to store vote for meme %s: %w", memeID, err)
	}

	s.cache.InvalidateAll()
	s.bus.Publish(broadcast.TopicVoteUpdate, updated)

	return updated, nil
}
