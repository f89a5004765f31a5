package bidding

import (
	"fmt"
	"time"

	"memehustle/internal/broadcast"
	"memehustle/internal/hustleerrors"
	"memehustle/internal/keylock"
	model "memehustle/internal/models"
	"memehustle/internal/store"
	"memehustle/utils"
)

// BidLedger holds the business logic for recording credit bids on memes.
// Each (meme, user) pair owns at most one ledger row: re-bidding replaces
// the user's previous stake instead of stacking a second row.
type BidLedger struct {
	db    store.MemeDB
	locks *keylock.KeyedMutex
	bus   broadcast.Publisher
}

// NewBidLedger creates a new BidLedger instance
func NewBidLedger(db store.MemeDB, locks *keylock.KeyedMutex, bus broadcast.Publisher) *BidLedger {
	return &BidLedger{
		db:    db,
		locks: locks,
		bus:   bus,
	}
}

// PlaceBid validates and records a user's credit bid on a meme. Bidding
// below the current highest bid is allowed, the amount is the user's stake
// rather than an auction increment.
func (s *BidLedger) PlaceBid(memeID, userID string, credits int) (model.Bid, error) {
	if memeID == "" || userID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing memeID or userID", hustleerrors.ErrInvalidBid)
	}
	if credits <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive credit amount", hustleerrors.ErrInvalidBid)
	}

	unlock := s.locks.Lock(memeID)
	defer unlock()

	if _, err := s.db.GetMeme(memeID); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to place bid on meme %s: %w", memeID, err)
	}

	bid := model.Bid{
		ID:        utils.GenerateID(),
		MemeID:    memeID,
		UserID:    userID,
		Credits:   credits,
		CreatedAt: time.Now().UTC(),
	}

	existing, found, err := s.db.GetBidByMemeAndUser(memeID, userID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to look up bid for meme %s by user %s: %w", memeID, userID, err)
	}
	if found {
		// Replacement keeps the row identity but refreshes the timestamp,
		// so highest-bid ties resolve against the bid's latest placement.
		bid.ID = existing.ID
	}

	if err := s.db.PutBid(bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid on meme %s by user %s: %w", memeID, userID, err)
	}

	// Published inside the critical section so viewers observe bids on one
	// meme in the same order the ledger recorded them.
	s.bus.Publish(broadcast.TopicNewBid, bid)

	return bid, nil
}

// GetBidsForMeme returns all bids on a specific meme, highest credits first
func (s *BidLedger) GetBidsForMeme(memeID string) ([]model.Bid, error) {
	if memeID == "" {
		return nil, fmt.Errorf("service: %w - empty meme ID", hustleerrors.ErrInvalidBid)
	}

	bids, err := s.db.GetBidsByMeme(memeID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for meme %s: %w", memeID, err)
	}
	if bids == nil {
		bids = []model.Bid{}
	}

	return bids, nil
}

// GetHighestBid returns the leading bid for a specific meme. Ties on credit
// amount go to the earlier bid.
func (s *BidLedger) GetHighestBid(memeID string) (model.Bid, error) {
	if memeID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty meme ID", hustleerrors.ErrInvalidBid)
	}

	bids, err := s.db.GetBidsByMeme(memeID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get bids for meme %s: %w", memeID, err)
	}
	if len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("service: %w - meme %s has no bids", hustleerrors.ErrNoBids, memeID)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Credits > highest.Credits || (b.Credits == highest.Credits && b.CreatedAt.Before(highest.CreatedAt)) {
			highest = b
		}
	}

	return highest, nil
}
