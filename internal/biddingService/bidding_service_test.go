package bidding

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"memehustle/internal/broadcast"
	"memehustle/internal/hustleerrors"
	"memehustle/internal/keylock"
	model "memehustle/internal/models"
	"memehustle/internal/store"
)

// recordingPublisher captures published events in order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []broadcast.Event
}

func (p *recordingPublisher) Publish(event string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, broadcast.Event{Event: event, Data: data})
}

func (p *recordingPublisher) all() []broadcast.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]broadcast.Event, len(p.events))
	copy(out, p.events)
	return out
}

func newTestLedger(t *testing.T) (*BidLedger, *store.MemoryStore, *recordingPublisher) {
	t.Helper()
	db := store.NewMemoryStore()
	bus := &recordingPublisher{}
	return NewBidLedger(db, keylock.New(), bus), db, bus
}

// Tests PlaceBid input validation
func TestBidLedger_PlaceBid_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := store.NewMockMemeDB(ctrl)
	service := NewBidLedger(mockDB, keylock.New(), &recordingPublisher{})

	// Table-driven test cases
	tests := []struct {
		name          string
		memeID        string
		userID        string
		credits       int
		mockSetup     func()
		expectedError error
	}{
		{
			name:          "empty_memeID",
			memeID:        "",
			userID:        "user1",
			credits:       50,
			mockSetup:     func() {},
			expectedError: hustleerrors.ErrInvalidBid,
		},
		{
			name:          "empty_userID",
			memeID:        "meme1",
			userID:        "",
			credits:       50,
			mockSetup:     func() {},
			expectedError: hustleerrors.ErrInvalidBid,
		},
		{
			name:          "zero_credits",
			memeID:        "meme1",
			userID:        "user1",
			credits:       0,
			mockSetup:     func() {},
			expectedError: hustleerrors.ErrInvalidBid,
		},
		{
			name:          "negative_credits",
			memeID:        "meme1",
			userID:        "user1",
			credits:       -50,
			mockSetup:     func() {},
			expectedError: hustleerrors.ErrInvalidBid,
		},
		{
			name:    "unknown_meme",
			memeID:  "ghost",
			userID:  "user1",
			credits: 50,
			mockSetup: func() {
				mockDB.EXPECT().GetMeme("ghost").Return(model.Meme{}, hustleerrors.ErrMemeNotFound)
			},
			expectedError: hustleerrors.ErrMemeNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			_, err := service.PlaceBid(tc.memeID, tc.userID, tc.credits)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.expectedError))
		})
	}
}

// Tests that a valid bid is recorded and announced
func TestBidLedger_PlaceBid_RecordsAndPublishes(t *testing.T) {
	t.Parallel()

	service, db, bus := newTestLedger(t)
	require.NoError(t, db.InsertMeme(model.Meme{ID: "meme1", Title: "doge"}))

	bid, err := service.PlaceBid("meme1", "user1", 100)
	require.NoError(t, err)
	require.NotEmpty(t, bid.ID)
	require.Equal(t, "meme1", bid.MemeID)
	require.Equal(t, "user1", bid.UserID)
	require.Equal(t, 100, bid.Credits)
	require.False(t, bid.CreatedAt.IsZero())

	events := bus.all()
	require.Len(t, events, 1)
	require.Equal(t, broadcast.TopicNewBid, events[0].Event)
	require.Equal(t, bid, events[0].Data)
}

// Tests that re-bidding replaces the user's previous row
func TestBidLedger_PlaceBid_ReplacesPreviousBid(t *testing.T) {
	t.Parallel()

	service, db, _ := newTestLedger(t)
	require.NoError(t, db.InsertMeme(model.Meme{ID: "meme1", Title: "doge"}))

	first, err := service.PlaceBid("meme1", "user1", 100)
	require.NoError(t, err)

	second, err := service.PlaceBid("meme1", "user1", 50)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	bids, err := service.GetBidsForMeme("meme1")
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Equal(t, 50, bids[0].Credits)

	// Lowering a stake is legal, the ledger holds the latest amount.
	highest, err := service.GetHighestBid("meme1")
	require.NoError(t, err)
	require.Equal(t, 50, highest.Credits)
}

// Tests concurrent bids from distinct users on one meme
func TestBidLedger_PlaceBid_ConcurrentDistinctUsers(t *testing.T) {
	t.Parallel()

	service, db, _ := newTestLedger(t)
	require.NoError(t, db.InsertMeme(model.Meme{ID: "meme1", Title: "doge"}))

	const bidders = 50
	var wg sync.WaitGroup
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := service.PlaceBid("meme1", fmt.Sprintf("user%d", n), n+1)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	bids, err := service.GetBidsForMeme("meme1")
	require.NoError(t, err)
	require.Len(t, bids, bidders)

	highest, err := service.GetHighestBid("meme1")
	require.NoError(t, err)
	require.Equal(t, bidders, highest.Credits)
}

// Tests concurrent re-bids by one user collapse to a single row
func TestBidLedger_PlaceBid_ConcurrentSameUser(t *testing.T) {
	t.Parallel()

	service, db, _ := newTestLedger(t)
	require.NoError(t, db.InsertMeme(model.Meme{ID: "meme1", Title: "doge"}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := service.PlaceBid("meme1", "user1", n+1)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	bids, err := service.GetBidsForMeme("meme1")
	require.NoError(t, err)
	require.Len(t, bids, 1)
}

// Tests GetHighestBid
func TestBidLedger_GetHighestBid(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name          string
		memeID        string
		seed          []model.Bid
		expectedUser  string
		expectedError error
	}{
		{
			name:   "highest_credits_wins",
			memeID: "meme1",
			seed: []model.Bid{
				{ID: "b1", MemeID: "meme1", UserID: "alice", Credits: 100, CreatedAt: now},
				{ID: "b2", MemeID: "meme1", UserID: "bob", Credits: 250, CreatedAt: now.Add(time.Second)},
				{ID: "b3", MemeID: "meme1", UserID: "carol", Credits: 50, CreatedAt: now.Add(2 * time.Second)},
			},
			expectedUser: "bob",
		},
		{
			name:   "tie_goes_to_earlier_bid",
			memeID: "meme1",
			seed: []model.Bid{
				{ID: "b1", MemeID: "meme1", UserID: "alice", Credits: 100, CreatedAt: now},
				{ID: "b2", MemeID: "meme1", UserID: "bob", Credits: 100, CreatedAt: now.Add(time.Second)},
			},
			expectedUser: "alice",
		},
		{
			name:          "no_bids",
			memeID:        "meme1",
			seed:          nil,
			expectedError: hustleerrors.ErrNoBids,
		},
		{
			name:          "empty_memeID",
			memeID:        "",
			seed:          nil,
			expectedError: hustleerrors.ErrInvalidBid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, db, _ := newTestLedger(t)
			require.NoError(t, db.InsertMeme(model.Meme{ID: "meme1", Title: "doge"}))
			for _, b := range tc.seed {
				require.NoError(t, db.PutBid(b))
			}

			highest, err := service.GetHighestBid(tc.memeID)
			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedUser, highest.UserID)
		})
	}
}

// Tests GetBidsForMeme
func TestBidLedger_GetBidsForMeme(t *testing.T) {
	t.Parallel()

	service, db, _ := newTestLedger(t)
	require.NoError(t, db.InsertMeme(model.Meme{ID: "meme1", Title: "doge"}))

	_, err := service.GetBidsForMeme("")
	require.Error(t, err)
	require.True(t, errors.Is(err, hustleerrors.ErrInvalidBid))

	bids, err := service.GetBidsForMeme("meme1")
	require.NoError(t, err)
	require.NotNil(t, bids)
	require.Empty(t, bids)

	_, err = service.PlaceBid("meme1", "alice", 10)
	require.NoError(t, err)
	_, err = service.PlaceBid("meme1", "bob", 30)
	require.NoError(t, err)

	bids, err = service.GetBidsForMeme("meme1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "bob", bids[0].UserID)
}
