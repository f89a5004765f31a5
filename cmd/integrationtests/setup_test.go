package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"memehustle/internal/ai"
	bidding "memehustle/internal/biddingService"
	"memehustle/internal/broadcast"
	"memehustle/internal/keylock"
	"memehustle/internal/leaderboard"
	meme "memehustle/internal/memeService"
	model "memehustle/internal/models"
	"memehustle/internal/server"
	"memehustle/internal/store"
	vote "memehustle/internal/voteService"
	handler "memehustle/services/marketplace/handler"
)

// stubCaptions is a deterministic CaptionGenerator for the full stack.
type stubCaptions struct {
	mu   sync.Mutex
	fail bool
}

func (s *stubCaptions) setFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

func (s *stubCaptions) GenerateCaption(ctx context.Context, tags []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return "", errors.New("generator unavailable")
	}
	return "caption for " + strings.Join(tags, ","), nil
}

func (s *stubCaptions) GenerateVibe(ctx context.Context, tags []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return "", errors.New("generator unavailable")
	}
	return "Test Vibes", nil
}

var _ ai.CaptionGenerator = (*stubCaptions)(nil)

type testStack struct {
	router   *gin.Engine
	db       *store.MemoryStore
	rankings *leaderboard.Cache
	captions *stubCaptions
	hub      *broadcast.Hub
}

// SetupTestStack wires the full application with an in-memory store and a
// stubbed caption generator for integration testing.
func SetupTestStack(cacheTTL time.Duration) *testStack {
	gin.SetMode(gin.TestMode)

	db := store.NewMemoryStore()
	locks := keylock.New()
	captions := &stubCaptions{}

	hub := broadcast.NewHub(256)
	go hub.Run()

	rankings := leaderboard.NewCache(db, cacheTTL)

	memeSvc := meme.NewService(db, captions, rankings, hub)
	voteSvc := vote.NewAggregator(db, locks, rankings, hub)
	bidSvc := bidding.NewBidLedger(db, locks, hub)

	memeHandler := handler.NewMemeHandler(memeSvc, voteSvc, bidSvc)
	bidHandler := handler.NewBidHandler(bidSvc)
	leaderboardHandler := handler.NewLeaderboardHandler(rankings)

	router := server.SetupRouter(memeHandler, bidHandler, leaderboardHandler, hub)

	return &testStack{
		router:   router,
		db:       db,
		rankings: rankings,
		captions: captions,
		hub:      hub,
	}
}

// SeedMemes inserts memes directly into the store.
func (s *testStack) SeedMemes(t *testing.T, memes ...model.Meme) {
	t.Helper()
	for _, m := range memes {
		if err := s.db.InsertMeme(m); err != nil {
			t.Fatalf("failed to seed meme %s: %v", m.ID, err)
		}
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope, returning the data payload for 2xx responses.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code >= 200 && w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}

	return resp, w
}

// ExecuteRequestAndParseList is ExecuteRequestAndParse for array payloads.
func ExecuteRequestAndParseList(t *testing.T, router *gin.Engine, method, url string) ([]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)
	router.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("expected array data payload, got %T", resp["data"])
	}

	return data, w
}

func memeURL(memeID, suffix string) string {
	return fmt.Sprintf("/api/memes/%s%s", memeID, suffix)
}
