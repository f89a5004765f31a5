package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"memehustle/internal/ai"
	bidding "memehustle/internal/biddingService"
	"memehustle/internal/broadcast"
	"memehustle/internal/config"
	"memehustle/internal/keylock"
	"memehustle/internal/leaderboard"
	meme "memehustle/internal/memeService"
	model "memehustle/internal/models"
	"memehustle/internal/server"
	"memehustle/internal/store"
	vote "memehustle/internal/voteService"
	handler "memehustle/services/marketplace/handler"
	"memehustle/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	db := store.NewMemoryStore()

	prepopulateMemes(db)

	locks := keylock.New()

	hub := broadcast.NewHub(cfg.Broadcast.Buffer)
	go hub.Run()

	captions := newCaptionGenerator(cfg.Gemini)

	rankings := leaderboard.NewCache(db, cfg.Cache.TTL)

	memeSvc := meme.NewService(db, captions, rankings, hub)
	voteSvc := vote.NewAggregator(db, locks, rankings, hub)
	bidSvc := bidding.NewBidLedger(db, locks, hub)

	memeHandler := handler.NewMemeHandler(memeSvc, voteSvc, bidSvc)
	bidHandler := handler.NewBidHandler(bidSvc)
	leaderboardHandler := handler.NewLeaderboardHandler(rankings)

	router := server.SetupRouter(memeHandler, bidHandler, leaderboardHandler, hub)

	addr := ":" + cfg.Port
	fmt.Printf("Starting MemeHustle server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// newCaptionGenerator wires up Gemini when an API key is configured. Without
// a key the meme service serves canned captions instead.
func newCaptionGenerator(cfg config.GeminiConfig) ai.CaptionGenerator {
	if cfg.APIKey == "" {
		utils.Warn("gemini API key not set, AI captions disabled", map[string]any{})
		return nil
	}

	client, err := ai.NewGemini(context.Background(), ai.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		utils.Warn("gemini client setup failed, AI captions disabled", map[string]any{"error": err.Error()})
		return nil
	}

	return client
}

// prepopulateMemes adds sample memes to the in-memory store
func prepopulateMemes(db *store.MemoryStore) {
	memes := []model.Meme{
		{ID: "meme1", Title: "Doge HODL", ImageURL: "https://picsum.photos/seed/doge/400/300", Tags: []string{"crypto", "funny"}, Caption: "YOLO to the moon!", Vibe: "Neon Crypto Chaos", Upvotes: 69, OwnerID: "cyberpunk420", CreatedAt: time.Now().UTC()},
		{ID: "meme2", Title: "Stonks Man", ImageURL: "https://picsum.photos/seed/stonks/400/300", Tags: []string{"stonks", "finance"}, Caption: "When the code finally compiles", Vibe: "Retro Stonks Vibes", Upvotes: 42, OwnerID: "anonymous", CreatedAt: time.Now().UTC()},
		{ID: "meme3", Title: "Glitch Cat", ImageURL: "https://picsum.photos/seed/glitch/400/300", Tags: []string{"cats", "glitch"}, Caption: "Glitch in the matrix detected", Vibe: "Glitchy Tech Nostalgia", Upvotes: 13, OwnerID: "anonymous", CreatedAt: time.Now().UTC()},
	}

	for _, m := range memes {
		if err := db.InsertMeme(m); err != nil {
			utils.Warn("failed to prepopulate meme", map[string]any{"meme_id": m.ID, "error": err.Error()})
		}
	}
}
