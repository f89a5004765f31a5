package meme

import (
	"context"
	"fmt"
	"time"

	"memehustle/internal/ai"
	"memehustle/internal/broadcast"
	"memehustle/internal/hustleerrors"
	model "memehustle/internal/models"
	"memehustle/internal/store"
	"memehustle/utils"
)

// defaultOwnerID is assigned when a meme is created without an owner.
const defaultOwnerID = "anonymous"

// RankingCache is the slice of the leaderboard cache meme writes invalidate.
type RankingCache interface {
	InvalidateAll()
}

// CreateMemeInput carries the caller-supplied fields for a new meme.
type CreateMemeInput struct {
	Title    string
	ImageURL string
	Tags     []string
	OwnerID  string
}

// CaptionUpdateEvent is the payload announced after a caption regeneration
// attempt. CaptionError marks a run where generation failed and the meme was
// left unchanged.
type CaptionUpdateEvent struct {
	model.Meme
	CaptionError bool `json:"captionError,omitempty"`
}

// Service holds the business logic for the meme catalog, including AI
// caption enrichment.
type Service struct {
	db       store.MemeDB
	captions ai.CaptionGenerator // nil when no generator is configured
	cache    RankingCache
	bus      broadcast.Publisher
}

// NewService creates a new Service instance
func NewService(db store.MemeDB, captions ai.CaptionGenerator, cache RankingCache, bus broadcast.Publisher) *Service {
	return &Service{
		db:       db,
		captions: captions,
		cache:    cache,
		bus:      bus,
	}
}

// CreateMeme validates, enriches and stores a new meme. Enrichment runs
// before the store write so the meme is born with its caption, and a
// generator failure degrades to a canned caption instead of failing the
// create.
func (s *Service) CreateMeme(ctx context.Context, in CreateMemeInput) (model.Meme, error) {
	if in.Title == "" {
		return model.Meme{}, fmt.Errorf("service: %w - missing title", hustleerrors.ErrInvalidMeme)
	}

	meme := model.Meme{
		ID:        utils.GenerateID(),
		Title:     in.Title,
		ImageURL:  in.ImageURL,
		Tags:      in.Tags,
		OwnerID:   in.OwnerID,
		CreatedAt: time.Now().UTC(),
	}
	if meme.ImageURL == "" {
		meme.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/400/300", utils.GenerateID())
	}
	if meme.OwnerID == "" {
		meme.OwnerID = defaultOwnerID
	}
	if meme.Tags == nil {
		meme.Tags = []string{}
	}

	if len(meme.Tags) > 0 {
		meme.Caption, meme.Vibe = s.enrich(ctx, meme.Tags)
	}

	if err := s.db.InsertMeme(meme); err != nil {
		return model.Meme{}, fmt.Errorf("service: failed to create meme %s: %w", meme.ID, err)
	}

	s.cache.InvalidateAll()
	s.bus.Publish(broadcast.TopicNewMeme, meme)

	return meme, nil
}

// ListMemes returns all memes, newest first
func (s *Service) ListMemes() ([]model.Meme, error) {
	memes, err := s.db.ListMemes()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list memes: %w", err)
	}
	if memes == nil {
		memes = []model.Meme{}
	}
	return memes, nil
}

// GetMeme returns a single meme by ID
func (s *Service) GetMeme(memeID string) (model.Meme, error) {
	if memeID == "" {
		return model.Meme{}, fmt.Errorf("service: %w - empty meme ID", hustleerrors.ErrInvalidMeme)
	}

	meme, err := s.db.GetMeme(memeID)
	if err != nil {
		return model.Meme{}, fmt.Errorf("service: failed to get meme %s: %w", memeID, err)
	}
	return meme, nil
}

// RegenerateCaption replaces a meme's caption and vibe with freshly
// generated text. On generation failure the meme is returned unchanged and
// the second result is true, callers treat that as a soft failure.
func (s *Service) RegenerateCaption(ctx context.Context, memeID string) (model.Meme, bool, error) {
	meme, err := s.GetMeme(memeID)
	if err != nil {
		return model.Meme{}, false, err
	}

	caption, capErr := s.generateCaption(ctx, meme.Tags)
	vibe, vibeErr := s.generateVibe(ctx, meme.Tags)
	if capErr != nil || vibeErr != nil {
		utils.Warn("caption regeneration failed, meme left unchanged", map[string]any{
			"meme_id": memeID,
		})
		s.bus.Publish(broadcast.TopicCaptionUpdate, CaptionUpdateEvent{Meme: meme, CaptionError: true})
		return meme, true, nil
	}

	updated, err := s.db.SetMemeCaption(memeID, caption, vibe)
	if err != nil {
		return model.Meme{}, false, fmt.Errorf("service: failed to store caption for meme %s: %w", memeID, err)
	}

	s.bus.Publish(broadcast.TopicCaptionUpdate, CaptionUpdateEvent{Meme: updated})

	return updated, false, nil
}

// enrich produces a caption and vibe for the tags, falling back to canned
// text independently per field when generation fails.
func (s *Service) enrich(ctx context.Context, tags []string) (caption, vibe string) {
	caption, err := s.generateCaption(ctx, tags)
	if err != nil {
		utils.Warn("caption generation failed, using fallback", map[string]any{"error": err.Error()})
		caption = randomFallbackCaption()
	}

	vibe, err = s.generateVibe(ctx, tags)
	if err != nil {
		utils.Warn("vibe generation failed, using fallback", map[string]any{"error": err.Error()})
		vibe = randomFallbackVibe()
	}

	return caption, vibe
}

func (s *Service) generateCaption(ctx context.Context, tags []string) (string, error) {
	if s.captions == nil {
		return "", fmt.Errorf("service: caption enrichment disabled")
	}
	text, err := s.captions.GenerateCaption(ctx, tags)
	if err != nil {
		return "", err
	}
	return cleanupCaption(text), nil
}

func (s *Service) generateVibe(ctx context.Context, tags []string) (string, error) {
	if s.captions == nil {
		return "", fmt.Errorf("service: caption enrichment disabled")
	}
	text, err := s.captions.GenerateVibe(ctx, tags)
	if err != nil {
		return "", err
	}
	return cleanupVibe(text), nil
}
