package helpers

import model "memehustle/internal/models"

// Request/Response DTOs
type CreateMemeRequest struct {
	Title    string   `json:"title" binding:"required"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
	OwnerID  string   `json:"owner_id"`
}

type VoteRequest struct {
	Type string `json:"type" binding:"required,oneof=up down"`
}

type PlaceBidRequest struct {
	MemeID  string `json:"meme_id" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
	Credits int    `json:"credits" binding:"required,gt=0"`
}

// MemeDetailResponse is a meme plus its current leading bid, nil when the
// meme has no bids yet.
type MemeDetailResponse struct {
	model.Meme
	HighestBid *model.Bid `json:"highest_bid"`
}

// CaptionResponse is the meme after a caption regeneration attempt.
// CaptionError is set when generation failed and the meme is unchanged.
type CaptionResponse struct {
	model.Meme
	CaptionError bool `json:"captionError,omitempty"`
}
