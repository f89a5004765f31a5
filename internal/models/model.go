package models

import "time"

// Meme represents a user-submitted, votable, biddable unit of content.
// Upvotes is signed on purpose: symmetric up/down voting may push the
// counter below zero.
type Meme struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	Tags      []string  `json:"tags"`
	Caption   string    `json:"caption"`
	Vibe      string    `json:"vibe"`
	Upvotes   int       `json:"upvotes"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Bid represents a user's credit offer on a meme. There is at most one live
// Bid per (meme, bidder) pair; a repeat bid from the same bidder replaces
// the existing row instead of creating a second one.
type Bid struct {
	ID        string    `json:"id"`
	MemeID    string    `json:"meme_id"`
	UserID    string    `json:"user_id"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}
