package hustleerrors

import "errors"

// Store-level errors
var (
	ErrMemeNotFound = errors.New("meme not found")
	ErrNoBids       = errors.New("no bids found for meme")
)

// Input validation errors
var (
	ErrInvalidMeme = errors.New("invalid meme")
	ErrInvalidBid  = errors.New("invalid bid")
	ErrInvalidVote = errors.New("invalid vote type")
)

// ErrStoreUnavailable marks a record store that could not be reached. It is
// surfaced to the caller as-is; this core does not retry.
var ErrStoreUnavailable = errors.New("record store unavailable")
