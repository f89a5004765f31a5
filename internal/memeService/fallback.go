package meme

import "math/rand"

// Canned enrichment text served when the generator is unavailable.
var fallbackCaptions = []string{
	"YOLO to the moon!",
	"Hack the planet!",
	"When the code finally compiles",
	"HODL the vibes!",
	"404: Brain not found",
	"Cyberpunk dreams, meme reality",
	"Neural networks and chill",
	"This meme is quantum-encrypted",
	"Glitch in the matrix detected",
	"Running on blockchain technology",
}

var fallbackVibes = []string{
	"Neon Crypto Chaos",
	"Retro Stonks Vibes",
	"Digital Doge Dreams",
	"Glitchy Tech Nostalgia",
	"Cybernetic Meme Energy",
	"Synthwave Humor Matrix",
	"Neo Tokyo Laughter",
	"Quantum Meme State",
}

func randomFallbackCaption() string {
	return fallbackCaptions[rand.Intn(len(fallbackCaptions))]
}

func randomFallbackVibe() string {
	return fallbackVibes[rand.Intn(len(fallbackVibes))]
}
