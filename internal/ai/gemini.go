package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"memehustle/utils"
)

// CaptionGenerator produces short AI text for a meme's tag sequence. Calls
// are idempotent-safe to repeat: successful results are cached per exact
// tag sequence, failures are not cached.
type CaptionGenerator interface {
	// GenerateCaption creates a one-line caption for the tags.
	GenerateCaption(ctx context.Context, tags []string) (string, error)
	// GenerateVibe creates a very short vibe/mood phrase for the tags.
	GenerateVibe(ctx context.Context, tags []string) (string, error)
}

// Config holds the Gemini connection settings.
type Config struct {
	APIKey  string
	Model   string        // defaults to gemini-2.0-flash
	Timeout time.Duration // per-call bound, defaults to 5s
}

// GeminiClient implements CaptionGenerator using the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration

	mu    sync.Mutex
	cache map[string]string
}

// NewGemini builds a Gemini-backed caption generator.
func NewGemini(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key must be set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
		cache:   make(map[string]string),
	}, nil
}

// GenerateCaption creates a one-line caption for the tags.
func (g *GeminiClient) GenerateCaption(ctx context.Context, tags []string) (string, error) {
	prompt := fmt.Sprintf(
		"Generate a single funny caption for a meme with tags: %s. Keep it short, witty, and on a single line. Do not include options, numbering, or markdown formatting. Just return a single caption.",
		strings.Join(tags, ", "),
	)
	return g.generate(ctx, cacheKey("caption", tags), prompt)
}

// GenerateVibe creates a very short vibe phrase for the tags.
func (g *GeminiClient) GenerateVibe(ctx context.Context, tags []string) (string, error) {
	prompt := fmt.Sprintf(
		"Describe the vibe of a meme with tags: %s in a single word or very short phrase (max 3 words). Make it sound cyberpunk and trendy. No markdown, no newlines, no punctuation at the end.",
		strings.Join(tags, ", "),
	)
	return g.generate(ctx, cacheKey("vibe", tags), prompt)
}

// cacheKey encodes the exact tag sequence. Tags are length-prefixed so no
// two distinct sequences share a key, whatever characters the tags contain.
func cacheKey(kind string, tags []string) string {
	var b strings.Builder
	b.WriteString(kind)
	for _, tag := range tags {
		fmt.Fprintf(&b, "|%d:%s", len(tag), tag)
	}
	return b.String()
}

func (g *GeminiClient) generate(ctx context.Context, key, prompt string) (string, error) {
	g.mu.Lock()
	if text, ok := g.cache[key]; ok {
		g.mu.Unlock()
		return text, nil
	}
	g.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}

	g.mu.Lock()
	g.cache[key] = text
	g.mu.Unlock()

	utils.Debug("gemini: generated text", map[string]any{"cache_key": key})
	return text, nil
}
