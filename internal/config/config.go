package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the API server.
type Config struct {
	Port      string          `mapstructure:"port"`
	LogLevel  string          `mapstructure:"log_level"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Broadcast BroadcastConfig `mapstructure:"broadcast"`
}

// CacheConfig tunes the leaderboard snapshot cache.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// GeminiConfig tunes the caption generator. An empty APIKey disables AI
// enrichment and the server falls back to canned captions.
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// BroadcastConfig tunes the websocket hub.
type BroadcastConfig struct {
	Buffer int `mapstructure:"buffer"`
}

// Load reads config.yaml from the working directory, if present, and
// overlays MEMEHUSTLE_* environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("memehustle")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("cache.ttl", "60s")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout", "5s")
	v.SetDefault("broadcast.buffer", 256)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, nil
}
