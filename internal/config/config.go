// Package config defines the service configuration and its loading order:
// defaults, then an optional YAML file, then PITCHSIDE_-prefixed
// environment variables.
package config

import (
	"github.com/fortuna/pitchside/internal/narrative"
	"github.com/fortuna/pitchside/internal/statsbomb"
)

// Cache backend names.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// StatsBombBaseURL points at the open-data raw-file root.
	StatsBombBaseURL string `koanf:"statsbomb_base_url"`

	// CompetitionName and SeasonName pin the browsed season.
	CompetitionName string `koanf:"competition_name"`
	SeasonName      string `koanf:"season_name"`

	// CacheBackend selects the adapter's response cache: memory or redis.
	CacheBackend string `koanf:"cache_backend"`

	// RedisURL is used when CacheBackend is redis.
	RedisURL string `koanf:"redis_url"`

	// OpenAIBaseURL, OpenAIAPIKey and OpenAIModel configure the narrative
	// model endpoint.
	OpenAIBaseURL string `koanf:"openai_base_url"`
	OpenAIAPIKey  string `koanf:"openai_api_key"`
	OpenAIModel   string `koanf:"openai_model"`

	// OpenAITemperature and OpenAIMaxTokens bound the generation.
	OpenAITemperature float64 `koanf:"openai_temperature"`
	OpenAIMaxTokens   int     `koanf:"openai_max_tokens"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Addr:              ":8080",
		LogLevel:          "info",
		StatsBombBaseURL:  statsbomb.BaseURL,
		CompetitionName:   "La Liga",
		SeasonName:        "2018/2019",
		CacheBackend:      CacheMemory,
		RedisURL:          "redis://localhost:6379",
		OpenAIBaseURL:     narrative.DefaultBaseURL,
		OpenAIModel:       narrative.DefaultModel,
		OpenAITemperature: narrative.DefaultTemperature,
		OpenAIMaxTokens:   narrative.DefaultMaxTokens,
	}
}

// Narrative maps the OpenAI fields onto the narrative client config.
func (c *Config) Narrative() narrative.Config {
	return narrative.Config{
		BaseURL:     c.OpenAIBaseURL,
		APIKey:      c.OpenAIAPIKey,
		Model:       c.OpenAIModel,
		Temperature: c.OpenAITemperature,
		MaxTokens:   c.OpenAIMaxTokens,
	}
}
