// Package llm wraps the external generative-AI boundary used for match
// analysis. It owns model configuration, retry/backoff, and the
// safety-filter handling the matching domain needs.
package llm

import "time"

// Default generation settings for match analysis.
const (
	DefaultModel           = "gemini-2.5-flash"
	DefaultTemperature     = 0.3
	DefaultMaxOutputTokens = 8192
	DefaultMaxRetries      = 3
	DefaultRetryBaseDelay  = time.Second
	DefaultRequestTimeout  = 30 * time.Second
)

// Config holds the generation settings for the Gemini client.
type Config struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	// MaxRetries bounds attempts for hard (transport/API) failures. Soft
	// failures are never retried.
	MaxRetries     int
	RetryBaseDelay time.Duration
	RequestTimeout time.Duration
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
		MaxRetries:      DefaultMaxRetries,
		RetryBaseDelay:  DefaultRetryBaseDelay,
		RequestTimeout:  DefaultRequestTimeout,
	}
}

// normalized returns a copy with zero values replaced by defaults.
func (c *Config) normalized() Config {
	cfg := *c
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	return cfg
}
