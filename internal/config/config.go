// Package config provides configuration loading and validation for the
// match engine binaries.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config represents runtime configuration. It can be loaded from a JSON
// file; missing values fall back to environment variables and then to
// built-in defaults.
type Config struct {
	// LLM
	APIKey          string  `json:"api_key,omitempty"`           // Gemini API key
	Model           string  `json:"model,omitempty"`             // Model name, e.g. gemini-2.5-flash
	Temperature     float64 `json:"temperature,omitempty" validate:"gte=0,lte=2"`
	MaxOutputTokens int     `json:"max_output_tokens,omitempty" validate:"gte=0"`
	MaxRetries      int     `json:"max_retries,omitempty" validate:"gte=0,lte=10"`
	RequestTimeout  int     `json:"request_timeout_seconds,omitempty" validate:"gte=0"`

	// Cache
	CacheEnabled *bool  `json:"cache_enabled,omitempty"`   // nil means enabled
	CacheTTL     int    `json:"cache_ttl_seconds,omitempty" validate:"gte=0"`
	DatabaseURL  string `json:"database_url,omitempty"`    // PostgreSQL cache backend; empty means in-memory

	// Server
	Port int `json:"port,omitempty" validate:"gte=0,lte=65535"`

	// Logging
	JSONLogs bool `json:"json_logs,omitempty"`
	Verbose  bool `json:"verbose,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Model:           "gemini-2.5-flash",
		Temperature:     0.3,
		MaxOutputTokens: 8192,
		MaxRetries:      3,
		RequestTimeout:  30,
		CacheTTL:        int((24 * time.Hour).Seconds()),
		Port:            8080,
	}
}

// Load reads configuration from a JSON file. An empty path yields the
// defaults with environment fill applied.
func Load(path string) (*Config, error) {
	cfg := Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.fillFromEnv()
	merged := cfg.MergeWithDefaults(Default())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// fillFromEnv fills unset fields from the process environment. File
// values win over environment values.
func (c *Config) fillFromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.Port == 0 {
		if port := os.Getenv("PORT"); port != "" {
			fmt.Sscanf(port, "%d", &c.Port)
		}
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("config error: field %s failed %s validation", errs[0].Field(), errs[0].Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. Booleans are not merged; explicit flags always win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.MaxOutputTokens == 0 {
		result.MaxOutputTokens = defaults.MaxOutputTokens
	}
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}
	if result.RequestTimeout == 0 {
		result.RequestTimeout = defaults.RequestTimeout
	}
	if result.CacheTTL == 0 {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

// CacheOn reports whether caching is enabled. Unset means enabled.
func (c *Config) CacheOn() bool {
	return c.CacheEnabled == nil || *c.CacheEnabled
}

// CacheTTLDuration returns the cache TTL as a duration.
func (c *Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// RequestTimeoutDuration returns the per-request LLM timeout.
func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}
