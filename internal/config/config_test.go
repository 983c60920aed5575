package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 0.3, cfg.Temperature)
	assert.Equal(t, 8192, cfg.MaxOutputTokens)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeoutDuration())
	assert.Equal(t, 24*time.Hour, cfg.CacheTTLDuration())
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.CacheOn())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"model": "gemini-2.5-pro", "port": 9090, "cache_enabled": false, "api_key": "file-key"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
	assert.False(t, cfg.CacheOn())
	// File values win over environment values.
	assert.Equal(t, "file-key", cfg.APIKey)
	// Unset fields still get defaults.
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoad_EnvFill(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/matches")
	t.Setenv("PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/matches", cfg.DatabaseURL)
	assert.Equal(t, 3000, cfg.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_OutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"temperature": 5}`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Temperature")
}
