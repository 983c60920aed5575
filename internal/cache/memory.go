package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hirepath/match-engine/internal/types"
)

// Memory is an in-process Store. It is the default backend when no
// database URL is configured.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	// now is swappable for expiry tests.
	now func() time.Time
}

type memoryEntry struct {
	result    *types.MatchResult
	expiresAt time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the cached result if present and not expired. Expired
// entries are dropped lazily.
func (m *Memory) Get(_ context.Context, key string) (*types.MatchResult, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	return entry.result, true, nil
}

// Set stores the result under key for the given TTL.
func (m *Memory) Set(_ context.Context, key string, result *types.MatchResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{result: result, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

// Clear removes all entries.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}
