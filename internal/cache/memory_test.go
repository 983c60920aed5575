package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/match-engine/internal/types"
)

func TestMemory_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	result := &types.MatchResult{MatchScore: 72.5, Feedback: "good fit"}

	require.NoError(t, store.Set(ctx, "key-1", result, time.Minute))

	got, hit, err := store.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, result, got)
}

func TestMemory_MissOnUnknownKey(t *testing.T) {
	got, hit, err := NewMemory().Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, got)
}

func TestMemory_ExpiresEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	current := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Set(ctx, "key-1", &types.MatchResult{MatchScore: 10}, time.Hour))

	current = current.Add(2 * time.Hour)

	got, hit, err := store.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, got)
}

func TestMemory_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Set(ctx, "key-1", &types.MatchResult{}, time.Minute))
	require.NoError(t, store.Clear(ctx))

	_, hit, err := store.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Set(ctx, "shared", &types.MatchResult{MatchScore: 50}, time.Minute)
				_, _, _ = store.Get(ctx, "shared")
			}
		}()
	}
	wg.Wait()

	got, hit, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 50.0, got.MatchScore)
}
