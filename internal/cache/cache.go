// Package cache provides TTL stores for computed match results, keyed by
// a content hash of the analysis inputs. Entries are immutable once
// written, so concurrent writers for the same key race harmlessly to an
// equivalent value.
package cache

import (
	"context"
	"time"

	"github.com/hirepath/match-engine/internal/types"
)

// DefaultTTL is how long a cached match result stays valid.
const DefaultTTL = 24 * time.Hour

// Store is a TTL cache for match results. Implementations must be safe
// for concurrent use. The engine treats every store error as a miss, so
// implementations should return errors rather than panic.
type Store interface {
	// Get returns the cached result and true on a hit. Expired or absent
	// entries return (nil, false, nil).
	Get(ctx context.Context, key string) (*types.MatchResult, bool, error)
	// Set stores the result under key for the given TTL.
	Set(ctx context.Context, key string, result *types.MatchResult, ttl time.Duration) error
	// Clear removes all entries.
	Clear(ctx context.Context) error
}
