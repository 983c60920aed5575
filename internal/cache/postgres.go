package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hirepath/match-engine/internal/types"
)

// Postgres is a Store backed by a PostgreSQL table, for deployments where
// cached analyses must survive restarts and be shared across replicas.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres opens a connection pool, verifies it, and ensures the
// cache table exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Postgres{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

func (p *Postgres) ensureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS match_analysis_cache (
			cache_key  TEXT PRIMARY KEY,
			result     JSONB NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create cache table: %w", err)
	}
	return nil
}

// Get returns the cached result for key if it has not expired.
func (p *Postgres) Get(ctx context.Context, key string) (*types.MatchResult, bool, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx,
		`SELECT result FROM match_analysis_cache WHERE cache_key = $1 AND expires_at > NOW()`,
		key,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var result types.MatchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return &result, true, nil
}

// Set upserts the result under key with the given TTL.
func (p *Postgres) Set(ctx context.Context, key string, result *types.MatchResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	expiresAt := time.Now().Add(ttl)
	_, err = p.pool.Exec(ctx,
		`INSERT INTO match_analysis_cache (cache_key, result, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (cache_key) DO UPDATE SET result = $2, expires_at = $3`,
		key, payload, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Clear removes all cached analyses.
func (p *Postgres) Clear(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM match_analysis_cache`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
