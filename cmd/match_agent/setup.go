package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hirepath/match-engine/internal/cache"
	"github.com/hirepath/match-engine/internal/config"
	"github.com/hirepath/match-engine/internal/engine"
	"github.com/hirepath/match-engine/internal/llm"
	"github.com/hirepath/match-engine/internal/logger"
)

// buildEngine wires the cache store, LLM client, and engine from
// configuration. A missing API key is not fatal; the engine runs in
// fallback mode and every analysis uses the heuristic scorer.
func buildEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, *zap.Logger, error) {
	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	var store cache.Store
	if cfg.DatabaseURL != "" {
		pg, err := cache.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to cache database: %w", err)
		}
		store = pg
	} else {
		store = cache.NewMemory()
	}

	var client llm.Client
	if cfg.APIKey != "" {
		llmCfg := &llm.Config{
			Model:           cfg.Model,
			Temperature:     float32(cfg.Temperature),
			MaxOutputTokens: int32(cfg.MaxOutputTokens),
			MaxRetries:      cfg.MaxRetries,
			RetryBaseDelay:  llm.DefaultRetryBaseDelay,
			RequestTimeout:  cfg.RequestTimeoutDuration(),
		}
		client, err = llm.NewGeminiClient(ctx, llmCfg, cfg.APIKey, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, running in fallback mode")
	}

	eng := engine.New(client, store, log, engine.Config{
		CacheEnabled: cfg.CacheOn(),
		CacheTTL:     cfg.CacheTTLDuration(),
	})
	return eng, log, nil
}
