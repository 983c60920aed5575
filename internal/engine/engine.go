package engine

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/hirepath/match-engine/internal/cache"
	"github.com/hirepath/match-engine/internal/llm"
	"github.com/hirepath/match-engine/internal/logger"
	"github.com/hirepath/match-engine/internal/scoring"
	"github.com/hirepath/match-engine/internal/types"
	"github.com/hirepath/match-engine/internal/validation"
)

// Config holds engine behavior settings.
type Config struct {
	// CacheEnabled toggles result caching. Disabled engines still work;
	// every call recomputes.
	CacheEnabled bool
	// CacheTTL is how long results stay cached. Zero means
	// cache.DefaultTTL.
	CacheTTL time.Duration
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{CacheEnabled: true, CacheTTL: cache.DefaultTTL}
}

// Engine is the public entry point for match analysis. It is stateless
// per call and safe for concurrent use; the cache store is the only
// shared resource.
type Engine struct {
	client llm.Client // nil when the LLM boundary is unavailable
	store  cache.Store
	logger *zap.Logger
	config Config
	group  singleflight.Group
}

// New builds an Engine. A nil client routes every analysis through the
// heuristic scorer; a nil store disables caching regardless of config.
func New(client llm.Client, store cache.Store, logger *zap.Logger, config Config) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = cache.DefaultTTL
	}
	if store == nil {
		config.CacheEnabled = false
	}
	return &Engine{
		client: client,
		store:  store,
		logger: logger,
		config: config,
	}
}

// Analyze computes the match result for a profile/job pair. It always
// returns a usable MatchResult for well-typed input: every recoverable
// failure on the LLM path resolves to the heuristic fallback. The only
// error condition is a contract violation by the caller.
func (e *Engine) Analyze(ctx context.Context, profile *types.ApplicantProfile, job *types.JobRequirements, coverLetter string) (*types.MatchResult, error) {
	if profile == nil {
		return nil, errors.New("applicant profile is required")
	}
	if job == nil {
		return nil, errors.New("job requirements are required")
	}

	log := e.logger.With(
		zap.String("job_title", job.Title),
		zap.Int("applicant_skills_count", len(profile.Skills)),
		zap.Bool("ai_enabled", e.client != nil),
	)
	log.Info("starting application match analysis")

	key := cacheKey(profile, job, coverLetter)

	if e.config.CacheEnabled {
		if cached, ok := e.cacheGet(ctx, key, log); ok {
			log.Info("returning cached analysis")
			return cached, nil
		}
	}

	// Concurrent calls for identical inputs share one computation.
	value, err, _ := e.group.Do(key, func() (any, error) {
		result := e.analyze(ctx, profile, job, coverLetter, log)
		if e.config.CacheEnabled {
			e.cacheSet(ctx, key, result, log)
		}
		return result, nil
	})
	if err != nil {
		// The analyze closure never returns an error; this guards the
		// singleflight contract anyway.
		return nil, err
	}

	return value.(*types.MatchResult), nil
}

// analyze runs the LLM path and falls back to the heuristic scorer on any
// recoverable failure.
func (e *Engine) analyze(ctx context.Context, profile *types.ApplicantProfile, job *types.JobRequirements, coverLetter string, log *zap.Logger) *types.MatchResult {
	result, err := e.analyzeWithLLM(ctx, profile, job, coverLetter)
	if err == nil {
		log.Info("analysis completed", zap.Float64("match_score", result.MatchScore))
		return result
	}

	switch failure := err.(type) {
	case *TransientError:
		log.Error("LLM call failed, using fallback", zap.Error(failure))
	case *SoftFailureError:
		log.Warn("LLM returned no usable content, using fallback", zap.String("reason", failure.Reason))
	case *MalformedResponseError:
		log.Warn("LLM response rejected, using fallback",
			zap.Error(failure),
			zap.String("raw_response", logger.TruncateForLog(failure.Raw, 500)),
		)
	default:
		log.Warn("LLM path unavailable, using fallback", zap.Error(err))
	}

	return scoring.Score(profile, job)
}

// errLLMDisabled routes directly to the fallback when no client is
// configured.
var errLLMDisabled = errors.New("no LLM client configured")

// analyzeWithLLM runs prompt building, generation, and validation. Every
// failure comes back as one of the recoverable error types.
func (e *Engine) analyzeWithLLM(ctx context.Context, profile *types.ApplicantProfile, job *types.JobRequirements, coverLetter string) (*types.MatchResult, error) {
	if e.client == nil {
		return nil, errLLMDisabled
	}

	prompt := BuildAnalysisPrompt(profile, job, coverLetter)

	raw, err := e.client.Generate(ctx, prompt)
	if err != nil {
		return nil, &TransientError{Cause: err}
	}
	if raw == "" {
		return nil, &SoftFailureError{Reason: "empty response (blocked or truncated)"}
	}

	result, err := validation.ParseAndValidate(raw)
	if err != nil {
		return nil, &MalformedResponseError{Cause: err, Raw: raw}
	}
	return result, nil
}

// cacheGet reads the cache; store errors are logged and treated as a
// miss so the cache can never fail an analysis.
func (e *Engine) cacheGet(ctx context.Context, key string, log *zap.Logger) (*types.MatchResult, bool) {
	result, hit, err := e.store.Get(ctx, key)
	if err != nil {
		log.Error("cache read failed", zap.Error(err))
		return nil, false
	}
	return result, hit
}

func (e *Engine) cacheSet(ctx context.Context, key string, result *types.MatchResult, log *zap.Logger) {
	if err := e.store.Set(ctx, key, result, e.config.CacheTTL); err != nil {
		log.Error("cache write failed", zap.Error(err))
	}
}

// ClearCache drops all cached analyses.
func (e *Engine) ClearCache(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	return e.store.Clear(ctx)
}

// Close releases the LLM client, if any.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// cacheKey hashes the canonical JSON serialization of the analysis
// inputs. Struct field order is fixed, so identical inputs always yield
// identical keys.
func cacheKey(profile *types.ApplicantProfile, job *types.JobRequirements, coverLetter string) string {
	payload := struct {
		Profile     *types.ApplicantProfile `json:"profile"`
		Job         *types.JobRequirements  `json:"job"`
		CoverLetter string                  `json:"cover_letter"`
	}{profile, job, coverLetter}

	data, err := json.Marshal(payload)
	if err != nil {
		// Value types marshal unconditionally; keep a defined key anyway.
		data = []byte(coverLetter)
	}

	sum := sha256.Sum256(data)
	return fmt.Sprintf("match_analysis_%x", sum)
}
