package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Client is the generative-text boundary the match engine depends on.
// Generate returns the raw model text, or "" with a nil error for a soft
// failure (blocked or truncated response). A non-nil error means all
// retries for hard failures were exhausted.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GeminiClient implements Client on the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	config Config
	logger *zap.Logger
}

// NewGeminiClient creates a Gemini-backed client. The API key is required;
// callers without one should run the engine in fallback-only mode instead.
func NewGeminiClient(ctx context.Context, cfg *Config, apiKey string, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: cfg.normalized(),
		logger: logger,
	}, nil
}

// Generate sends the prompt and returns the model text. Hard failures are
// retried with exponential backoff; a blocked or truncated response is a
// soft failure returned as ("", nil) without retrying.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.config.RetryBaseDelay * time.Duration(1<<(attempt-1))
			c.logger.Warn("retrying generate call",
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", c.config.MaxRetries),
				zap.Duration("delay", delay),
				zap.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		text, soft, err := c.generateOnce(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		if soft {
			return "", nil
		}
		return text, nil
	}

	return "", fmt.Errorf("gemini call failed after %d attempts: %w", c.config.MaxRetries, lastErr)
}

// generateOnce performs a single bounded API call. The soft return value
// marks responses that completed without transport error but carry no
// usable content.
func (c *GeminiClient) generateOnce(ctx context.Context, prompt string) (text string, soft bool, err error) {
	callCtx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)
	model.SetMaxOutputTokens(c.config.MaxOutputTokens)
	// Match analysis routinely discusses sensitive personal and career
	// topics; default content filters block legitimate prompts.
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}

	resp, err := model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		return "", false, fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil {
			c.logger.Error("prompt blocked",
				zap.String("block_reason", resp.PromptFeedback.BlockReason.String()))
		} else {
			c.logger.Error("no candidates in response")
		}
		return "", true, nil
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason != genai.FinishReasonStop {
		c.logger.Error("generation stopped early",
			zap.String("finish_reason", candidate.FinishReason.String()))
		return "", true, nil
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", true, nil
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			parts = append(parts, string(t))
		}
	}
	if len(parts) == 0 {
		return "", true, nil
	}

	return strings.Join(parts, ""), false, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
