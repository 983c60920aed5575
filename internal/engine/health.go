package engine

import (
	"context"
	"strings"
	"time"
)

// HealthStatus reports the operational state of the analysis engine.
type HealthStatus struct {
	AIServiceAvailable bool      `json:"ai_service_available"`
	FallbackMode       bool      `json:"fallback_mode"`
	CacheEnabled       bool      `json:"cache_enabled"`
	APIConnectivity    *bool     `json:"api_connectivity,omitempty"`
	Error              string    `json:"error,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

// Health reports whether the LLM boundary is configured and, when probe
// is true, whether it actually answers. The probe issues one tiny
// generation request.
func (e *Engine) Health(ctx context.Context, probe bool) HealthStatus {
	status := HealthStatus{
		AIServiceAvailable: e.client != nil,
		FallbackMode:       e.client == nil,
		CacheEnabled:       e.config.CacheEnabled,
		Timestamp:          time.Now().UTC(),
	}

	if probe && e.client != nil {
		text, err := e.client.Generate(ctx, "Respond with exactly 'OK'")
		connected := err == nil && strings.Contains(text, "OK")
		status.APIConnectivity = &connected
		if err != nil {
			status.Error = err.Error()
		}
	}

	return status
}

// MatchQuality maps a match score to its display band.
func MatchQuality(score float64) string {
	switch {
	case score >= 80:
		return "Excellent Match"
	case score >= 70:
		return "Good Match"
	case score >= 60:
		return "Fair Match"
	case score >= 50:
		return "Moderate Match"
	default:
		return "Needs Improvement"
	}
}
