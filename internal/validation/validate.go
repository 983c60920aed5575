// Package validation parses and sanity-checks raw LLM output into a
// MatchResult candidate. Every way the model can go off-contract — fenced
// or chatty output, broken JSON, missing sections, out-of-range scores —
// resolves to a recoverable *Error rather than a panic or an escaping
// parse failure, so the engine can fall back cleanly.
package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/hirepath/match-engine/internal/types"
)

//go:embed match_result_schema.json
var matchResultSchema string

// Error is a recoverable validation failure: the response could not be
// turned into a usable MatchResult.
type Error struct {
	Reason string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid analysis response: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid analysis response: %s", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ParseAndValidate extracts the JSON object from raw model output,
// validates it against the response schema, and unmarshals it into a
// MatchResult. Any returned error is an *Error.
func ParseAndValidate(raw string) (*types.MatchResult, error) {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	docLoader := gojsonschema.NewStringLoader(jsonStr)
	schemaLoader := gojsonschema.NewStringLoader(matchResultSchema)

	outcome, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, &Error{Reason: "response is not valid JSON", Cause: err}
	}
	if !outcome.Valid() {
		return nil, &Error{Reason: describeViolations(outcome)}
	}

	var result types.MatchResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, &Error{Reason: "response does not match the result shape", Cause: err}
	}

	result.MatchScore = math.Round(result.MatchScore*100) / 100
	result.ConfidenceScore = clamp01(result.ConfidenceScore)
	result.FallbackUsed = false

	return &result, nil
}

// extractJSON strips Markdown code fences and brackets the first "{" to
// the last "}" of the remaining text.
func extractJSON(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", &Error{Reason: "no JSON object found in response"}
	}

	return cleaned[start : end+1], nil
}

// describeViolations flattens schema violations into one message,
// first failure leading.
func describeViolations(outcome *gojsonschema.Result) string {
	var sb strings.Builder
	for i, desc := range outcome.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(field)
		sb.WriteString(": ")
		sb.WriteString(desc.Description())
	}
	return sb.String()
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
