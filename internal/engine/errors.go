// Package engine orchestrates match analysis: cache lookup, LLM call,
// response validation, and the deterministic heuristic fallback.
package engine

import "fmt"

// The three recoverable failure classes of the LLM path. None of them
// ever escapes Analyze; each resolves to the heuristic fallback. They are
// distinct types so logs and tests can tell the paths apart.

// TransientError wraps a transport/API failure that survived the client's
// internal retries.
type TransientError struct {
	Cause error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient LLM failure: %v", e.Cause)
}

func (e *TransientError) Unwrap() error {
	return e.Cause
}

// SoftFailureError marks a response that completed without transport
// error but carries no usable content (blocked or truncated).
type SoftFailureError struct {
	Reason string
}

func (e *SoftFailureError) Error() string {
	return "soft LLM failure: " + e.Reason
}

// MalformedResponseError wraps a validation rejection of model output.
// Raw holds the rejected text for diagnostics.
type MalformedResponseError struct {
	Cause error
	Raw   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed LLM response: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
