// Package extraction builds normalized applicant profiles and job
// requirements from raw platform records. Optional-field handling is
// decided once here: downstream layers always see fully populated value
// objects with empty collections for absent categories.
package extraction

import "strings"

// NormalizeSkill lowercases and trims a skill name for comparison.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// DedupeSkills removes duplicate skills case-insensitively, preserving the
// first-seen casing and order. Empty entries are dropped.
func DedupeSkills(skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}

	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

// dedupeLower trims entries, drops empties, and dedupes case-insensitively.
func dedupeLower(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}

	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
