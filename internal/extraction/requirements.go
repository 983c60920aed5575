package extraction

import (
	"strings"

	"github.com/hirepath/match-engine/internal/types"
)

// JobPostingRecord is the raw job-side input to requirement extraction,
// assembled by the caller from a job posting and its related skill,
// course, and certificate-provider rows.
type JobPostingRecord struct {
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	SkillsRequired        []string `json:"skills_required"`
	ExperienceLevel       string   `json:"experience_level"`
	CoursesPreferred      []string `json:"courses_preferred"`
	CertificatesPreferred []string `json:"certificates_preferred"`
}

// BuildRequirements converts a raw job posting into normalized
// JobRequirements. HTML descriptions are reduced to plain text so the
// scoring prompt sees readable content rather than markup.
func BuildRequirements(rec JobPostingRecord) types.JobRequirements {
	description := strings.TrimSpace(rec.Description)
	if looksLikeHTML(description) {
		if text, err := ExtractText(description); err == nil {
			description = text
		}
	}

	return types.JobRequirements{
		Title:                 strings.TrimSpace(rec.Title),
		Description:           description,
		SkillsRequired:        DedupeSkills(rec.SkillsRequired),
		ExperienceLevel:       types.ParseExperienceLevel(rec.ExperienceLevel),
		CoursesPreferred:      dedupeLower(rec.CoursesPreferred),
		CertificatesPreferred: dedupeLower(rec.CertificatesPreferred),
	}
}

// looksLikeHTML is a cheap check for markup in job descriptions. Postings
// pasted from rich-text editors arrive wrapped in tags; plain descriptions
// that merely mention "<" are left untouched.
func looksLikeHTML(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range []string{"<p", "<div", "<br", "<ul", "<li", "<html", "<span", "<h1", "<h2", "<h3"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
