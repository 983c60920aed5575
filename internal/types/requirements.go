package types

import "strings"

// ExperienceLevel is the seniority a job posting asks for.
type ExperienceLevel string

// Experience levels, ordered from junior to senior.
const (
	LevelEntry  ExperienceLevel = "ENTRY"
	LevelMid    ExperienceLevel = "MID"
	LevelSenior ExperienceLevel = "SENIOR"
	LevelLead   ExperienceLevel = "LEAD"
)

// ParseExperienceLevel maps a raw level string to an ExperienceLevel.
// Unknown or empty values default to MID, matching the job-posting default.
func ParseExperienceLevel(raw string) ExperienceLevel {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ENTRY", "JUNIOR":
		return LevelEntry
	case "MID", "INTERMEDIATE":
		return LevelMid
	case "SENIOR":
		return LevelSenior
	case "LEAD", "PRINCIPAL":
		return LevelLead
	default:
		return LevelMid
	}
}

// Rank returns the numeric rank of the level (ENTRY=1 .. LEAD=4).
func (l ExperienceLevel) Rank() int {
	switch l {
	case LevelEntry:
		return 1
	case LevelMid:
		return 2
	case LevelSenior:
		return 3
	case LevelLead:
		return 4
	default:
		return 2
	}
}

// JobRequirements is the normalized job side of a match analysis.
type JobRequirements struct {
	Title                 string          `json:"title"`
	Description           string          `json:"description"`
	SkillsRequired        []string        `json:"skills_required"`
	ExperienceLevel       ExperienceLevel `json:"experience_level"`
	CoursesPreferred      []string        `json:"courses_preferred"`
	CertificatesPreferred []string        `json:"certificates_preferred"`
}
