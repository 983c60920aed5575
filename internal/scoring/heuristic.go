// Package scoring implements the deterministic heuristic match scorer.
// It is the resilience fallback for the LLM analysis path and the only
// path when no LLM client is configured. It performs no I/O and never
// fails for well-typed input.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/hirepath/match-engine/internal/extraction"
	"github.com/hirepath/match-engine/internal/types"
)

// Weights of the three scored categories. The scheme is the canonical
// 3-factor one: skills 0.6, education 0.25, certifications 0.15.
// Experience records inform the LLM prompt and the report but carry no
// heuristic weight.
const (
	SkillsWeight        = 0.6
	EducationWeight     = 0.25
	CertificationWeight = 0.15
)

const (
	// neutralRatio is the per-term ratio when the job specifies no
	// requirements for that category. Absent requirements are neutral,
	// not perfect and not zero.
	neutralRatio = 0.5

	// partialMatchCredit is the fraction of a full match granted for a
	// fuzzy (substring or shared-first-token) skill match.
	partialMatchCredit = 0.3

	// fallbackConfidence marks heuristic results as low-confidence so UI
	// layers can signal reduced trust.
	fallbackConfidence = 0.5
)

// Score computes a deterministic MatchResult for the profile/job pair.
// Identical inputs always produce an identical result, including the
// feedback text byte for byte.
func Score(profile *types.ApplicantProfile, job *types.JobRequirements) *types.MatchResult {
	skillsRatio := skillsMatchRatio(profile.Skills, job.SkillsRequired)
	educationRatio := educationMatchRatio(profile.Educations, job.CoursesPreferred)
	certRatio := certificationMatchRatio(profile.Certificates, job.CertificatesPreferred)

	matchScore := round2((skillsRatio*SkillsWeight +
		educationRatio*EducationWeight +
		certRatio*CertificationWeight) * 100)

	matched, missing := exactSkillSplit(profile.Skills, job.SkillsRequired)

	degrees := make([]string, 0, len(profile.Educations))
	for _, edu := range profile.Educations {
		if edu.Degree != "" {
			degrees = append(degrees, edu.Degree)
		}
	}

	certNames := make([]string, 0, len(profile.Certificates))
	for _, cert := range profile.Certificates {
		if name := certificateIdentity(cert); name != "" {
			certNames = append(certNames, name)
		}
	}

	return &types.MatchResult{
		MatchScore: matchScore,
		Analysis: types.Analysis{
			SkillsAssessment: types.SkillsAssessment{
				MatchedSkills:   matched,
				MissingSkills:   missing,
				StrengthRating:  strengthRating(skillsRatio),
				MatchPercentage: int(skillsRatio * 100),
			},
			EducationAssessment: types.EducationAssessment{
				QualificationMatch: educationRatio > 0.5,
				RelevantDegrees:    degrees,
				MatchQuality:       matchQualityRating(educationRatio),
			},
			CertificationAssessment: types.CertificationAssessment{
				RelevantCertifications: certNames,
				MissingCertifications:  append([]string{}, job.CertificatesPreferred...),
				CertificationScore:     int(certRatio * 100),
			},
		},
		Feedback:        buildFeedback(profile, job, matchScore),
		ConfidenceScore: fallbackConfidence,
		FallbackUsed:    true,
	}
}

// skillsMatchRatio scores required-skill coverage in [0,1]. Exact matches
// count 1.0 each; a required skill without an exact match earns partial
// credit when some applicant skill is a substring of it (or vice versa)
// or shares its first whitespace token. An empty requirement set is
// neutral.
func skillsMatchRatio(applicantSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return neutralRatio
	}

	applicant := lowerSet(applicantSkills)
	job := lowerSet(jobSkills)

	exact := make(map[string]bool, len(job))
	for skill := range job {
		if applicant[skill] {
			exact[skill] = true
		}
	}

	partial := 0.0
	for jobSkill := range job {
		if exact[jobSkill] {
			continue
		}
		for appSkill := range applicant {
			if exact[appSkill] {
				continue
			}
			if isPartialMatch(jobSkill, appSkill) {
				partial += partialMatchCredit
				break
			}
		}
	}

	total := float64(len(exact)) + partial
	return math.Min(total/float64(len(job)), 1.0)
}

// isPartialMatch reports a fuzzy skill relation: containment either way
// or identical first tokens ("react native" vs "react hooks").
func isPartialMatch(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	aTokens := strings.Fields(a)
	bTokens := strings.Fields(b)
	return len(aTokens) > 0 && len(bTokens) > 0 && aTokens[0] == bTokens[0]
}

// educationMatchRatio scores preferred-course coverage by degree name.
// No preferred courses is neutral; preferred courses with no education
// records is zero.
func educationMatchRatio(educations []types.Education, preferredCourses []string) float64 {
	preferred := lowerSet(preferredCourses)
	if len(preferred) == 0 {
		return neutralRatio
	}
	if len(educations) == 0 {
		return 0.0
	}

	degrees := make(map[string]bool, len(educations))
	for _, edu := range educations {
		if name := extraction.NormalizeSkill(edu.Degree); name != "" {
			degrees[name] = true
		}
	}

	matches := 0
	for course := range preferred {
		if degrees[course] {
			matches++
		}
	}
	return float64(matches) / float64(len(preferred))
}

// certificationMatchRatio scores preferred-certificate coverage by
// provider name, with the same neutral/zero edge handling as education.
func certificationMatchRatio(certificates []types.Certificate, preferredCerts []string) float64 {
	preferred := lowerSet(preferredCerts)
	if len(preferred) == 0 {
		return neutralRatio
	}
	if len(certificates) == 0 {
		return 0.0
	}

	names := make(map[string]bool, len(certificates))
	for _, cert := range certificates {
		if name := extraction.NormalizeSkill(certificateIdentity(cert)); name != "" {
			names[name] = true
		}
	}

	matches := 0
	for cert := range preferred {
		if names[cert] {
			matches++
		}
	}
	return float64(matches) / float64(len(preferred))
}

// certificateIdentity resolves the name a certificate is matched under.
func certificateIdentity(cert types.Certificate) string {
	if cert.Provider != "" {
		return cert.Provider
	}
	return cert.Name
}

// exactSkillSplit partitions required skills into matched and missing
// using exact case-insensitive comparison only. Output is sorted so the
// report is deterministic.
func exactSkillSplit(applicantSkills, jobSkills []string) (matched, missing []string) {
	applicant := lowerSet(applicantSkills)

	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0, len(jobSkills))
	seen := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		key := extraction.NormalizeSkill(skill)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if applicant[key] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

func strengthRating(ratio float64) string {
	switch {
	case ratio >= 0.7:
		return "high"
	case ratio >= 0.4:
		return "medium"
	default:
		return "low"
	}
}

func matchQualityRating(ratio float64) string {
	switch {
	case ratio >= 0.8:
		return "excellent"
	case ratio >= 0.6:
		return "good"
	case ratio >= 0.4:
		return "moderate"
	default:
		return "poor"
	}
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if normalized := extraction.NormalizeSkill(v); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
