package scoring

import (
	"sort"
	"strings"

	"github.com/hirepath/match-engine/internal/extraction"
	"github.com/hirepath/match-engine/internal/types"
)

// highDemandSkills is the reference set of skills in consistently high
// market demand, used to sharpen feedback about gaps.
var highDemandSkills = map[string]bool{
	"aws":        true,
	"azure":      true,
	"python":     true,
	"javascript": true,
	"react":      true,
	"node.js":    true,
	"docker":     true,
	"kubernetes": true,
	"devops":     true,
	"cloud":      true,
}

const feedbackTopSkills = 3

// buildFeedback concatenates template sentences keyed on matched skills,
// missing skills, high-demand gaps, and the score band. No randomness:
// identical inputs produce identical text.
func buildFeedback(profile *types.ApplicantProfile, job *types.JobRequirements, matchScore float64) string {
	applicant := lowerSet(profile.Skills)
	required := lowerSet(job.SkillsRequired)

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for skill := range required {
		if applicant[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	var parts []string

	if len(matched) > 0 {
		parts = append(parts, "Strong technical match on: "+strings.Join(topN(matched, feedbackTopSkills), ", ")+".")
	}

	if len(missing) > 0 {
		parts = append(parts, "Consider developing these required skills: "+strings.Join(topN(missing, feedbackTopSkills), ", ")+".")
	}

	hotGaps := make([]string, 0, len(missing))
	for _, skill := range missing {
		if highDemandSkills[extraction.NormalizeSkill(skill)] {
			hotGaps = append(hotGaps, skill)
		}
	}
	if len(hotGaps) > 0 {
		parts = append(parts, "These are currently high-demand skills in the market: "+strings.Join(hotGaps, ", ")+".")
	}

	switch {
	case matchScore >= 80:
		parts = append(parts, "Excellent match for this role!")
	case matchScore >= 60:
		parts = append(parts, "Good potential with some targeted skill development.")
	default:
		parts = append(parts, "Focus on building the core technical skills this role asks for.")
	}

	return strings.Join(parts, " ")
}

func topN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
