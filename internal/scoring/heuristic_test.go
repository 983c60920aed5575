package scoring

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/match-engine/internal/types"
)

func TestScore_WorkedExample(t *testing.T) {
	// One exact skill match out of two required, education and
	// certification terms both neutral:
	// (0.5*0.6 + 0.5*0.25 + 0.5*0.15) * 100 = 50.00
	profile := &types.ApplicantProfile{Skills: []string{"Python", "SQL"}}
	job := &types.JobRequirements{SkillsRequired: []string{"Python", "AWS"}}

	result := Score(profile, job)

	assert.Equal(t, 50.0, result.MatchScore)
	assert.True(t, result.FallbackUsed)
	assert.Equal(t, 0.5, result.ConfidenceScore)
	assert.Equal(t, []string{"Python"}, result.Analysis.SkillsAssessment.MatchedSkills)
	assert.Equal(t, []string{"AWS"}, result.Analysis.SkillsAssessment.MissingSkills)
}

func TestScore_NoRequirementsIsNeutralNotPerfect(t *testing.T) {
	profile := &types.ApplicantProfile{Skills: []string{"Go"}}
	job := &types.JobRequirements{Title: "Open role"}

	result := Score(profile, job)

	// All three terms neutral at 0.5.
	assert.Equal(t, 50.0, result.MatchScore)
	assert.NotZero(t, result.MatchScore)
	assert.NotEqual(t, 100.0, result.MatchScore)
}

func TestScore_EmptyProfileAndJobNeverPanics(t *testing.T) {
	result := Score(&types.ApplicantProfile{}, &types.JobRequirements{})

	assert.Equal(t, 50.0, result.MatchScore)
	assert.NotEmpty(t, result.Feedback)
	assert.True(t, result.FallbackUsed)
}

func TestScore_PartialMatchCreditCaps(t *testing.T) {
	// "react" is consumed by its exact match and cannot also earn partial
	// credit for "reactjs", so the ratio is 1/2 — well under the
	// (1 + 0.3)/2 ceiling the credit rule allows.
	profile := &types.ApplicantProfile{Skills: []string{"react"}}
	job := &types.JobRequirements{SkillsRequired: []string{"react", "reactjs"}}

	ratio := skillsMatchRatio(profile.Skills, job.SkillsRequired)
	assert.InDelta(t, 0.5, ratio, 1e-9)
	assert.LessOrEqual(t, ratio, (1.0+partialMatchCredit)/2)

	// A distinct fuzzy skill does earn the credit.
	withPartial := skillsMatchRatio([]string{"react", "reactjs framework"}, []string{"react", "reactjs"})
	assert.InDelta(t, (1.0+partialMatchCredit)/2, withPartial, 1e-9)
}

func TestSkillsMatchRatio_CappedAtOne(t *testing.T) {
	// Every required skill has an exact match; extra partial credit must
	// never push the ratio above 1.0.
	ratio := skillsMatchRatio(
		[]string{"react", "react native", "reactjs"},
		[]string{"react"},
	)
	assert.LessOrEqual(t, ratio, 1.0)
}

func TestSkillsMatchRatio_FirstTokenPartialMatch(t *testing.T) {
	ratio := skillsMatchRatio([]string{"react hooks"}, []string{"react native"})
	assert.InDelta(t, 0.3, ratio, 1e-9)
}

func TestEducationMatchRatio_Edges(t *testing.T) {
	tests := []struct {
		name       string
		educations []types.Education
		preferred  []string
		expected   float64
	}{
		{name: "no preferred courses is neutral", educations: []types.Education{{Degree: "BSc"}}, preferred: nil, expected: 0.5},
		{name: "no education records is zero", educations: nil, preferred: []string{"BSc Computer Science"}, expected: 0.0},
		{
			name:       "case-insensitive degree match",
			educations: []types.Education{{Degree: "bsc computer science"}},
			preferred:  []string{"BSc Computer Science", "BEng"},
			expected:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, educationMatchRatio(tt.educations, tt.preferred), 1e-9)
		})
	}
}

func TestCertificationMatchRatio_MatchesOnProvider(t *testing.T) {
	certs := []types.Certificate{
		{Name: "Solutions Architect Associate", Provider: "AWS"},
	}

	assert.InDelta(t, 1.0, certificationMatchRatio(certs, []string{"aws"}), 1e-9)
	assert.InDelta(t, 0.0, certificationMatchRatio(certs, []string{"Microsoft"}), 1e-9)
	assert.InDelta(t, 0.5, certificationMatchRatio(certs, nil), 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	profile := &types.ApplicantProfile{
		Skills: []string{"Python", "Docker", "PostgreSQL"},
		Educations: []types.Education{
			{Degree: "BSc Computer Science", Institution: "Wits"},
		},
		Certificates: []types.Certificate{{Name: "AWS", Provider: "AWS"}},
	}
	job := &types.JobRequirements{
		Title:                 "Platform Engineer",
		SkillsRequired:        []string{"Python", "Kubernetes", "AWS", "Terraform"},
		CoursesPreferred:      []string{"BSc Computer Science"},
		CertificatesPreferred: []string{"AWS", "CNCF"},
	}

	first := Score(profile, job)
	second := Score(profile, job)

	require.Equal(t, first.MatchScore, second.MatchScore)
	assert.Equal(t, first.Feedback, second.Feedback)
	assert.Equal(t, first.Analysis, second.Analysis)
}

func TestScore_BoundsAndRounding(t *testing.T) {
	profiles := []*types.ApplicantProfile{
		{},
		{Skills: []string{"go", "python", "sql", "aws"}},
		{Skills: []string{"go"}, Educations: []types.Education{{Degree: "BSc"}}},
	}
	jobs := []*types.JobRequirements{
		{},
		{SkillsRequired: []string{"go", "rust", "zig"}},
		{SkillsRequired: []string{"java"}, CoursesPreferred: []string{"BSc"}, CertificatesPreferred: []string{"Oracle"}},
	}

	for i, profile := range profiles {
		for j, job := range jobs {
			t.Run(fmt.Sprintf("profile%d_job%d", i, j), func(t *testing.T) {
				result := Score(profile, job)
				assert.GreaterOrEqual(t, result.MatchScore, 0.0)
				assert.LessOrEqual(t, result.MatchScore, 100.0)

				// Rounded to at most 2 decimal places.
				assert.InDelta(t, math.Round(result.MatchScore*100), result.MatchScore*100, 1e-6,
					"score %v has more than 2 decimals", result.MatchScore)
			})
		}
	}
}

func TestBuildFeedback_ScoreBands(t *testing.T) {
	profile := &types.ApplicantProfile{Skills: []string{"python"}}
	job := &types.JobRequirements{SkillsRequired: []string{"python", "aws"}}

	assert.Contains(t, buildFeedback(profile, job, 85), "Excellent match")
	assert.Contains(t, buildFeedback(profile, job, 65), "Good potential")
	assert.Contains(t, buildFeedback(profile, job, 30), "core technical skills")
}

func TestBuildFeedback_HighDemandGaps(t *testing.T) {
	profile := &types.ApplicantProfile{Skills: []string{"cobol"}}
	job := &types.JobRequirements{SkillsRequired: []string{"docker", "kubernetes", "fortran"}}

	feedback := buildFeedback(profile, job, 20)

	assert.Contains(t, feedback, "high-demand")
	assert.Contains(t, feedback, "docker")
	assert.Contains(t, feedback, "kubernetes")
	assert.NotContains(t, strings.Split(feedback, "high-demand")[1], "fortran")
}

func TestBuildFeedback_TruncatesToTopThree(t *testing.T) {
	profile := &types.ApplicantProfile{}
	job := &types.JobRequirements{SkillsRequired: []string{"a1", "b2", "c3", "d4", "e5"}}

	feedback := buildFeedback(profile, job, 10)

	assert.Contains(t, feedback, "a1, b2, c3")
	assert.NotContains(t, feedback, "d4")
}
