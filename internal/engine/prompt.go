package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hirepath/match-engine/internal/scoring"
	"github.com/hirepath/match-engine/internal/types"
)

// BuildAnalysisPrompt renders the job requirements, applicant profile,
// and cover letter into a single prompt that demands a strict JSON reply.
// Multi-valued profile fields are embedded as JSON fragments so the model
// sees structured data instead of free text. Pure string construction,
// deterministic for identical inputs.
func BuildAnalysisPrompt(profile *types.ApplicantProfile, job *types.JobRequirements, coverLetter string) string {
	var sb strings.Builder

	sb.WriteString("Analyze this job application match and provide a JSON response.\n\n")

	sb.WriteString("JOB REQUIREMENTS:\n")
	sb.WriteString("Title: " + orNA(job.Title) + "\n")
	sb.WriteString("Description: " + orNA(job.Description) + "\n")
	sb.WriteString("Required Skills: " + orNA(strings.Join(job.SkillsRequired, ", ")) + "\n")
	sb.WriteString("Experience Level: " + orNA(string(job.ExperienceLevel)) + "\n")
	sb.WriteString("Preferred Education: " + orNA(strings.Join(job.CoursesPreferred, ", ")) + "\n")
	sb.WriteString("Preferred Certificates: " + orNA(strings.Join(job.CertificatesPreferred, ", ")) + "\n\n")

	sb.WriteString("APPLICANT PROFILE:\n")
	sb.WriteString("Skills: " + orNA(strings.Join(profile.Skills, ", ")) + "\n")
	sb.WriteString("Education: " + jsonFragment(profile.Educations) + "\n")
	sb.WriteString("Work Experience: " + jsonFragment(profile.Experiences) + "\n")
	sb.WriteString("Certificates: " + jsonFragment(profile.Certificates) + "\n")
	if coverLetter != "" {
		sb.WriteString("Cover Letter: " + coverLetter + "\n")
	} else {
		sb.WriteString("Cover Letter: Not provided\n")
	}
	sb.WriteString("\n")

	sb.WriteString("TASK:\n")
	sb.WriteString("Calculate a match score (0-100) considering ONLY:\n")
	sb.WriteString(fmt.Sprintf("- Skills alignment (%.0f%% weight)\n", scoring.SkillsWeight*100))
	sb.WriteString(fmt.Sprintf("- Education match (%.0f%% weight)\n", scoring.EducationWeight*100))
	sb.WriteString(fmt.Sprintf("- Certifications (%.0f%% weight)\n\n", scoring.CertificationWeight*100))
	sb.WriteString("Provide detailed analysis and actionable feedback for the applicant.\n\n")

	sb.WriteString("IMPORTANT: Respond ONLY with valid JSON in this exact format:\n")
	sb.WriteString(`{
    "match_score": 85.5,
    "analysis": {
        "skills_assessment": {
            "matched_skills": ["Python", "AWS", "Django"],
            "missing_skills": ["Kubernetes", "Docker"],
            "strength_rating": "high",
            "match_percentage": 75
        },
        "education_assessment": {
            "qualification_match": true,
            "relevant_degrees": ["BSc Computer Science"],
            "match_quality": "excellent"
        },
        "certification_assessment": {
            "relevant_certifications": ["AWS Certified"],
            "missing_certifications": ["Microsoft Azure"],
            "certification_score": 80
        }
    },
    "feedback": "Specific, actionable feedback for the applicant...",
    "confidence_score": 0.95
}
`)
	sb.WriteString("\nDo not include any other text outside the JSON structure.\n")

	return sb.String()
}

// jsonFragment serializes a value as an indented JSON fragment for prompt
// embedding. Marshal failures cannot occur for the profile value types.
func jsonFragment(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
