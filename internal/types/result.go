package types

// SkillsAssessment reports how the applicant's skills line up with the
// job's required skills. Matched/missing lists use exact (case-insensitive)
// matching only; partial-match credit affects the score, not these lists.
type SkillsAssessment struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	StrengthRating  string   `json:"strength_rating"`
	MatchPercentage int      `json:"match_percentage"`
}

// EducationAssessment reports how the applicant's education lines up with
// the job's preferred courses.
type EducationAssessment struct {
	QualificationMatch bool     `json:"qualification_match"`
	RelevantDegrees    []string `json:"relevant_degrees"`
	MatchQuality       string   `json:"match_quality"`
}

// CertificationAssessment reports how the applicant's certificates line up
// with the job's preferred certificate providers.
type CertificationAssessment struct {
	RelevantCertifications []string `json:"relevant_certifications"`
	MissingCertifications  []string `json:"missing_certifications"`
	CertificationScore     int      `json:"certification_score"`
}

// Analysis is the per-category breakdown of a match result.
type Analysis struct {
	SkillsAssessment        SkillsAssessment        `json:"skills_assessment"`
	EducationAssessment     EducationAssessment     `json:"education_assessment"`
	CertificationAssessment CertificationAssessment `json:"certification_assessment"`
}

// MatchResult is the output of one match analysis. It is constructed fresh
// per call (or returned unmodified from cache) and treated as read-only by
// callers.
type MatchResult struct {
	MatchScore      float64  `json:"match_score"`
	Analysis        Analysis `json:"analysis"`
	Feedback        string   `json:"feedback"`
	ConfidenceScore float64  `json:"confidence_score"`
	FallbackUsed    bool     `json:"fallback_used,omitempty"`
}
