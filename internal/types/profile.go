// Package types defines the value objects exchanged between the extraction,
// scoring, and engine layers: applicant profiles, job requirements, and
// match results.
package types

// Education is a single education record on an applicant profile.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear *int   `json:"graduation_year,omitempty"`
}

// Experience is a single work-experience record on an applicant profile.
// DurationMonths is always non-negative; ongoing positions are measured up
// to the extraction time.
type Experience struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	DurationMonths int    `json:"duration_months"`
	Description    string `json:"description"`
}

// Certificate is a single certificate record on an applicant profile.
type Certificate struct {
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	YearObtained *int   `json:"year_obtained,omitempty"`
}

// ApplicantProfile is the normalized candidate side of a match analysis.
// All collections may be empty; an absent category degrades the
// corresponding weighted term but never causes an error.
type ApplicantProfile struct {
	Skills       []string      `json:"skills"`
	Educations   []Education   `json:"educations"`
	Experiences  []Experience  `json:"experiences"`
	Certificates []Certificate `json:"certificates"`
}
