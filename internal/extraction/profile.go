package extraction

import (
	"time"

	"github.com/hirepath/match-engine/internal/types"
)

// EducationRecord is a raw education row from the accounts subsystem.
type EducationRecord struct {
	DegreeName      string     `json:"degree_name"`
	InstitutionName string     `json:"institution_name"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

// WorkExperienceRecord is a raw work-experience row. Duration is derived
// from the dates when DurationMonths is zero.
type WorkExperienceRecord struct {
	JobTitle       string     `json:"job_title"`
	CompanyName    string     `json:"company_name"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	IsCurrent      bool       `json:"is_current"`
	DurationMonths int        `json:"duration_months,omitempty"`
	Description    string     `json:"description"`
}

// CertificateRecord is a raw certificate row. Certificates are identified
// by their issuing provider.
type CertificateRecord struct {
	Name         string     `json:"name"`
	ProviderName string     `json:"provider_name"`
	IssueDate    *time.Time `json:"issue_date,omitempty"`
}

// AccountRecord is the raw applicant-side input to profile extraction,
// assembled by the caller from account, education, work-experience, and
// certificate records.
type AccountRecord struct {
	Skills          []string               `json:"skills"`
	Educations      []EducationRecord      `json:"educations"`
	WorkExperiences []WorkExperienceRecord `json:"work_experiences"`
	Certificates    []CertificateRecord    `json:"certificates"`
}

// BuildProfile converts a raw account record into a normalized
// ApplicantProfile. Missing categories come back as empty collections.
func BuildProfile(rec AccountRecord) types.ApplicantProfile {
	return BuildProfileAt(rec, time.Now())
}

// BuildProfileAt is BuildProfile with an explicit reference time used to
// measure ongoing positions. Split out so duration math is testable.
func BuildProfileAt(rec AccountRecord, now time.Time) types.ApplicantProfile {
	profile := types.ApplicantProfile{
		Skills:       DedupeSkills(rec.Skills),
		Educations:   make([]types.Education, 0, len(rec.Educations)),
		Experiences:  make([]types.Experience, 0, len(rec.WorkExperiences)),
		Certificates: make([]types.Certificate, 0, len(rec.Certificates)),
	}

	for _, edu := range rec.Educations {
		entry := types.Education{
			Degree:      edu.DegreeName,
			Institution: edu.InstitutionName,
		}
		if edu.EndDate != nil {
			year := edu.EndDate.Year()
			entry.GraduationYear = &year
		}
		profile.Educations = append(profile.Educations, entry)
	}

	for _, exp := range rec.WorkExperiences {
		profile.Experiences = append(profile.Experiences, types.Experience{
			Title:          exp.JobTitle,
			Company:        exp.CompanyName,
			DurationMonths: experienceDuration(exp, now),
			Description:    exp.Description,
		})
	}

	for _, cert := range rec.Certificates {
		name := cert.Name
		if name == "" {
			name = cert.ProviderName
		}
		entry := types.Certificate{
			Name:     name,
			Provider: cert.ProviderName,
		}
		if cert.IssueDate != nil {
			year := cert.IssueDate.Year()
			entry.YearObtained = &year
		}
		profile.Certificates = append(profile.Certificates, entry)
	}

	return profile
}

// experienceDuration resolves the duration of a position in whole months.
// Explicit durations win; otherwise closed ranges use start..end and
// ongoing positions use start..now. Unresolvable records count as zero.
func experienceDuration(exp WorkExperienceRecord, now time.Time) int {
	if exp.DurationMonths > 0 {
		return exp.DurationMonths
	}
	if exp.StartDate == nil {
		return 0
	}

	end := now
	switch {
	case exp.EndDate != nil:
		end = *exp.EndDate
	case exp.IsCurrent:
		// keep now
	default:
		return 0
	}

	return monthsBetween(*exp.StartDate, end)
}

// monthsBetween counts whole calendar months from start to end, clamped
// at zero for inverted ranges.
func monthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
