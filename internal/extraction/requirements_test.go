package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirepath/match-engine/internal/types"
)

func TestBuildRequirements_Normalizes(t *testing.T) {
	req := BuildRequirements(JobPostingRecord{
		Title:                 "  Backend Engineer ",
		Description:           "Build APIs in Go.",
		SkillsRequired:        []string{"Go", "go", "Docker", ""},
		ExperienceLevel:       "senior",
		CoursesPreferred:      []string{"BSc Computer Science", "bsc computer science"},
		CertificatesPreferred: []string{"AWS", " "},
	})

	assert.Equal(t, "Backend Engineer", req.Title)
	assert.Equal(t, "Build APIs in Go.", req.Description)
	assert.Equal(t, []string{"Go", "Docker"}, req.SkillsRequired)
	assert.Equal(t, types.LevelSenior, req.ExperienceLevel)
	assert.Equal(t, []string{"BSc Computer Science"}, req.CoursesPreferred)
	assert.Equal(t, []string{"AWS"}, req.CertificatesPreferred)
}

func TestBuildRequirements_StripsHTMLDescription(t *testing.T) {
	req := BuildRequirements(JobPostingRecord{
		Title:       "Frontend Engineer",
		Description: "<div><p>We build <b>dashboards</b>.</p><ul><li>React</li><li>TypeScript</li></ul><script>track()</script></div>",
	})

	assert.NotContains(t, req.Description, "<")
	assert.NotContains(t, req.Description, "track()")
	assert.Contains(t, req.Description, "We build dashboards.")
	assert.Contains(t, req.Description, "React")
	assert.Contains(t, req.Description, "TypeScript")
}

func TestBuildRequirements_PlainTextWithAngleBracketUntouched(t *testing.T) {
	req := BuildRequirements(JobPostingRecord{
		Description: "Salary < 50k depending on experience",
	})

	assert.Equal(t, "Salary < 50k depending on experience", req.Description)
}

func TestBuildRequirements_DefaultExperienceLevel(t *testing.T) {
	req := BuildRequirements(JobPostingRecord{Title: "Any"})
	assert.Equal(t, types.LevelMid, req.ExperienceLevel)
}

func TestExtractText_SeparatesBlocks(t *testing.T) {
	text, err := ExtractText("<h2>Requirements</h2><ul><li>Go</li><li>SQL</li></ul>")
	assert.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "Go")
	assert.Contains(t, text, "SQL")
	// Block elements must not run together on one line.
	assert.NotContains(t, text, "GoSQL")
}
