package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExperienceLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ExperienceLevel
	}{
		{name: "entry", input: "ENTRY", expected: LevelEntry},
		{name: "lowercase mid", input: "mid", expected: LevelMid},
		{name: "senior with whitespace", input: "  Senior ", expected: LevelSenior},
		{name: "lead", input: "LEAD", expected: LevelLead},
		{name: "junior alias", input: "junior", expected: LevelEntry},
		{name: "principal alias", input: "principal", expected: LevelLead},
		{name: "unknown defaults to mid", input: "wizard", expected: LevelMid},
		{name: "empty defaults to mid", input: "", expected: LevelMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseExperienceLevel(tt.input))
		})
	}
}

func TestExperienceLevelRank_Ordering(t *testing.T) {
	assert.Equal(t, 1, LevelEntry.Rank())
	assert.Equal(t, 2, LevelMid.Rank())
	assert.Equal(t, 3, LevelSenior.Rank())
	assert.Equal(t, 4, LevelLead.Rank())

	// Unknown levels rank as MID rather than zero.
	assert.Equal(t, 2, ExperienceLevel("").Rank())
}
