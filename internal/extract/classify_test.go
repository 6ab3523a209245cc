package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esdguide/ruletracker/constants"
)

func TestClassifyRuleType(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		content  string
		expected constants.RuleType
	}{
		{
			name:     "esd in title",
			title:    "ESD clamp placement",
			content:  "Place clamps near pads.",
			expected: constants.RuleTypeESD,
		},
		{
			name:     "esd case insensitive",
			title:    "Primary Esd protection",
			content:  "",
			expected: constants.RuleTypeESD,
		},
		{
			name:     "latchup in content",
			title:    "Guard rings",
			content:  "Prevents latchup between wells.",
			expected: constants.RuleTypeLatchup,
		},
		{
			name:     "hyphenated latch-up",
			title:    "Well tap density",
			content:  "Required for latch-up immunity.",
			expected: constants.RuleTypeLatchup,
		},
		{
			name:     "spaced latch up",
			title:    "Substrate contacts",
			content:  "Reduces latch up risk.",
			expected: constants.RuleTypeLatchup,
		},
		{
			name:     "both topics classify as esd",
			title:    "ESD and latch-up cohabitation",
			content:  "Combined ESD / latchup guidance.",
			expected: constants.RuleTypeESD,
		},
		{
			name:     "neither topic",
			title:    "Metal density",
			content:  "Keep density between 20% and 80%.",
			expected: constants.RuleTypeGeneral,
		},
		{
			name:     "empty text",
			title:    "",
			content:  "",
			expected: constants.RuleTypeGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyRuleType(tt.title, tt.content)
			assert.Equal(t, tt.expected, got)

			// deterministic and pure: same input, same output
			assert.Equal(t, got, ClassifyRuleType(tt.title, tt.content))
		})
	}
}
