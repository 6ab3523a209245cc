package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectColumnMapping(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected map[string]int
	}{
		{
			name:    "exact headers",
			headers: []string{"title", "description", "severity"},
			expected: map[string]int{
				roleTitle:    0,
				roleContent:  1,
				roleSeverity: 2,
			},
		},
		{
			name:    "specific aliases beat the generic rule column",
			headers: []string{"rule title", "rule text", "rule type"},
			expected: map[string]int{
				roleTitle:    0,
				roleContent:  1,
				roleRuleType: 2,
			},
		},
		{
			name:     "no usable headers",
			headers:  []string{"owner", "date", "comment"},
			expected: map[string]int{},
		},
		{
			name:    "name column preferred over id for the title role",
			headers: []string{"id", "name", "requirement"},
			expected: map[string]int{
				roleTitle:   1,
				roleContent: 2,
			},
		},
		{
			name:    "category column shared by type and category roles",
			headers: []string{"title", "content", "category"},
			expected: map[string]int{
				roleTitle:    0,
				roleContent:  1,
				roleRuleType: 2,
				roleCategory: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectColumnMapping(tt.headers)
			assert.Equal(t, tt.expected, got)
		})
	}
}
