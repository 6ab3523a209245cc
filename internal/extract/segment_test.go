package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentTextRuleMarkers(t *testing.T) {
	text := "Rule 1: Pad ring continuity\n" +
		"The pad ring must form a closed loop around the die.\n" +
		"Rule 2: Clamp placement\n" +
		"Place a power clamp within 200um of every supply pad.\n"

	rules := SegmentText(text)
	require.Len(t, rules, 2)

	assert.Equal(t, "Rule 1: Pad ring continuity", rules[0].Title)
	assert.Equal(t, "The pad ring must form a closed loop around the die.", rules[0].Content)
	assert.Equal(t, "Rule 2: Clamp placement", rules[1].Title)
	assert.Equal(t, "Place a power clamp within 200um of every supply pad.", rules[1].Content)
}

func TestSegmentTextSectionFallback(t *testing.T) {
	// no "Rule N:" markers, so the decimal section strategy applies
	text := "3.2 Power Clamp Sizing\nUse 100um spacing."

	rules := SegmentText(text)
	require.Len(t, rules, 1)

	assert.Equal(t, "3.2 Power Clamp Sizing", rules[0].Title)
	assert.Equal(t, "Use 100um spacing.", rules[0].Content)
}

func TestSegmentTextNumberedLineFallback(t *testing.T) {
	text := "1 Guard ring requirements\n" +
		"All IO cells need a continuous guard ring tied to the local supply.\n"

	rules := SegmentText(text)
	require.Len(t, rules, 1)
	assert.Equal(t, "1 Guard ring requirements", rules[0].Title)
}

func TestSegmentTextNumberedLineFiltersNoise(t *testing.T) {
	// body too short to be a rule
	text := "1 Revision history\nv1.0\n"
	assert.Empty(t, SegmentText(text))
}

func TestSegmentTextNoRuleLikeContent(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty input", text: ""},
		{name: "plain prose", text: "This document describes the process flow.\nNothing numbered here."},
		{name: "whitespace only", text: "   \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, SegmentText(tt.text))
		})
	}
}

func TestSegmentTextClassifiesCandidates(t *testing.T) {
	text := "Rule 7: ESD diode sizing\nUse at least 50um of diode perimeter per pad.\n"

	rules := SegmentText(text)
	require.Len(t, rules, 1)
	assert.Equal(t, "esd", rules[0].RuleType)
}
