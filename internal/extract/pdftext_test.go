package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ruleReportStream = `BT
/F1 12 Tf
72 720 Td
(Rule 1: Guard Ring Spacing) Tj
0 -16 Td
(Keep guard rings continuous around all pad and clamp cells.) Tj
0 -16 Td
(Rule 2: Pad Clamp Sizing) Tj
0 -16 Td
[(Primary clamps must sink 1.5A of ESD stress ) (current without snapback.)] TJ
ET`

func TestDecodeContentStream(t *testing.T) {
	text := decodeContentStream([]byte(ruleReportStream))

	// operators and operands are gone, only the drawn text remains
	assert.NotContains(t, text, "Tf")
	assert.NotContains(t, text, "Td")
	assert.NotContains(t, text, "/F1")

	assert.Contains(t, text, "Rule 1: Guard Ring Spacing\n")
	assert.Contains(t, text, "Rule 2: Pad Clamp Sizing\n")
	// TJ array fragments are joined into one line
	assert.Contains(t, text, "Primary clamps must sink 1.5A of ESD stress current without snapback.")
}

func TestDecodeContentStreamEscapesAndHex(t *testing.T) {
	stream := []byte(`BT (a\(b\)c \\ \151) Tj T* <48656C6C6F> Tj ET`)
	text := decodeContentStream([]byte(stream))
	assert.Equal(t, "a(b)c \\ i\nHello\n", text)
}

func TestDecodeContentStreamIgnoresNonText(t *testing.T) {
	stream := []byte(`q 1 0 0 1 50 50 cm /Im1 Do Q 0.5 w 10 10 m 100 100 l S`)
	assert.Empty(t, decodeContentStream(stream))
}

func TestPDFStreamSegmentsIntoRules(t *testing.T) {
	text := decodeContentStream([]byte(ruleReportStream))

	rules := SegmentText(text)
	require.Len(t, rules, 2)

	assert.Equal(t, "Rule 1: Guard Ring Spacing", rules[0].Title)
	assert.Equal(t, "Keep guard rings continuous around all pad and clamp cells.", rules[0].Content)
	assert.Equal(t, "Rule 2: Pad Clamp Sizing", rules[1].Title)
	assert.Equal(t, "esd", rules[1].RuleType)
}
