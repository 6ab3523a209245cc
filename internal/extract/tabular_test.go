package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestTabularExtractRules(t *testing.T) {
	content := buildWorkbook(t, "ESD_Rules", [][]any{
		{"Title", "Description"},
		{"Guard Ring Spacing", "Max 20um between taps"},
		{"", "row without a title is skipped"},
	})

	ex, err := NewTabularExtractor(content)
	require.NoError(t, err)
	defer ex.Close()

	rules, err := ex.ExtractRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 1)

	assert.Equal(t, "Guard Ring Spacing", rules[0].Title)
	assert.Equal(t, "Max 20um between taps", rules[0].Content)
	// the sheet text mentions neither topic, so the classifier defaults
	assert.Equal(t, "general", rules[0].RuleType)
}

func TestTabularExtractRulesOptionalColumns(t *testing.T) {
	content := buildWorkbook(t, "Latchup Guidelines", [][]any{
		{"Name", "Requirement", "Type", "Priority"},
		{"Tap spacing", "Max distance 25um", "Latch-Up", "HIGH"},
	})

	ex, err := NewTabularExtractor(content)
	require.NoError(t, err)
	defer ex.Close()

	rules, err := ex.ExtractRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 1)

	// upstream casing is normalized on the way in
	assert.Equal(t, "latchup", rules[0].RuleType)
	assert.Equal(t, "critical", rules[0].Severity)
}

func TestTabularIgnoresUnrelatedSheets(t *testing.T) {
	content := buildWorkbook(t, "Revision History", [][]any{
		{"Title", "Description"},
		{"v1.0", "initial release"},
	})

	ex, err := NewTabularExtractor(content)
	require.NoError(t, err)
	defer ex.Close()

	rules, err := ex.ExtractRules(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestTabularEmptyWorkbookIsNotAnError(t *testing.T) {
	content := buildWorkbook(t, "Rules", [][]any{
		{"Owner", "Date"},
		{"alice", "2024-01-01"},
	})

	ex, err := NewTabularExtractor(content)
	require.NoError(t, err)
	defer ex.Close()

	rules, err := ex.ExtractRules(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestTabularExtractMetadata(t *testing.T) {
	content := buildWorkbook(t, "Rules", [][]any{
		{"Title", "Description"},
	})

	ex, err := NewTabularExtractor(content)
	require.NoError(t, err)
	defer ex.Close()

	metadata, err := ex.ExtractMetadata(context.Background())
	require.NoError(t, err)
	assert.Contains(t, metadata, "sheets")
	assert.Contains(t, metadata["sheets"], "Rules")
}

func TestTabularUnreadableDocument(t *testing.T) {
	_, err := NewTabularExtractor([]byte("not a workbook"))
	assert.Error(t, err)
}
