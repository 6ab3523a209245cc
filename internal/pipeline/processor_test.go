package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/internal/mcp"
	"github.com/esdguide/ruletracker/internal/repository"
)

var dbSeq int

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:pipeline_test_%d?mode=memory&cache=shared", dbSeq)
	client, err := repository.OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestProcessor(t *testing.T, client *ent.Client, analyzer mcp.Analyzer) *Processor {
	t.Helper()
	logger := slog.Default()
	return NewProcessor(
		logger,
		repository.NewDocumentRepository(client, logger),
		repository.NewValidationRepository(client, logger),
		analyzer,
		0.7,
	)
}

func uploadDocument(t *testing.T, client *ent.Client, filename string, format constants.DocumentFormat, data []byte) *ent.ImportedDocument {
	t.Helper()
	doc, err := client.ImportedDocument.Create().
		SetFilename(filename).
		SetFormat(string(format)).
		SetFileData(data).
		Save(context.Background())
	require.NoError(t, err)
	return doc
}

func ruleWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "ESD Rules"
	idx, err := f.NewSheet(sheet)
	require.NoError(t, err)
	f.SetActiveSheet(idx)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	rows := [][]any{
		{"Title", "Description"},
		{"Guard Ring Spacing", "Keep at least 5um between rings."},
		{"Clamp Sizing", "Primary clamp width over 100um."},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

type fakeAnalyzer struct {
	result *mcp.AnalysisResult
	err    error
	calls  int
}

func (f *fakeAnalyzer) Ping(context.Context) error { return nil }

func (f *fakeAnalyzer) AnalyzeDocument(context.Context, string, constants.DocumentFormat, []byte) (*mcp.AnalysisResult, error) {
	f.calls++
	return f.result, f.err
}

func TestProcessDocumentTabular(t *testing.T) {
	client := newTestClient(t)
	proc := newTestProcessor(t, client, nil)
	ctx := context.Background()

	doc := uploadDocument(t, client, "rules.xlsx", constants.FormatTabular, ruleWorkbook(t))

	summary, err := proc.ProcessDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.RulesExtracted)

	reloaded, err := client.ImportedDocument.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentSuccess), reloaded.Status)
	require.NotNil(t, reloaded.ProcessingNotes)
	assert.Equal(t, "extracted 2 rules, 0 images", *reloaded.ProcessingNotes)
	assert.NotNil(t, reloaded.ProcessedAt)

	items, err := client.ValidationItem.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, string(constants.ValidationPending), item.Status)
		require.NotNil(t, item.DocumentID)
		assert.Equal(t, doc.ID, *item.DocumentID)
	}
}

func TestProcessDocumentAlreadyClaimed(t *testing.T) {
	client := newTestClient(t)
	proc := newTestProcessor(t, client, nil)
	ctx := context.Background()

	doc := uploadDocument(t, client, "rules.xlsx", constants.FormatTabular, ruleWorkbook(t))
	require.NoError(t, client.ImportedDocument.UpdateOneID(doc.ID).
		SetStatus(string(constants.DocumentProcessing)).Exec(ctx))

	_, err := proc.ProcessDocument(ctx, doc.ID)
	require.Error(t, err)

	// The claim failed, so the status is untouched.
	reloaded, err := client.ImportedDocument.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentProcessing), reloaded.Status)
}

func TestProcessDocumentUnreadable(t *testing.T) {
	client := newTestClient(t)
	proc := newTestProcessor(t, client, nil)
	ctx := context.Background()

	doc := uploadDocument(t, client, "broken.xlsx", constants.FormatTabular, []byte("not a spreadsheet"))

	_, err := proc.ProcessDocument(ctx, doc.ID)
	require.Error(t, err)

	reloaded, err := client.ImportedDocument.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentFailed), reloaded.Status)
	require.NotNil(t, reloaded.ProcessingNotes)
	assert.Contains(t, *reloaded.ProcessingNotes, "open TABULAR document")
}

func TestProcessDocumentWithAIFiltersByConfidence(t *testing.T) {
	client := newTestClient(t)
	analyzer := &fakeAnalyzer{result: &mcp.AnalysisResult{
		Rules: []mcp.RuleItem{
			{Title: "Strong", Content: "High confidence.", Type: "esd", Confidence: 0.9},
			{Title: "Boundary", Content: "Exactly at threshold.", Confidence: 0.7},
			{Title: "Weak", Content: "Below threshold.", Confidence: 0.69},
		},
		Metadata: map[string]any{"pages": 3},
	}}
	proc := newTestProcessor(t, client, analyzer)
	ctx := context.Background()

	doc := uploadDocument(t, client, "scan.pdf", constants.FormatPDF, []byte("%PDF-1.7"))

	summary, err := proc.ProcessDocumentWithAI(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, analyzer.calls)
	// The threshold is inclusive: 0.7 survives, 0.69 does not.
	assert.Equal(t, 2, summary.RulesExtracted)

	items, err := client.ValidationItem.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	reloaded, err := client.ImportedDocument.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentSuccess), reloaded.Status)
}

func TestProcessDocumentWithAIFailureRecorded(t *testing.T) {
	client := newTestClient(t)
	analyzer := &fakeAnalyzer{err: fmt.Errorf("task x: %w", mcp.ErrPollLimitExceeded)}
	proc := newTestProcessor(t, client, analyzer)
	ctx := context.Background()

	doc := uploadDocument(t, client, "scan.pdf", constants.FormatPDF, []byte("%PDF-1.7"))

	_, err := proc.ProcessDocumentWithAI(ctx, doc.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mcp.ErrPollLimitExceeded))

	reloaded, err := client.ImportedDocument.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentFailed), reloaded.Status)
	require.NotNil(t, reloaded.ProcessingNotes)
	assert.Contains(t, *reloaded.ProcessingNotes, "poll limit exceeded")
}

func TestClaimForAIBeforeDispatch(t *testing.T) {
	client := newTestClient(t)
	analyzer := &fakeAnalyzer{result: &mcp.AnalysisResult{
		Rules: []mcp.RuleItem{{Title: "Strong", Content: "High confidence.", Confidence: 0.9}},
	}}
	proc := newTestProcessor(t, client, analyzer)
	ctx := context.Background()

	doc := uploadDocument(t, client, "scan.pdf", constants.FormatPDF, []byte("%PDF-1.7"))

	// The claim flips the status before any worker touches the job.
	require.NoError(t, proc.ClaimForAI(ctx, doc.ID))
	assert.Equal(t, 0, analyzer.calls)

	reloaded, err := client.ImportedDocument.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentProcessing), reloaded.Status)

	// A second submission loses the race at the boundary.
	require.Error(t, proc.ClaimForAI(ctx, doc.ID))

	summary, err := proc.ProcessClaimedDocumentWithAI(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RulesExtracted)
	assert.Equal(t, 1, analyzer.calls)

	reloaded, err = client.ImportedDocument.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentSuccess), reloaded.Status)
}

func TestProcessDocumentWithAINotConfigured(t *testing.T) {
	client := newTestClient(t)
	proc := newTestProcessor(t, client, nil)
	ctx := context.Background()

	doc := uploadDocument(t, client, "scan.pdf", constants.FormatPDF, []byte("%PDF-1.7"))

	_, err := proc.ProcessDocumentWithAI(ctx, doc.ID)
	require.Error(t, err)

	// Rejected before the claim, so the document stays PENDING.
	reloaded, err := client.ImportedDocument.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentPending), reloaded.Status)
}
