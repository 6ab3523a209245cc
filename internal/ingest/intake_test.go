package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/internal/async"
	"github.com/esdguide/ruletracker/internal/repository"
)

var dbSeq int

func newTestRepo(t *testing.T) (repository.DocumentRepository, *ent.Client) {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:intake_test_%d?mode=memory&cache=shared", dbSeq)
	client, err := repository.OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewDocumentRepository(client, slog.Default()), client
}

type recordQueue struct {
	jobs []async.Job
}

func (q *recordQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordQueue) Shutdown(context.Context) {}

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func TestIngestPath(t *testing.T) {
	docsRepo, _ := newTestRepo(t)
	queue := &recordQueue{}
	intake := NewIntake(docsRepo, queue, true, slog.Default())

	dir := t.TempDir()
	path := filepath.Join(dir, "esd_rules.xlsx")
	writeFile(t, path, []byte("workbook bytes"))

	id, err := intake.IngestPath(context.Background(), path)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, queue.jobs, 1)
	assert.True(t, queue.jobs[0].UseAI)
	assert.Equal(t, id, queue.jobs[0].DocumentID.String())

	doc, err := docsRepo.Get(context.Background(), queue.jobs[0].DocumentID)
	require.NoError(t, err)
	assert.Equal(t, "esd_rules.xlsx", doc.Filename)
	assert.Equal(t, string(constants.FormatTabular), doc.Format)
	assert.Equal(t, "intake", doc.UploadedBy)
	assert.Equal(t, string(constants.DocumentPending), doc.Status)
}

func TestIngestPathUnsupportedExtension(t *testing.T) {
	docsRepo, _ := newTestRepo(t)
	intake := NewIntake(docsRepo, nil, false, slog.Default())

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	writeFile(t, path, []byte("not a rule document"))

	_, err := intake.IngestPath(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document extension")
}

func TestIngestDirectory(t *testing.T) {
	docsRepo, client := newTestRepo(t)
	queue := &recordQueue{}
	intake := NewIntake(docsRepo, queue, false, slog.Default())

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rules.xlsx"), []byte("workbook"))
	writeFile(t, filepath.Join(root, "notes.txt"), []byte("skip me"))
	writeFile(t, filepath.Join(root, ".archive", "secret.xlsx"), []byte("hidden"))
	writeFile(t, filepath.Join(root, "sub", "spec.docx"), []byte("word"))

	results, stats, err := intake.IngestDirectory(context.Background(), root, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Empty(t, res.Err)
		assert.NotEmpty(t, res.DocumentID)
	}

	count, err := client.ImportedDocument.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// One queue job per stored document.
	require.Len(t, queue.jobs, 2)
	assert.False(t, queue.jobs[0].UseAI)
}

func TestIngestDirectoryIncludesHidden(t *testing.T) {
	docsRepo, _ := newTestRepo(t)
	intake := NewIntake(docsRepo, nil, false, slog.Default())

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rules.xlsx"), []byte("workbook"))
	writeFile(t, filepath.Join(root, ".archive", "secret.xlsx"), []byte("hidden"))

	_, stats, err := intake.IngestDirectory(context.Background(), root, false)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	docsRepo, _ := newTestRepo(t)
	intake := NewIntake(docsRepo, nil, false, slog.Default())

	_, _, err := intake.IngestDirectory(context.Background(), "  ", true)
	require.Error(t, err)
}
