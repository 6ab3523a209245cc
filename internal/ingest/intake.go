package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/internal/async"
	"github.com/esdguide/ruletracker/internal/repository"
)

type FileResult struct {
	Path       string
	DocumentID string
	Err        string
}

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Intake stores rule documents found on disk and hands them to the
// processing queue. It feeds both the one-shot directory scan and the
// filesystem watcher.
type Intake struct {
	docsRepo repository.DocumentRepository
	queue    async.Queue
	useAI    bool
	logger   *slog.Logger
}

func NewIntake(docsRepo repository.DocumentRepository, queue async.Queue, useAI bool, logger *slog.Logger) *Intake {
	if logger == nil {
		logger = slog.Default()
	}
	return &Intake{docsRepo: docsRepo, queue: queue, useAI: useAI, logger: logger}
}

// IngestPath stores one document and queues it for processing.
func (u *Intake) IngestPath(ctx context.Context, path string) (string, error) {
	format, err := constants.FormatForExtension(filepath.Ext(path))
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	doc, err := u.docsRepo.Create(ctx, &repository.CreateDocumentRequest{
		Filename:   filepath.Base(path),
		Format:     format,
		FileData:   content,
		UploadedBy: "intake",
	})
	if err != nil {
		return "", err
	}

	if u.queue != nil {
		if err := u.queue.Enqueue(ctx, async.Job{
			DocumentID:  doc.ID,
			UseAI:       u.useAI,
			SubmittedAt: time.Now(),
		}); err != nil {
			u.logger.Error("intake enqueue failed", "document_id", doc.ID, "error", err)
		}
	}

	u.logger.Info("document ingested", "document_id", doc.ID, "path", path, "format", format)
	return doc.ID.String(), nil
}

// IngestDirectory walks root, filters by supported extensions, skips
// hidden entries if requested, and calls IngestPath for each file.
// Returns per-file results plus aggregate stats.
func (u *Intake) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}
	exts := constants.SupportedExtensions()

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		stats.Matched++

		docID, err := u.IngestPath(ctx, path)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, FileResult{Path: path, DocumentID: docID})
		stats.Succeeded++
		return nil
	})

	if err != nil {
		return results, stats, err
	}
	return results, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
