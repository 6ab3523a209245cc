package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/internal/entity"
	"github.com/esdguide/ruletracker/internal/extract"
	"github.com/esdguide/ruletracker/internal/mcp"
	"github.com/esdguide/ruletracker/internal/repository"
)

// Processor runs a stored document through extraction and feeds the
// candidates into the validation queue. It owns the document status
// transitions: claim, then SUCCESS or FAILED with a reason.
type Processor struct {
	Logger    *slog.Logger
	Documents repository.DocumentRepository
	Queue     repository.ValidationRepository

	// AI path; nil disables ProcessDocumentWithAI.
	Analyzer  mcp.Analyzer
	Threshold float32
}

func NewProcessor(
	logger *slog.Logger,
	documents repository.DocumentRepository,
	queue repository.ValidationRepository,
	analyzer mcp.Analyzer,
	threshold float32,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:    logger,
		Documents: documents,
		Queue:     queue,
		Analyzer:  analyzer,
		Threshold: threshold,
	}
}

// ProcessDocument runs the format-specific extractor over a PENDING
// document. Zero extracted rules is still a SUCCESS; only claim
// conflicts and extraction errors fail the run.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (*entity.ProcessSummary, error) {
	if err := p.Documents.MarkProcessing(ctx, documentID); err != nil {
		return nil, err
	}

	doc, content, err := p.Documents.GetContent(ctx, documentID)
	if err != nil {
		return nil, p.fail(ctx, documentID, fmt.Errorf("load document: %w", err))
	}

	extractor, err := extract.New(constants.DocumentFormat(doc.Format), content)
	if err != nil {
		return nil, p.fail(ctx, documentID, fmt.Errorf("open %s document: %w", doc.Format, err))
	}

	result, err := extract.Process(ctx, extractor)
	if err != nil {
		return nil, p.fail(ctx, documentID, fmt.Errorf("extract rules: %w", err))
	}

	enqueued, err := p.Queue.EnqueueAll(ctx, &documentID, result.Rules)
	if err != nil {
		return nil, p.fail(ctx, documentID, fmt.Errorf("enqueue candidates: %w", err))
	}

	return p.succeed(ctx, doc, enqueued, len(result.Images), result.Metadata)
}

func (p *Processor) fail(ctx context.Context, documentID uuid.UUID, cause error) error {
	if err := p.Documents.MarkFailed(ctx, documentID, cause.Error()); err != nil {
		p.Logger.Error("pipeline.mark_failed.error", "document_id", documentID, "error", err)
	}
	p.Logger.Error("pipeline.process.failed", "document_id", documentID, "error", cause)
	return cause
}

func (p *Processor) succeed(ctx context.Context, doc *entity.Document, rules, images int, metadata map[string]any) (*entity.ProcessSummary, error) {
	notes := fmt.Sprintf("extracted %d rules, %d images", rules, images)
	if err := p.Documents.MarkSuccess(ctx, doc.ID, notes); err != nil {
		return nil, err
	}

	p.Logger.Info("pipeline.process.ok",
		"document_id", doc.ID,
		"filename", doc.Filename,
		"rules", rules,
		"images", images,
	)
	return &entity.ProcessSummary{
		DocumentID:      doc.ID,
		RulesExtracted:  rules,
		ImagesExtracted: images,
		Metadata:        metadata,
	}, nil
}
