package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/internal/entity"
)

// ClaimForAI flips the document from PENDING to PROCESSING on behalf of
// a caller that will hand the actual analysis to a worker. Claiming at
// the request boundary makes the status visible immediately and lets a
// duplicate request lose the race before anything is queued. A missing
// analyzer rejects the request without touching the document.
func (p *Processor) ClaimForAI(ctx context.Context, documentID uuid.UUID) error {
	if p.Analyzer == nil {
		return fmt.Errorf("analysis service is not configured")
	}
	return p.Documents.MarkProcessing(ctx, documentID)
}

// ProcessDocumentWithAI claims the document and runs the analysis
// round-trip in one call. Callers that already claimed the document
// use ProcessClaimedDocumentWithAI instead.
func (p *Processor) ProcessDocumentWithAI(ctx context.Context, documentID uuid.UUID) (*entity.ProcessSummary, error) {
	if err := p.ClaimForAI(ctx, documentID); err != nil {
		return nil, err
	}
	return p.ProcessClaimedDocumentWithAI(ctx, documentID)
}

// ProcessClaimedDocumentWithAI sends an already-claimed document to the
// analysis service instead of running a local extractor. Candidates
// below the confidence threshold are dropped before they reach the
// queue; the threshold itself is inclusive. Transport failures,
// service-reported failures, and poll exhaustion all mark the document
// FAILED with the reason in its notes. There is no automatic retry;
// reprocessing takes an explicit reset.
func (p *Processor) ProcessClaimedDocumentWithAI(ctx context.Context, documentID uuid.UUID) (*entity.ProcessSummary, error) {
	if p.Analyzer == nil {
		return nil, p.fail(ctx, documentID, fmt.Errorf("analysis service is not configured"))
	}

	doc, content, err := p.Documents.GetContent(ctx, documentID)
	if err != nil {
		return nil, p.fail(ctx, documentID, fmt.Errorf("load document: %w", err))
	}

	result, err := p.Analyzer.AnalyzeDocument(ctx, doc.Filename, constants.DocumentFormat(doc.Format), content)
	if err != nil {
		return nil, p.fail(ctx, documentID, fmt.Errorf("analyze document: %w", err))
	}

	candidates := result.Candidates()
	kept := make([]entity.ExtractedRule, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Confidence < p.Threshold {
			p.Logger.Info("pipeline.ai.candidate_dropped",
				"document_id", documentID,
				"title", candidate.Title,
				"confidence", candidate.Confidence,
				"threshold", p.Threshold,
			)
			continue
		}
		kept = append(kept, candidate)
	}

	enqueued, err := p.Queue.EnqueueAll(ctx, &documentID, kept)
	if err != nil {
		return nil, p.fail(ctx, documentID, fmt.Errorf("enqueue candidates: %w", err))
	}

	images := result.ExtractedImages()
	p.Logger.Info("pipeline.ai.ok",
		"document_id", documentID,
		"candidates", len(candidates),
		"kept", len(kept),
	)
	return p.succeed(ctx, doc, enqueued, len(images), result.Metadata)
}
