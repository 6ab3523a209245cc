package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one queued document-processing request. UseAI routes the
// document through the analysis service instead of the local
// extractors. Claimed means the submitter already flipped the document
// to PROCESSING, so the worker must skip the claim.
type Job struct {
	DocumentID  uuid.UUID
	UseAI       bool
	Claimed     bool
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
