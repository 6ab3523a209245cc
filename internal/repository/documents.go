package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/entity"
	"github.com/esdguide/ruletracker/internal/utils"
)

// CreateDocumentRequest wraps parameters for storing an uploaded
// document.
type CreateDocumentRequest struct {
	Filename   string
	Format     constants.DocumentFormat
	FileData   []byte
	UploadedBy string
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// GetContent returns the stored raw bytes alongside the metadata.
	GetContent(ctx context.Context, id uuid.UUID) (*entity.Document, []byte, error)
	List(ctx context.Context, status *constants.DocumentStatus, limit, offset int) ([]*entity.Document, error)
	// MarkProcessing transitions PENDING -> PROCESSING. It is a
	// compare-and-set: a document already claimed, finished, or failed
	// is not picked up again.
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkSuccess(ctx context.Context, id uuid.UUID, notes string) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	// Reset returns a terminal document to PENDING for reprocessing.
	Reset(ctx context.Context, id uuid.UUID) (*entity.Document, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	builder := r.client.ImportedDocument.Create().
		SetFilename(req.Filename).
		SetFormat(string(req.Format)).
		SetFileData(req.FileData).
		SetStatus(string(constants.DocumentPending))
	if req.UploadedBy != "" {
		builder = builder.SetUploadedBy(req.UploadedBy)
	}

	doc, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("document create failed", "filename", req.Filename, "error", err)
		return nil, err
	}
	r.logger.Info("document stored", "document_id", doc.ID, "filename", doc.Filename, "format", doc.Format, "bytes", len(req.FileData))
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.client.ImportedDocument.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) GetContent(ctx context.Context, id uuid.UUID) (*entity.Document, []byte, error) {
	doc, err := r.client.ImportedDocument.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		return nil, nil, err
	}
	return utils.ToDocument(doc), doc.FileData, nil
}

func (r *documentRepository) List(ctx context.Context, status *constants.DocumentStatus, limit, offset int) ([]*entity.Document, error) {
	q := r.client.ImportedDocument.Query()
	if status != nil {
		q = q.Where(importeddocument.StatusEQ(string(*status)))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	docs, err := q.Order(ent.Desc(importeddocument.FieldUploadedAt)).All(ctx)
	if err != nil {
		r.logger.Error("document list failed", "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(docs))
	for i, doc := range docs {
		result[i] = utils.ToDocument(doc)
	}
	return result, nil
}

func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.ImportedDocument.Update().
		Where(
			importeddocument.IDEQ(id),
			importeddocument.StatusEQ(string(constants.DocumentPending)),
		).
		SetStatus(string(constants.DocumentProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("document claim failed", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		// Either missing or not PENDING; disambiguate for the caller.
		doc, getErr := r.client.ImportedDocument.Get(ctx, id)
		if getErr != nil {
			if ent.IsNotFound(getErr) {
				return fmt.Errorf("document %s: %w", id, common.ErrNotFound)
			}
			return getErr
		}
		return fmt.Errorf("document %s is %s, not %s: %w", id, doc.Status, constants.DocumentPending, common.ErrConflict)
	}
	r.logger.Info("document claimed for processing", "document_id", id)
	return nil
}

func (r *documentRepository) MarkSuccess(ctx context.Context, id uuid.UUID, notes string) error {
	err := r.client.ImportedDocument.UpdateOneID(id).
		SetStatus(string(constants.DocumentSuccess)).
		SetProcessingNotes(notes).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("document finish failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document processed", "document_id", id)
	return nil
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	err := r.client.ImportedDocument.UpdateOneID(id).
		SetStatus(string(constants.DocumentFailed)).
		SetProcessingNotes(reason).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("document failure record failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document processing failed", "document_id", id, "reason", reason)
	return nil
}

func (r *documentRepository) Reset(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	n, err := r.client.ImportedDocument.Update().
		Where(
			importeddocument.IDEQ(id),
			importeddocument.StatusIn(
				string(constants.DocumentSuccess),
				string(constants.DocumentFailed),
			),
		).
		SetStatus(string(constants.DocumentPending)).
		ClearProcessingNotes().
		ClearProcessedAt().
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		doc, getErr := r.client.ImportedDocument.Get(ctx, id)
		if getErr != nil {
			if ent.IsNotFound(getErr) {
				return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
			}
			return nil, getErr
		}
		return nil, fmt.Errorf("document %s is %s, only terminal documents can be reset: %w", id, doc.Status, common.ErrConflict)
	}
	r.logger.Info("document reset", "document_id", id)
	return r.Get(ctx, id)
}
