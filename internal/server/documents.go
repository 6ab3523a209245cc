package server

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/esdguide/ruletracker/constants"
	rulespb "github.com/esdguide/ruletracker/gen/proto/rules/v1"
	"github.com/esdguide/ruletracker/internal/async"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/pipeline"
	"github.com/esdguide/ruletracker/internal/repository"
	"github.com/esdguide/ruletracker/internal/utils"
)

type DocumentsServer struct {
	rulespb.UnimplementedDocumentsServiceServer
	docsRepo  repository.DocumentRepository
	processor *pipeline.Processor
	queue     async.Queue
	logger    *slog.Logger
}

func NewDocumentsServer(docsRepo repository.DocumentRepository, proc *pipeline.Processor, queue async.Queue, logger *slog.Logger) *DocumentsServer {
	return &DocumentsServer{
		docsRepo:  docsRepo,
		processor: proc,
		queue:     queue,
		logger:    logger,
	}
}

// UploadDocument stores the raw bytes and routes the filename extension
// to a format. Processing is a separate call.
func (s *DocumentsServer) UploadDocument(ctx context.Context, req *rulespb.UploadDocumentRequest) (*rulespb.UploadDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())

	validator := common.NewValidator()
	validator.Field("filename", filename, common.Required)
	if len(req.GetFileData()) == 0 {
		validator.Field("file_data", "", common.Required)
	}
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, toStatus(err)
	}

	format, err := constants.FormatForExtension(filepath.Ext(filename))
	if err != nil {
		s.logger.Warn("upload rejected", "filename", filename, "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	doc, err := s.docsRepo.Create(ctx, &repository.CreateDocumentRequest{
		Filename:   filename,
		Format:     format,
		FileData:   req.GetFileData(),
		UploadedBy: strings.TrimSpace(req.GetUploadedBy()),
	})
	if err != nil {
		s.logger.Error("upload failed", "filename", filename, "error", err)
		return nil, status.Error(codes.Internal, "store document failed")
	}

	return &rulespb.UploadDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsServer) GetDocument(ctx context.Context, req *rulespb.GetDocumentRequest) (*rulespb.GetDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	doc, err := s.docsRepo.Get(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &rulespb.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsServer) ListDocuments(ctx context.Context, req *rulespb.ListDocumentsRequest) (*rulespb.ListDocumentsResponse, error) {
	var statusFilter *constants.DocumentStatus
	if raw := strings.TrimSpace(req.GetStatus()); raw != "" {
		ds := constants.DocumentStatus(strings.ToUpper(raw))
		switch ds {
		case constants.DocumentPending, constants.DocumentProcessing, constants.DocumentSuccess, constants.DocumentFailed:
			statusFilter = &ds
		default:
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", raw)
		}
	}

	docs, err := s.docsRepo.List(ctx, statusFilter, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("list documents failed", "error", err)
		return nil, status.Error(codes.Internal, "list documents failed")
	}

	out := make([]*rulespb.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, utils.ToPBDocument(doc))
	}
	return &rulespb.ListDocumentsResponse{Documents: out}, nil
}

// ProcessDocument runs local extraction inline and reports what it
// produced.
func (s *DocumentsServer) ProcessDocument(ctx context.Context, req *rulespb.ProcessDocumentRequest) (*rulespb.ProcessDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	summary, err := s.processor.ProcessDocument(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}

	return &rulespb.ProcessDocumentResponse{
		DocumentId:      summary.DocumentID.String(),
		RulesExtracted:  int32(summary.RulesExtracted),
		ImagesExtracted: int32(summary.ImagesExtracted),
	}, nil
}

// ProcessDocumentWithAI claims the document and hands it to the worker
// queue; the analysis round-trip can take minutes, so the RPC returns
// as soon as the job is queued. The claim happens here so the caller
// sees PROCESSING immediately and duplicate requests are rejected
// before anything is queued.
func (s *DocumentsServer) ProcessDocumentWithAI(ctx context.Context, req *rulespb.ProcessDocumentWithAIRequest) (*rulespb.ProcessDocumentWithAIResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	if err := s.processor.ClaimForAI(ctx, id); err != nil {
		return nil, toStatus(err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  id,
		UseAI:       true,
		Claimed:     true,
		SubmittedAt: time.Now(),
		TraceID:     common.RequestIDFromContext(ctx),
	}); err != nil {
		s.logger.Error("enqueue failed", "document_id", id, "error", err)
		return nil, status.Error(codes.Internal, "enqueue failed")
	}

	return &rulespb.ProcessDocumentWithAIResponse{
		DocumentId: id.String(),
		Queued:     true,
	}, nil
}

func (s *DocumentsServer) ResetDocument(ctx context.Context, req *rulespb.ResetDocumentRequest) (*rulespb.ResetDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	doc, err := s.docsRepo.Reset(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &rulespb.ResetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

// toStatus maps domain errors onto gRPC codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
