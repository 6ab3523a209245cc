package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/esdguide/ruletracker/constants"
	rulespb "github.com/esdguide/ruletracker/gen/proto/rules/v1"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/repository"
	"github.com/esdguide/ruletracker/internal/utils"
	"github.com/esdguide/ruletracker/internal/validation"
)

type ValidationServer struct {
	rulespb.UnimplementedValidationServiceServer
	svc    *validation.Service
	repo   repository.ValidationRepository
	logger *slog.Logger
}

func NewValidationServer(svc *validation.Service, repo repository.ValidationRepository, logger *slog.Logger) *ValidationServer {
	return &ValidationServer{svc: svc, repo: repo, logger: logger}
}

func (s *ValidationServer) ListValidationItems(ctx context.Context, req *rulespb.ListValidationItemsRequest) (*rulespb.ListValidationItemsResponse, error) {
	filter := &repository.ListValidationRequest{
		Limit:  int(req.GetLimit()),
		Offset: int(req.GetOffset()),
	}

	if raw := strings.TrimSpace(req.GetStatus()); raw != "" {
		vs := constants.ValidationStatus(strings.ToUpper(raw))
		switch vs {
		case constants.ValidationPending, constants.ValidationApproved, constants.ValidationRejected, constants.ValidationNeedsReview:
			filter.Status = &vs
		default:
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", raw)
		}
	}
	if raw := strings.TrimSpace(req.GetDocumentId()); raw != "" {
		id, err := parseID(raw, "document_id")
		if err != nil {
			return nil, err
		}
		filter.DocumentID = &id
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list validation items failed", "error", err)
		return nil, status.Error(codes.Internal, "list validation items failed")
	}

	out := make([]*rulespb.ValidationItem, 0, len(items))
	for _, item := range items {
		out = append(out, utils.ToPBValidationItem(item))
	}
	return &rulespb.ListValidationItemsResponse{Items: out}, nil
}

func (s *ValidationServer) GetValidationItem(ctx context.Context, req *rulespb.GetValidationItemRequest) (*rulespb.GetValidationItemResponse, error) {
	id, err := parseID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &rulespb.GetValidationItemResponse{Item: utils.ToPBValidationItem(item)}, nil
}

// reviewerFor resolves the acting reviewer: the request field wins,
// then the x-reviewer metadata lifted into the context.
func reviewerFor(ctx context.Context, requested string) string {
	if r := strings.TrimSpace(requested); r != "" {
		return r
	}
	return common.ReviewerFromContext(ctx)
}

func (s *ValidationServer) ApproveItem(ctx context.Context, req *rulespb.ApproveItemRequest) (*rulespb.ApproveItemResponse, error) {
	id, err := parseID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}

	item, err := s.svc.Approve(ctx, id, reviewerFor(ctx, req.GetReviewer()), req.GetNotes())
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &rulespb.ApproveItemResponse{Item: utils.ToPBValidationItem(item)}
	if item.RuleID != nil {
		resp.RuleId = item.RuleID.String()
	}
	return resp, nil
}

func (s *ValidationServer) RejectItem(ctx context.Context, req *rulespb.RejectItemRequest) (*rulespb.RejectItemResponse, error) {
	id, err := parseID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}

	item, err := s.svc.Reject(ctx, id, reviewerFor(ctx, req.GetReviewer()), req.GetNotes())
	if err != nil {
		return nil, toStatus(err)
	}
	return &rulespb.RejectItemResponse{Item: utils.ToPBValidationItem(item)}, nil
}

func (s *ValidationServer) FlagItemForReview(ctx context.Context, req *rulespb.FlagItemForReviewRequest) (*rulespb.FlagItemForReviewResponse, error) {
	id, err := parseID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}

	item, err := s.svc.NeedsReview(ctx, id, reviewerFor(ctx, req.GetReviewer()), req.GetNotes())
	if err != nil {
		return nil, toStatus(err)
	}
	return &rulespb.FlagItemForReviewResponse{Item: utils.ToPBValidationItem(item)}, nil
}

func (s *ValidationServer) GetPendingCount(ctx context.Context, _ *rulespb.GetPendingCountRequest) (*rulespb.GetPendingCountResponse, error) {
	count, err := s.repo.PendingCount(ctx)
	if err != nil {
		s.logger.Error("pending count failed", "error", err)
		return nil, status.Error(codes.Internal, "pending count failed")
	}
	return &rulespb.GetPendingCountResponse{Count: int32(count)}, nil
}
