package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/esdguide/ruletracker/constants"
	rulespb "github.com/esdguide/ruletracker/gen/proto/rules/v1"
	"github.com/esdguide/ruletracker/internal/export"
	"github.com/esdguide/ruletracker/internal/repository"
	"github.com/esdguide/ruletracker/internal/utils"
)

type RulesServer struct {
	rulespb.UnimplementedRulesServiceServer
	rulesRepo repository.RuleRepository
	techRepo  repository.TechnologyRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewRulesServer(rulesRepo repository.RuleRepository, techRepo repository.TechnologyRepository, exporter *export.Service, logger *slog.Logger) *RulesServer {
	return &RulesServer{
		rulesRepo: rulesRepo,
		techRepo:  techRepo,
		exporter:  exporter,
		logger:    logger,
	}
}

func parseRuleType(raw string) (*constants.RuleType, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	rt, known := constants.CanonicalRuleType(raw)
	if !known {
		return nil, status.Errorf(codes.InvalidArgument, "unknown rule type %q", raw)
	}
	return &rt, nil
}

func (s *RulesServer) ListRules(ctx context.Context, req *rulespb.ListRulesRequest) (*rulespb.ListRulesResponse, error) {
	techID, err := parseID(req.GetTechnologyId(), "technology_id")
	if err != nil {
		return nil, err
	}
	ruleType, err := parseRuleType(req.GetRuleType())
	if err != nil {
		return nil, err
	}

	recs, err := s.rulesRepo.List(ctx, &repository.ListRulesRequest{
		TechnologyID: techID,
		RuleType:     ruleType,
		ActiveOnly:   req.GetActiveOnly(),
		Limit:        int(req.GetLimit()),
		Offset:       int(req.GetOffset()),
	})
	if err != nil {
		s.logger.Error("list rules failed", "technology_id", techID, "error", err)
		return nil, status.Error(codes.Internal, "list rules failed")
	}

	out := make([]*rulespb.Rule, 0, len(recs))
	for _, rec := range recs {
		out = append(out, utils.ToPBRule(rec))
	}
	return &rulespb.ListRulesResponse{Rules: out}, nil
}

func (s *RulesServer) GetRule(ctx context.Context, req *rulespb.GetRuleRequest) (*rulespb.GetRuleResponse, error) {
	id, err := parseID(req.GetRuleId(), "rule_id")
	if err != nil {
		return nil, err
	}

	rec, err := s.rulesRepo.Get(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &rulespb.GetRuleResponse{Rule: utils.ToPBRule(rec)}, nil
}

func (s *RulesServer) DeactivateRule(ctx context.Context, req *rulespb.DeactivateRuleRequest) (*rulespb.DeactivateRuleResponse, error) {
	id, err := parseID(req.GetRuleId(), "rule_id")
	if err != nil {
		return nil, err
	}

	if err := s.rulesRepo.Deactivate(ctx, id, strings.TrimSpace(req.GetReviewedBy())); err != nil {
		return nil, toStatus(err)
	}

	rec, err := s.rulesRepo.Get(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &rulespb.DeactivateRuleResponse{Rule: utils.ToPBRule(rec)}, nil
}

func (s *RulesServer) ListTechnologies(ctx context.Context, _ *rulespb.ListTechnologiesRequest) (*rulespb.ListTechnologiesResponse, error) {
	techs, err := s.techRepo.List(ctx)
	if err != nil {
		s.logger.Error("list technologies failed", "error", err)
		return nil, status.Error(codes.Internal, "list technologies failed")
	}

	out := make([]*rulespb.Technology, 0, len(techs))
	for _, tech := range techs {
		out = append(out, utils.ToPBTechnology(tech))
	}
	return &rulespb.ListTechnologiesResponse{Technologies: out}, nil
}

func (s *RulesServer) ExportRules(ctx context.Context, req *rulespb.ExportRulesRequest) (*rulespb.ExportRulesResponse, error) {
	techID, err := parseID(req.GetTechnologyId(), "technology_id")
	if err != nil {
		return nil, err
	}
	ruleType, err := parseRuleType(req.GetRuleType())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportRulesXLSX(ctx, techID, ruleType)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "technology_id", techID, "error", err)
		return nil, toStatus(err)
	}
	return &rulespb.ExportRulesResponse{Xlsx: xlsx}, nil
}
