package utils

import (
	"time"

	rulespb "github.com/esdguide/ruletracker/gen/proto/rules/v1"
	"github.com/esdguide/ruletracker/internal/entity"
)

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTimestamp(*t)
}

func ToPBDocument(d *entity.Document) *rulespb.Document {
	return &rulespb.Document{
		Id:              d.ID.String(),
		Filename:        d.Filename,
		Format:          d.Format,
		Status:          d.Status,
		ProcessingNotes: d.ProcessingNotes,
		UploadedBy:      d.UploadedBy,
		UploadedAt:      FormatTimestamp(d.UploadedAt),
		ProcessedAt:     timeOrEmpty(d.ProcessedAt),
	}
}

func ToPBValidationItem(v *entity.ValidationItem) *rulespb.ValidationItem {
	item := &rulespb.ValidationItem{
		Id:               v.ID.String(),
		ExtractedContent: string(v.ExtractedContent),
		Status:           v.Status,
		ValidatorNotes:   v.ValidatorNotes,
		ValidatedBy:      v.ValidatedBy,
		CreatedAt:        FormatTimestamp(v.CreatedAt),
		ValidatedAt:      timeOrEmpty(v.ValidatedAt),
	}
	if v.DocumentID != nil {
		item.DocumentId = v.DocumentID.String()
	}
	if v.RuleID != nil {
		item.RuleId = v.RuleID.String()
	}
	return item
}

func ToPBRule(r *entity.Rule) *rulespb.Rule {
	return &rulespb.Rule{
		Id:                  r.ID.String(),
		TechnologyId:        r.TechnologyID.String(),
		RuleType:            r.RuleType,
		Title:               r.Title,
		Content:             r.Content,
		Explanation:         r.Explanation,
		ImplementationNotes: r.ImplementationNotes,
		References:          r.References,
		Severity:            r.Severity,
		Category:            r.Category,
		OrderIndex:          int32(r.OrderIndex),
		IsActive:            r.IsActive,
		CreatedBy:           r.CreatedBy,
		ReviewedBy:          r.ReviewedBy,
		CreatedAt:           FormatTimestamp(r.CreatedAt),
		UpdatedAt:           FormatTimestamp(r.UpdatedAt),
	}
}

func ToPBTechnology(t *entity.Technology) *rulespb.Technology {
	return &rulespb.Technology{
		Id:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		NodeSize:    t.NodeSize,
		ProcessType: t.ProcessType,
		Foundry:     t.Foundry,
		Active:      t.Active,
	}
}
