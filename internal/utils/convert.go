package utils

import (
	"time"

	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToDocument(d *ent.ImportedDocument) *entity.Document {
	return &entity.Document{
		ID:              d.ID,
		Filename:        d.Filename,
		Format:          d.Format,
		Status:          d.Status,
		ProcessingNotes: strOrEmpty(d.ProcessingNotes),
		UploadedBy:      strOrEmpty(d.UploadedBy),
		UploadedAt:      d.UploadedAt,
		ProcessedAt:     d.ProcessedAt,
	}
}

func ToValidationItem(v *ent.ValidationItem) *entity.ValidationItem {
	return &entity.ValidationItem{
		ID:               v.ID,
		DocumentID:       v.DocumentID,
		RuleID:           v.RuleID,
		ExtractedContent: v.ExtractedContent,
		Status:           v.Status,
		ValidatorNotes:   strOrEmpty(v.ValidatorNotes),
		ValidatedBy:      strOrEmpty(v.ValidatedBy),
		CreatedAt:        v.CreatedAt,
		ValidatedAt:      v.ValidatedAt,
	}
}

func ToRule(r *ent.Rule) *entity.Rule {
	return &entity.Rule{
		ID:                  r.ID,
		TechnologyID:        r.TechnologyID,
		RuleType:            r.RuleType,
		Title:               r.Title,
		Content:             r.Content,
		Explanation:         strOrEmpty(r.Explanation),
		ImplementationNotes: strOrEmpty(r.ImplementationNotes),
		References:          strOrEmpty(r.References),
		Severity:            r.Severity,
		Category:            strOrEmpty(r.Category),
		OrderIndex:          r.OrderIndex,
		IsActive:            r.IsActive,
		CreatedBy:           strOrEmpty(r.CreatedBy),
		ReviewedBy:          strOrEmpty(r.ReviewedBy),
		ReviewedAt:          r.ReviewedAt,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func ToRuleImage(img *ent.RuleImage) *entity.RuleImage {
	return &entity.RuleImage{
		ID:          img.ID,
		RuleID:      img.RuleID,
		Filename:    img.Filename,
		MimeType:    strOrEmpty(img.MimeType),
		Caption:     strOrEmpty(img.Caption),
		Description: strOrEmpty(img.Description),
		OrderIndex:  img.OrderIndex,
		Data:        img.ImageData,
	}
}

func ToTechnology(t *ent.Technology) *entity.Technology {
	return &entity.Technology{
		ID:          t.ID,
		Name:        t.Name,
		Description: strOrEmpty(t.Description),
		NodeSize:    strOrEmpty(t.NodeSize),
		ProcessType: strOrEmpty(t.ProcessType),
		Foundry:     strOrEmpty(t.Foundry),
		Active:      t.Active,
		CreatedAt:   t.CreatedAt,
	}
}

// FormatTimestamp renders a timestamp the way API surfaces expect.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
