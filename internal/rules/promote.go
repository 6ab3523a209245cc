package rules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/gen/ent/technology"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/entity"
	"github.com/esdguide/ruletracker/internal/extract"
	"github.com/esdguide/ruletracker/internal/repository"
)

// Promoter turns approved extraction candidates into canonical rules.
// It always runs inside the caller's transaction so the rule, its
// images, and the approval that produced it commit or roll back as one.
type Promoter struct {
	defaultTechnology string
	logger            *slog.Logger
}

func NewPromoter(defaultTechnology string, logger *slog.Logger) *Promoter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Promoter{defaultTechnology: defaultTechnology, logger: logger}
}

// Promote creates a rule and its images from a candidate. The new rule
// lands at the end of the ordering scope for its (technology, rule
// type) pair.
func (p *Promoter) Promote(ctx context.Context, tx *ent.Tx, candidate entity.ExtractedRule, approvedBy string) (*ent.Rule, error) {
	if !candidate.Valid() {
		return nil, fmt.Errorf("candidate requires a title and content: %w", common.ErrInvalidInput)
	}

	technologyID, err := p.resolveTechnology(ctx, tx, candidate.TechnologyID)
	if err != nil {
		return nil, err
	}

	ruleType, known := constants.CanonicalRuleType(candidate.RuleType)
	if !known && candidate.RuleType == "" {
		ruleType = extract.ClassifyRuleType(candidate.Title, candidate.Content)
	}
	severity := constants.CanonicalSeverity(candidate.Severity)

	orderIndex, err := repository.NextOrderIndex(ctx, tx, technologyID, string(ruleType))
	if err != nil {
		return nil, fmt.Errorf("resolve order index: %w", err)
	}

	builder := tx.Rule.Create().
		SetTechnologyID(technologyID).
		SetRuleType(string(ruleType)).
		SetTitle(candidate.Title).
		SetContent(candidate.Content).
		SetSeverity(string(severity)).
		SetOrderIndex(orderIndex)
	if candidate.Category != "" {
		builder = builder.SetCategory(candidate.Category)
	}
	if approvedBy != "" {
		builder = builder.SetCreatedBy(approvedBy)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create rule: %w", err)
	}

	if err := p.attachImages(ctx, tx, rec.ID, candidate.Images); err != nil {
		return nil, err
	}

	p.logger.Info("rule promoted",
		"rule_id", rec.ID,
		"technology_id", technologyID,
		"rule_type", ruleType,
		"order_index", orderIndex,
		"images", len(candidate.Images),
	)
	return rec, nil
}

func (p *Promoter) resolveTechnology(ctx context.Context, tx *ent.Tx, hint *uuid.UUID) (uuid.UUID, error) {
	if hint != nil {
		exists, err := tx.Technology.Query().
			Where(technology.IDEQ(*hint)).
			Exist(ctx)
		if err != nil {
			return uuid.Nil, err
		}
		if !exists {
			return uuid.Nil, fmt.Errorf("technology %s: %w", hint, common.ErrNotFound)
		}
		return *hint, nil
	}

	tech, err := tx.Technology.Query().
		Where(technology.NameEQ(p.defaultTechnology)).
		Only(ctx)
	if err == nil {
		return tech.ID, nil
	}
	if !ent.IsNotFound(err) {
		return uuid.Nil, err
	}

	created, err := tx.Technology.Create().
		SetName(p.defaultTechnology).
		SetDescription("Auto-created default technology").
		Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create default technology: %w", err)
	}
	p.logger.Info("default technology created", "technology_id", created.ID, "name", p.defaultTechnology)
	return created.ID, nil
}

// attachImages stores candidate images in order. Partial image
// metadata is tolerated; entries without bytes are dropped.
func (p *Promoter) attachImages(ctx context.Context, tx *ent.Tx, ruleID uuid.UUID, images []entity.ExtractedImage) error {
	position := 0
	for _, img := range images {
		if len(img.Data) == 0 {
			p.logger.Warn("skipping image without data", "rule_id", ruleID, "filename", img.Filename)
			continue
		}
		filename := img.Filename
		if filename == "" {
			filename = fmt.Sprintf("image_%d", position)
		}

		builder := tx.RuleImage.Create().
			SetRuleID(ruleID).
			SetFilename(filename).
			SetImageData(img.Data).
			SetOrderIndex(position)
		if img.MimeType != "" {
			builder = builder.SetMimeType(img.MimeType)
		}
		if img.Caption != "" {
			builder = builder.SetCaption(img.Caption)
		}
		if img.Description != "" {
			builder = builder.SetDescription(img.Description)
		}

		if err := builder.Exec(ctx); err != nil {
			return fmt.Errorf("attach image %q: %w", filename, err)
		}
		position++
	}
	return nil
}
