package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/ruleimage"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/entity"
	"github.com/esdguide/ruletracker/internal/utils"
)

// ListRulesRequest filters the canonical rule store.
type ListRulesRequest struct {
	TechnologyID uuid.UUID
	RuleType     *constants.RuleType
	ActiveOnly   bool
	Limit        int
	Offset       int
}

type RuleRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Rule, error)
	List(ctx context.Context, req *ListRulesRequest) ([]*entity.Rule, error)
	ListImages(ctx context.Context, ruleID uuid.UUID) ([]*entity.RuleImage, error)
	// Deactivate soft-deletes: the rule keeps its history and its
	// position in the ordering scope.
	Deactivate(ctx context.Context, id uuid.UUID, reviewedBy string) error
}

type ruleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRuleRepository(client *ent.Client, logger *slog.Logger) RuleRepository {
	return &ruleRepository{client: client, logger: logger}
}

func (r *ruleRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Rule, error) {
	rec, err := r.client.Rule.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("rule %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToRule(rec), nil
}

func (r *ruleRepository) List(ctx context.Context, req *ListRulesRequest) ([]*entity.Rule, error) {
	q := r.client.Rule.Query().Where(rule.TechnologyIDEQ(req.TechnologyID))
	if req.RuleType != nil {
		q = q.Where(rule.RuleTypeEQ(string(*req.RuleType)))
	}
	if req.ActiveOnly {
		q = q.Where(rule.IsActive(true))
	}
	if req.Limit > 0 {
		q = q.Limit(req.Limit)
	}
	if req.Offset > 0 {
		q = q.Offset(req.Offset)
	}

	recs, err := q.Order(
		ent.Asc(rule.FieldRuleType),
		ent.Asc(rule.FieldOrderIndex),
	).All(ctx)
	if err != nil {
		r.logger.Error("rule list failed", "technology_id", req.TechnologyID, "error", err)
		return nil, err
	}

	result := make([]*entity.Rule, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToRule(rec)
	}
	return result, nil
}

func (r *ruleRepository) ListImages(ctx context.Context, ruleID uuid.UUID) ([]*entity.RuleImage, error) {
	imgs, err := r.client.RuleImage.Query().
		Where(ruleimage.RuleIDEQ(ruleID)).
		Order(ent.Asc(ruleimage.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.RuleImage, len(imgs))
	for i, img := range imgs {
		result[i] = utils.ToRuleImage(img)
	}
	return result, nil
}

func (r *ruleRepository) Deactivate(ctx context.Context, id uuid.UUID, reviewedBy string) error {
	builder := r.client.Rule.UpdateOneID(id).SetIsActive(false)
	if reviewedBy != "" {
		builder = builder.SetReviewedBy(reviewedBy)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("rule %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("rule deactivate failed", "rule_id", id, "error", err)
		return err
	}
	r.logger.Info("rule deactivated", "rule_id", id)
	return nil
}

// NextOrderIndex returns the next free position within the
// (technology, rule type) ordering scope. Runs against a transaction
// so promotion reads and writes the scope atomically.
func NextOrderIndex(ctx context.Context, tx *ent.Tx, technologyID uuid.UUID, ruleType string) (int, error) {
	last, err := tx.Rule.Query().
		Where(
			rule.TechnologyIDEQ(technologyID),
			rule.RuleTypeEQ(ruleType),
		).
		Order(ent.Desc(rule.FieldOrderIndex)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, err
	}
	return last.OrderIndex + 1, nil
}
