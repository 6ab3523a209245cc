package validation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/entity"
	"github.com/esdguide/ruletracker/internal/rules"
	"github.com/esdguide/ruletracker/internal/utils"
)

// Notifier is told about review decisions. The default implementation
// just logs; a future hook can fan decisions out to reviewers.
type Notifier interface {
	Decided(ctx context.Context, item *entity.ValidationItem, decision constants.ValidationStatus)
}

// LogNotifier logs decisions and nothing else.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) Decided(ctx context.Context, item *entity.ValidationItem, decision constants.ValidationStatus) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("validation decision",
		"request_id", common.RequestIDFromContext(ctx),
		"item_id", item.ID,
		"decision", decision,
		"validated_by", item.ValidatedBy,
	)
}

// Service drives the review state machine over the validation queue.
// Approve promotes the candidate into the canonical rule store in the
// same transaction that records the decision.
type Service struct {
	client   *ent.Client
	promoter *rules.Promoter
	notifier Notifier
	logger   *slog.Logger
}

func NewService(client *ent.Client, promoter *rules.Promoter, notifier Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = &LogNotifier{Logger: logger}
	}
	return &Service{client: client, promoter: promoter, notifier: notifier, logger: logger}
}

// reviewable statuses are the ones a decision may be taken from.
func reviewable(status string) bool {
	return status == string(constants.ValidationPending) ||
		status == string(constants.ValidationNeedsReview)
}

// Approve promotes the item's candidate into a canonical rule and marks
// the item APPROVED, atomically. A failed promotion leaves the item
// untouched.
func (s *Service) Approve(ctx context.Context, itemID uuid.UUID, reviewer, notes string) (*entity.ValidationItem, error) {
	if strings.TrimSpace(reviewer) == "" {
		return nil, fmt.Errorf("approval requires a reviewer: %w", common.ErrInvalidInput)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	item, err := s.approveInTx(ctx, tx, itemID, reviewer, notes)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			s.logger.Error("approval rollback failed", "item_id", itemID, "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit approval: %w", err)
	}

	result := utils.ToValidationItem(item)
	s.notifier.Decided(ctx, result, constants.ValidationApproved)
	return result, nil
}

func (s *Service) approveInTx(ctx context.Context, tx *ent.Tx, itemID uuid.UUID, reviewer, notes string) (*ent.ValidationItem, error) {
	item, err := tx.ValidationItem.Get(ctx, itemID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("validation item %s: %w", itemID, common.ErrNotFound)
		}
		return nil, err
	}
	if !reviewable(item.Status) {
		return nil, fmt.Errorf("validation item %s is %s: %w", itemID, item.Status, common.ErrConflict)
	}

	candidate, err := entity.DecodeContent(item.ExtractedContent)
	if err != nil {
		return nil, fmt.Errorf("decode candidate for item %s: %w", itemID, err)
	}

	rec, err := s.promoter.Promote(ctx, tx, candidate, reviewer)
	if err != nil {
		return nil, fmt.Errorf("promote candidate: %w", err)
	}

	builder := item.Update().
		SetStatus(string(constants.ValidationApproved)).
		SetValidatedBy(reviewer).
		SetValidatedAt(time.Now()).
		SetRuleID(rec.ID)
	if notes != "" {
		builder = builder.SetValidatorNotes(notes)
	}
	return builder.Save(ctx)
}

// Reject marks the item REJECTED. Rejections always need notes so the
// queue records why a candidate was turned away.
func (s *Service) Reject(ctx context.Context, itemID uuid.UUID, reviewer, notes string) (*entity.ValidationItem, error) {
	if strings.TrimSpace(reviewer) == "" {
		return nil, fmt.Errorf("rejection requires a reviewer: %w", common.ErrInvalidInput)
	}
	if strings.TrimSpace(notes) == "" {
		return nil, fmt.Errorf("rejection requires notes: %w", common.ErrInvalidInput)
	}

	item, err := s.client.ValidationItem.Get(ctx, itemID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("validation item %s: %w", itemID, common.ErrNotFound)
		}
		return nil, err
	}
	if !reviewable(item.Status) {
		return nil, fmt.Errorf("validation item %s is %s: %w", itemID, item.Status, common.ErrConflict)
	}

	updated, err := item.Update().
		SetStatus(string(constants.ValidationRejected)).
		SetValidatedBy(reviewer).
		SetValidatedAt(time.Now()).
		SetValidatorNotes(notes).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	result := utils.ToValidationItem(updated)
	s.notifier.Decided(ctx, result, constants.ValidationRejected)
	return result, nil
}

// NeedsReview flags an item for another look. Unlike Approve and
// Reject it is reachable from any state, acting as a re-open for
// decisions that turn out to be premature.
func (s *Service) NeedsReview(ctx context.Context, itemID uuid.UUID, reviewer, notes string) (*entity.ValidationItem, error) {
	item, err := s.client.ValidationItem.Get(ctx, itemID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("validation item %s: %w", itemID, common.ErrNotFound)
		}
		return nil, err
	}

	builder := item.Update().SetStatus(string(constants.ValidationNeedsReview))
	if reviewer != "" {
		builder = builder.SetValidatedBy(reviewer)
	}
	if notes != "" {
		builder = builder.SetValidatorNotes(notes)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, err
	}

	result := utils.ToValidationItem(updated)
	s.notifier.Decided(ctx, result, constants.ValidationNeedsReview)
	return result, nil
}
