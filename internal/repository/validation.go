package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/entity"
	"github.com/esdguide/ruletracker/internal/utils"
)

// ListValidationRequest filters the validation queue.
type ListValidationRequest struct {
	Status     *constants.ValidationStatus
	DocumentID *uuid.UUID
	Limit      int
	Offset     int
}

type ValidationRepository interface {
	// Enqueue stores one extraction candidate for review. Candidates
	// missing a title or content are rejected before they reach the
	// queue.
	Enqueue(ctx context.Context, documentID *uuid.UUID, candidate entity.ExtractedRule) (*entity.ValidationItem, error)
	EnqueueAll(ctx context.Context, documentID *uuid.UUID, candidates []entity.ExtractedRule) (int, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ValidationItem, error)
	List(ctx context.Context, req *ListValidationRequest) ([]*entity.ValidationItem, error)
	PendingCount(ctx context.Context) (int, error)
}

type validationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewValidationRepository(client *ent.Client, logger *slog.Logger) ValidationRepository {
	return &validationRepository{client: client, logger: logger}
}

func (r *validationRepository) Enqueue(ctx context.Context, documentID *uuid.UUID, candidate entity.ExtractedRule) (*entity.ValidationItem, error) {
	if !candidate.Valid() {
		return nil, fmt.Errorf("candidate requires a title and content: %w", common.ErrInvalidInput)
	}

	payload, err := entity.EncodeContent(candidate)
	if err != nil {
		return nil, fmt.Errorf("encode candidate: %w", err)
	}

	builder := r.client.ValidationItem.Create().
		SetExtractedContent(payload).
		SetStatus(string(constants.ValidationPending))
	if documentID != nil {
		builder = builder.SetDocumentID(*documentID)
	}

	item, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("validation enqueue failed", "error", err)
		return nil, err
	}
	r.logger.Info("validation item enqueued", "item_id", item.ID, "title", candidate.Title)
	return utils.ToValidationItem(item), nil
}

func (r *validationRepository) EnqueueAll(ctx context.Context, documentID *uuid.UUID, candidates []entity.ExtractedRule) (int, error) {
	enqueued := 0
	for _, candidate := range candidates {
		if !candidate.Valid() {
			r.logger.Warn("skipping incomplete candidate", "title", candidate.Title)
			continue
		}
		if _, err := r.Enqueue(ctx, documentID, candidate); err != nil {
			return enqueued, err
		}
		enqueued++
	}
	return enqueued, nil
}

func (r *validationRepository) Get(ctx context.Context, id uuid.UUID) (*entity.ValidationItem, error) {
	item, err := r.client.ValidationItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("validation item %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToValidationItem(item), nil
}

func (r *validationRepository) List(ctx context.Context, req *ListValidationRequest) ([]*entity.ValidationItem, error) {
	q := r.client.ValidationItem.Query()
	if req.Status != nil {
		q = q.Where(validationitem.StatusEQ(string(*req.Status)))
	}
	if req.DocumentID != nil {
		q = q.Where(validationitem.DocumentIDEQ(*req.DocumentID))
	}
	if req.Limit > 0 {
		q = q.Limit(req.Limit)
	}
	if req.Offset > 0 {
		q = q.Offset(req.Offset)
	}

	items, err := q.Order(ent.Asc(validationitem.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("validation list failed", "error", err)
		return nil, err
	}

	result := make([]*entity.ValidationItem, len(items))
	for i, item := range items {
		result[i] = utils.ToValidationItem(item)
	}
	return result, nil
}

func (r *validationRepository) PendingCount(ctx context.Context) (int, error) {
	return r.client.ValidationItem.Query().
		Where(validationitem.StatusEQ(string(constants.ValidationPending))).
		Count(ctx)
}
