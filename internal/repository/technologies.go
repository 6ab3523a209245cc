package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/gen/ent/technology"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/entity"
	"github.com/esdguide/ruletracker/internal/utils"
)

type TechnologyRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Technology, error)
	GetByName(ctx context.Context, name string) (*entity.Technology, error)
	List(ctx context.Context) ([]*entity.Technology, error)
	// EnsureDefault returns the named technology, creating it when it
	// does not exist yet. Promotion targets this when a candidate
	// carries no technology hint.
	EnsureDefault(ctx context.Context, name string) (*entity.Technology, error)
}

type technologyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTechnologyRepository(client *ent.Client, logger *slog.Logger) TechnologyRepository {
	return &technologyRepository{client: client, logger: logger}
}

func (r *technologyRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Technology, error) {
	tech, err := r.client.Technology.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("technology %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToTechnology(tech), nil
}

func (r *technologyRepository) GetByName(ctx context.Context, name string) (*entity.Technology, error) {
	tech, err := r.client.Technology.Query().
		Where(technology.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("technology %q: %w", name, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToTechnology(tech), nil
}

func (r *technologyRepository) List(ctx context.Context) ([]*entity.Technology, error) {
	techs, err := r.client.Technology.Query().
		Order(ent.Asc(technology.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Technology, len(techs))
	for i, tech := range techs {
		result[i] = utils.ToTechnology(tech)
	}
	return result, nil
}

func (r *technologyRepository) EnsureDefault(ctx context.Context, name string) (*entity.Technology, error) {
	tech, err := r.client.Technology.Query().
		Where(technology.NameEQ(name)).
		Only(ctx)
	if err == nil {
		return utils.ToTechnology(tech), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	created, err := r.client.Technology.Create().
		SetName(name).
		SetDescription("Auto-created default technology").
		Save(ctx)
	if err != nil {
		// Lost a race with a concurrent create; read the winner.
		if ent.IsConstraintError(err) {
			return r.GetByName(ctx, name)
		}
		return nil, err
	}
	r.logger.Info("default technology created", "technology_id", created.ID, "name", name)
	return utils.ToTechnology(created), nil
}
