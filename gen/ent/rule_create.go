// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/ruleimage"
	"github.com/esdguide/ruletracker/gen/ent/technology"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

// RuleCreate is the builder for creating a Rule entity.
type RuleCreate struct {
	config
	mutation *RuleMutation
	hooks    []Hook
}

// SetTechnologyID sets the "technology_id" field.
func (_c *RuleCreate) SetTechnologyID(v uuid.UUID) *RuleCreate {
	_c.mutation.SetTechnologyID(v)
	return _c
}

// SetRuleType sets the "rule_type" field.
func (_c *RuleCreate) SetRuleType(v string) *RuleCreate {
	_c.mutation.SetRuleType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RuleCreate) SetTitle(v string) *RuleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *RuleCreate) SetContent(v string) *RuleCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *RuleCreate) SetExplanation(v string) *RuleCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *RuleCreate) SetNillableExplanation(v *string) *RuleCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetImplementationNotes sets the "implementation_notes" field.
func (_c *RuleCreate) SetImplementationNotes(v string) *RuleCreate {
	_c.mutation.SetImplementationNotes(v)
	return _c
}

// SetNillableImplementationNotes sets the "implementation_notes" field if the given value is not nil.
func (_c *RuleCreate) SetNillableImplementationNotes(v *string) *RuleCreate {
	if v != nil {
		_c.SetImplementationNotes(*v)
	}
	return _c
}

// SetReferences sets the "references" field.
func (_c *RuleCreate) SetReferences(v string) *RuleCreate {
	_c.mutation.SetReferences(v)
	return _c
}

// SetNillableReferences sets the "references" field if the given value is not nil.
func (_c *RuleCreate) SetNillableReferences(v *string) *RuleCreate {
	if v != nil {
		_c.SetReferences(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *RuleCreate) SetSeverity(v string) *RuleCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *RuleCreate) SetNillableSeverity(v *string) *RuleCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *RuleCreate) SetCategory(v string) *RuleCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *RuleCreate) SetNillableCategory(v *string) *RuleCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *RuleCreate) SetOrderIndex(v int) *RuleCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *RuleCreate) SetNillableOrderIndex(v *int) *RuleCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *RuleCreate) SetIsActive(v bool) *RuleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *RuleCreate) SetNillableIsActive(v *bool) *RuleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *RuleCreate) SetCreatedBy(v string) *RuleCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *RuleCreate) SetNillableCreatedBy(v *string) *RuleCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *RuleCreate) SetReviewedBy(v string) *RuleCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *RuleCreate) SetNillableReviewedBy(v *string) *RuleCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *RuleCreate) SetReviewedAt(v time.Time) *RuleCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *RuleCreate) SetNillableReviewedAt(v *time.Time) *RuleCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RuleCreate) SetCreatedAt(v time.Time) *RuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RuleCreate) SetNillableCreatedAt(v *time.Time) *RuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RuleCreate) SetUpdatedAt(v time.Time) *RuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RuleCreate) SetNillableUpdatedAt(v *time.Time) *RuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RuleCreate) SetID(v uuid.UUID) *RuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RuleCreate) SetNillableID(v *uuid.UUID) *RuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTechnology sets the "technology" edge to the Technology entity.
func (_c *RuleCreate) SetTechnology(v *Technology) *RuleCreate {
	return _c.SetTechnologyID(v.ID)
}

// AddImageIDs adds the "images" edge to the RuleImage entity by IDs.
func (_c *RuleCreate) AddImageIDs(ids ...uuid.UUID) *RuleCreate {
	_c.mutation.AddImageIDs(ids...)
	return _c
}

// AddImages adds the "images" edges to the RuleImage entity.
func (_c *RuleCreate) AddImages(v ...*RuleImage) *RuleCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImageIDs(ids...)
}

// AddValidationItemIDs adds the "validation_items" edge to the ValidationItem entity by IDs.
func (_c *RuleCreate) AddValidationItemIDs(ids ...uuid.UUID) *RuleCreate {
	_c.mutation.AddValidationItemIDs(ids...)
	return _c
}

// AddValidationItems adds the "validation_items" edges to the ValidationItem entity.
func (_c *RuleCreate) AddValidationItems(v ...*ValidationItem) *RuleCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValidationItemIDs(ids...)
}

// Mutation returns the RuleMutation object of the builder.
func (_c *RuleCreate) Mutation() *RuleMutation {
	return _c.mutation
}

// Save creates the Rule in the database.
func (_c *RuleCreate) Save(ctx context.Context) (*Rule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuleCreate) SaveX(ctx context.Context) *Rule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuleCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := rule.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := rule.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := rule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := rule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := rule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuleCreate) check() error {
	if _, ok := _c.mutation.TechnologyID(); !ok {
		return &ValidationError{Name: "technology_id", err: errors.New(`ent: missing required field "Rule.technology_id"`)}
	}
	if _, ok := _c.mutation.RuleType(); !ok {
		return &ValidationError{Name: "rule_type", err: errors.New(`ent: missing required field "Rule.rule_type"`)}
	}
	if v, ok := _c.mutation.RuleType(); ok {
		if err := rule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "Rule.rule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Rule.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := rule.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Rule.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Rule.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := rule.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Rule.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Rule.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := rule.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Rule.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Rule.order_index"`)}
	}
	if v, ok := _c.mutation.OrderIndex(); ok {
		if err := rule.OrderIndexValidator(v); err != nil {
			return &ValidationError{Name: "order_index", err: fmt.Errorf(`ent: validator failed for field "Rule.order_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Rule.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Rule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Rule.updated_at"`)}
	}
	if len(_c.mutation.TechnologyIDs()) == 0 {
		return &ValidationError{Name: "technology", err: errors.New(`ent: missing required edge "Rule.technology"`)}
	}
	return nil
}

func (_c *RuleCreate) sqlSave(ctx context.Context) (*Rule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RuleCreate) createSpec() (*Rule, *sqlgraph.CreateSpec) {
	var (
		_node = &Rule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rule.Table, sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RuleType(); ok {
		_spec.SetField(rule.FieldRuleType, field.TypeString, value)
		_node.RuleType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(rule.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(rule.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(rule.FieldExplanation, field.TypeString, value)
		_node.Explanation = &value
	}
	if value, ok := _c.mutation.ImplementationNotes(); ok {
		_spec.SetField(rule.FieldImplementationNotes, field.TypeString, value)
		_node.ImplementationNotes = &value
	}
	if value, ok := _c.mutation.References(); ok {
		_spec.SetField(rule.FieldReferences, field.TypeString, value)
		_node.References = &value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(rule.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(rule.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(rule.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(rule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(rule.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(rule.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(rule.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(rule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TechnologyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rule.TechnologyTable,
			Columns: []string{rule.TechnologyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TechnologyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ImagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rule.ImagesTable,
			Columns: []string{rule.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ruleimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ValidationItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rule.ValidationItemsTable,
			Columns: []string{rule.ValidationItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RuleCreateBulk is the builder for creating many Rule entities in bulk.
type RuleCreateBulk struct {
	config
	err      error
	builders []*RuleCreate
}

// Save creates the Rule entities in the database.
func (_c *RuleCreateBulk) Save(ctx context.Context) ([]*Rule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RuleCreateBulk) SaveX(ctx context.Context) []*Rule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
