// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

// ValidationItemCreate is the builder for creating a ValidationItem entity.
type ValidationItemCreate struct {
	config
	mutation *ValidationItemMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ValidationItemCreate) SetDocumentID(v uuid.UUID) *ValidationItemCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableDocumentID(v *uuid.UUID) *ValidationItemCreate {
	if v != nil {
		_c.SetDocumentID(*v)
	}
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *ValidationItemCreate) SetRuleID(v uuid.UUID) *ValidationItemCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableRuleID(v *uuid.UUID) *ValidationItemCreate {
	if v != nil {
		_c.SetRuleID(*v)
	}
	return _c
}

// SetExtractedContent sets the "extracted_content" field.
func (_c *ValidationItemCreate) SetExtractedContent(v json.RawMessage) *ValidationItemCreate {
	_c.mutation.SetExtractedContent(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ValidationItemCreate) SetStatus(v string) *ValidationItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableStatus(v *string) *ValidationItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetValidatorNotes sets the "validator_notes" field.
func (_c *ValidationItemCreate) SetValidatorNotes(v string) *ValidationItemCreate {
	_c.mutation.SetValidatorNotes(v)
	return _c
}

// SetNillableValidatorNotes sets the "validator_notes" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableValidatorNotes(v *string) *ValidationItemCreate {
	if v != nil {
		_c.SetValidatorNotes(*v)
	}
	return _c
}

// SetValidatedBy sets the "validated_by" field.
func (_c *ValidationItemCreate) SetValidatedBy(v string) *ValidationItemCreate {
	_c.mutation.SetValidatedBy(v)
	return _c
}

// SetNillableValidatedBy sets the "validated_by" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableValidatedBy(v *string) *ValidationItemCreate {
	if v != nil {
		_c.SetValidatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationItemCreate) SetCreatedAt(v time.Time) *ValidationItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableCreatedAt(v *time.Time) *ValidationItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *ValidationItemCreate) SetValidatedAt(v time.Time) *ValidationItemCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableValidatedAt(v *time.Time) *ValidationItemCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationItemCreate) SetID(v uuid.UUID) *ValidationItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableID(v *uuid.UUID) *ValidationItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the ImportedDocument entity.
func (_c *ValidationItemCreate) SetDocument(v *ImportedDocument) *ValidationItemCreate {
	return _c.SetDocumentID(v.ID)
}

// SetRule sets the "rule" edge to the Rule entity.
func (_c *ValidationItemCreate) SetRule(v *Rule) *ValidationItemCreate {
	return _c.SetRuleID(v.ID)
}

// Mutation returns the ValidationItemMutation object of the builder.
func (_c *ValidationItemCreate) Mutation() *ValidationItemMutation {
	return _c.mutation
}

// Save creates the ValidationItem in the database.
func (_c *ValidationItemCreate) Save(ctx context.Context) (*ValidationItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationItemCreate) SaveX(ctx context.Context) *ValidationItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := validationitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := validationitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationItemCreate) check() error {
	if _, ok := _c.mutation.ExtractedContent(); !ok {
		return &ValidationError{Name: "extracted_content", err: errors.New(`ent: missing required field "ValidationItem.extracted_content"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ValidationItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := validationitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationItem.created_at"`)}
	}
	return nil
}

func (_c *ValidationItemCreate) sqlSave(ctx context.Context) (*ValidationItem, error) {
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

func (_c *ValidationItemCreate) createSpec() (*ValidationItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationitem.Table, sqlgraph.NewFieldSpec(validationitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ExtractedContent(); ok {
		_spec.SetField(validationitem.FieldExtractedContent, field.TypeJSON, value)
		_node.ExtractedContent = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(validationitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ValidatorNotes(); ok {
		_spec.SetField(validationitem.FieldValidatorNotes, field.TypeString, value)
		_node.ValidatorNotes = &value
	}
	if value, ok := _c.mutation.ValidatedBy(); ok {
		_spec.SetField(validationitem.FieldValidatedBy, field.TypeString, value)
		_node.ValidatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(validationitem.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationitem.DocumentTable,
			Columns: []string{validationitem.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importeddocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RuleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationitem.RuleTable,
			Columns: []string{validationitem.RuleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RuleID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ValidationItemCreateBulk is the builder for creating many ValidationItem entities in bulk.
type ValidationItemCreateBulk struct {
	config
	err      error
	builders []*ValidationItemCreate
}

// Save creates the ValidationItem entities in the database.
func (_c *ValidationItemCreateBulk) Save(ctx context.Context) ([]*ValidationItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationItemMutation)
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
func (_c *ValidationItemCreateBulk) SaveX(ctx context.Context) []*ValidationItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
