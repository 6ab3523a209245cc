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
	"github.com/google/uuid"
)

// RuleImageCreate is the builder for creating a RuleImage entity.
type RuleImageCreate struct {
	config
	mutation *RuleImageMutation
	hooks    []Hook
}

// SetRuleID sets the "rule_id" field.
func (_c *RuleImageCreate) SetRuleID(v uuid.UUID) *RuleImageCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *RuleImageCreate) SetFilename(v string) *RuleImageCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetImageData sets the "image_data" field.
func (_c *RuleImageCreate) SetImageData(v []byte) *RuleImageCreate {
	_c.mutation.SetImageData(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *RuleImageCreate) SetMimeType(v string) *RuleImageCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *RuleImageCreate) SetNillableMimeType(v *string) *RuleImageCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetCaption sets the "caption" field.
func (_c *RuleImageCreate) SetCaption(v string) *RuleImageCreate {
	_c.mutation.SetCaption(v)
	return _c
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_c *RuleImageCreate) SetNillableCaption(v *string) *RuleImageCreate {
	if v != nil {
		_c.SetCaption(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *RuleImageCreate) SetDescription(v string) *RuleImageCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RuleImageCreate) SetNillableDescription(v *string) *RuleImageCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *RuleImageCreate) SetOrderIndex(v int) *RuleImageCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *RuleImageCreate) SetNillableOrderIndex(v *int) *RuleImageCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RuleImageCreate) SetCreatedAt(v time.Time) *RuleImageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RuleImageCreate) SetNillableCreatedAt(v *time.Time) *RuleImageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RuleImageCreate) SetID(v uuid.UUID) *RuleImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RuleImageCreate) SetNillableID(v *uuid.UUID) *RuleImageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRule sets the "rule" edge to the Rule entity.
func (_c *RuleImageCreate) SetRule(v *Rule) *RuleImageCreate {
	return _c.SetRuleID(v.ID)
}

// Mutation returns the RuleImageMutation object of the builder.
func (_c *RuleImageCreate) Mutation() *RuleImageMutation {
	return _c.mutation
}

// Save creates the RuleImage in the database.
func (_c *RuleImageCreate) Save(ctx context.Context) (*RuleImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuleImageCreate) SaveX(ctx context.Context) *RuleImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuleImageCreate) defaults() {
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := ruleimage.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ruleimage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ruleimage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuleImageCreate) check() error {
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "RuleImage.rule_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "RuleImage.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := ruleimage.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "RuleImage.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImageData(); !ok {
		return &ValidationError{Name: "image_data", err: errors.New(`ent: missing required field "RuleImage.image_data"`)}
	}
	if v, ok := _c.mutation.ImageData(); ok {
		if err := ruleimage.ImageDataValidator(v); err != nil {
			return &ValidationError{Name: "image_data", err: fmt.Errorf(`ent: validator failed for field "RuleImage.image_data": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "RuleImage.order_index"`)}
	}
	if v, ok := _c.mutation.OrderIndex(); ok {
		if err := ruleimage.OrderIndexValidator(v); err != nil {
			return &ValidationError{Name: "order_index", err: fmt.Errorf(`ent: validator failed for field "RuleImage.order_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RuleImage.created_at"`)}
	}
	if len(_c.mutation.RuleIDs()) == 0 {
		return &ValidationError{Name: "rule", err: errors.New(`ent: missing required edge "RuleImage.rule"`)}
	}
	return nil
}

func (_c *RuleImageCreate) sqlSave(ctx context.Context) (*RuleImage, error) {
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

func (_c *RuleImageCreate) createSpec() (*RuleImage, *sqlgraph.CreateSpec) {
	var (
		_node = &RuleImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ruleimage.Table, sqlgraph.NewFieldSpec(ruleimage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(ruleimage.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ImageData(); ok {
		_spec.SetField(ruleimage.FieldImageData, field.TypeBytes, value)
		_node.ImageData = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(ruleimage.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := _c.mutation.Caption(); ok {
		_spec.SetField(ruleimage.FieldCaption, field.TypeString, value)
		_node.Caption = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(ruleimage.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(ruleimage.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ruleimage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RuleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ruleimage.RuleTable,
			Columns: []string{ruleimage.RuleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RuleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RuleImageCreateBulk is the builder for creating many RuleImage entities in bulk.
type RuleImageCreateBulk struct {
	config
	err      error
	builders []*RuleImageCreate
}

// Save creates the RuleImage entities in the database.
func (_c *RuleImageCreateBulk) Save(ctx context.Context) ([]*RuleImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RuleImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuleImageMutation)
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
func (_c *RuleImageCreateBulk) SaveX(ctx context.Context) []*RuleImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
