// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/ruleimage"
	"github.com/google/uuid"
)

// RuleImageUpdate is the builder for updating RuleImage entities.
type RuleImageUpdate struct {
	config
	hooks    []Hook
	mutation *RuleImageMutation
}

// Where appends a list predicates to the RuleImageUpdate builder.
func (_u *RuleImageUpdate) Where(ps ...predicate.RuleImage) *RuleImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *RuleImageUpdate) SetRuleID(v uuid.UUID) *RuleImageUpdate {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *RuleImageUpdate) SetNillableRuleID(v *uuid.UUID) *RuleImageUpdate {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *RuleImageUpdate) SetFilename(v string) *RuleImageUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *RuleImageUpdate) SetNillableFilename(v *string) *RuleImageUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetImageData sets the "image_data" field.
func (_u *RuleImageUpdate) SetImageData(v []byte) *RuleImageUpdate {
	_u.mutation.SetImageData(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *RuleImageUpdate) SetMimeType(v string) *RuleImageUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *RuleImageUpdate) SetNillableMimeType(v *string) *RuleImageUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *RuleImageUpdate) ClearMimeType() *RuleImageUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *RuleImageUpdate) SetCaption(v string) *RuleImageUpdate {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *RuleImageUpdate) SetNillableCaption(v *string) *RuleImageUpdate {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *RuleImageUpdate) ClearCaption() *RuleImageUpdate {
	_u.mutation.ClearCaption()
	return _u
}

// SetDescription sets the "description" field.
func (_u *RuleImageUpdate) SetDescription(v string) *RuleImageUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RuleImageUpdate) SetNillableDescription(v *string) *RuleImageUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RuleImageUpdate) ClearDescription() *RuleImageUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *RuleImageUpdate) SetOrderIndex(v int) *RuleImageUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *RuleImageUpdate) SetNillableOrderIndex(v *int) *RuleImageUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *RuleImageUpdate) AddOrderIndex(v int) *RuleImageUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RuleImageUpdate) SetCreatedAt(v time.Time) *RuleImageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RuleImageUpdate) SetNillableCreatedAt(v *time.Time) *RuleImageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRule sets the "rule" edge to the Rule entity.
func (_u *RuleImageUpdate) SetRule(v *Rule) *RuleImageUpdate {
	return _u.SetRuleID(v.ID)
}

// Mutation returns the RuleImageMutation object of the builder.
func (_u *RuleImageUpdate) Mutation() *RuleImageMutation {
	return _u.mutation
}

// ClearRule clears the "rule" edge to the Rule entity.
func (_u *RuleImageUpdate) ClearRule() *RuleImageUpdate {
	_u.mutation.ClearRule()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RuleImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RuleImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleImageUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := ruleimage.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "RuleImage.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageData(); ok {
		if err := ruleimage.ImageDataValidator(v); err != nil {
			return &ValidationError{Name: "image_data", err: fmt.Errorf(`ent: validator failed for field "RuleImage.image_data": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderIndex(); ok {
		if err := ruleimage.OrderIndexValidator(v); err != nil {
			return &ValidationError{Name: "order_index", err: fmt.Errorf(`ent: validator failed for field "RuleImage.order_index": %w`, err)}
		}
	}
	if _u.mutation.RuleCleared() && len(_u.mutation.RuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RuleImage.rule"`)
	}
	return nil
}

func (_u *RuleImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ruleimage.Table, ruleimage.Columns, sqlgraph.NewFieldSpec(ruleimage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(ruleimage.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageData(); ok {
		_spec.SetField(ruleimage.FieldImageData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(ruleimage.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(ruleimage.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(ruleimage.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(ruleimage.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ruleimage.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ruleimage.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(ruleimage.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(ruleimage.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ruleimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RuleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ruleimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RuleImageUpdateOne is the builder for updating a single RuleImage entity.
type RuleImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RuleImageMutation
}

// SetRuleID sets the "rule_id" field.
func (_u *RuleImageUpdateOne) SetRuleID(v uuid.UUID) *RuleImageUpdateOne {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *RuleImageUpdateOne) SetNillableRuleID(v *uuid.UUID) *RuleImageUpdateOne {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *RuleImageUpdateOne) SetFilename(v string) *RuleImageUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *RuleImageUpdateOne) SetNillableFilename(v *string) *RuleImageUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetImageData sets the "image_data" field.
func (_u *RuleImageUpdateOne) SetImageData(v []byte) *RuleImageUpdateOne {
	_u.mutation.SetImageData(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *RuleImageUpdateOne) SetMimeType(v string) *RuleImageUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *RuleImageUpdateOne) SetNillableMimeType(v *string) *RuleImageUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *RuleImageUpdateOne) ClearMimeType() *RuleImageUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *RuleImageUpdateOne) SetCaption(v string) *RuleImageUpdateOne {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *RuleImageUpdateOne) SetNillableCaption(v *string) *RuleImageUpdateOne {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *RuleImageUpdateOne) ClearCaption() *RuleImageUpdateOne {
	_u.mutation.ClearCaption()
	return _u
}

// SetDescription sets the "description" field.
func (_u *RuleImageUpdateOne) SetDescription(v string) *RuleImageUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RuleImageUpdateOne) SetNillableDescription(v *string) *RuleImageUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RuleImageUpdateOne) ClearDescription() *RuleImageUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *RuleImageUpdateOne) SetOrderIndex(v int) *RuleImageUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *RuleImageUpdateOne) SetNillableOrderIndex(v *int) *RuleImageUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *RuleImageUpdateOne) AddOrderIndex(v int) *RuleImageUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RuleImageUpdateOne) SetCreatedAt(v time.Time) *RuleImageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RuleImageUpdateOne) SetNillableCreatedAt(v *time.Time) *RuleImageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRule sets the "rule" edge to the Rule entity.
func (_u *RuleImageUpdateOne) SetRule(v *Rule) *RuleImageUpdateOne {
	return _u.SetRuleID(v.ID)
}

// Mutation returns the RuleImageMutation object of the builder.
func (_u *RuleImageUpdateOne) Mutation() *RuleImageMutation {
	return _u.mutation
}

// ClearRule clears the "rule" edge to the Rule entity.
func (_u *RuleImageUpdateOne) ClearRule() *RuleImageUpdateOne {
	_u.mutation.ClearRule()
	return _u
}

// Where appends a list predicates to the RuleImageUpdate builder.
func (_u *RuleImageUpdateOne) Where(ps ...predicate.RuleImage) *RuleImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RuleImageUpdateOne) Select(field string, fields ...string) *RuleImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RuleImage entity.
func (_u *RuleImageUpdateOne) Save(ctx context.Context) (*RuleImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleImageUpdateOne) SaveX(ctx context.Context) *RuleImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RuleImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleImageUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := ruleimage.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "RuleImage.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageData(); ok {
		if err := ruleimage.ImageDataValidator(v); err != nil {
			return &ValidationError{Name: "image_data", err: fmt.Errorf(`ent: validator failed for field "RuleImage.image_data": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderIndex(); ok {
		if err := ruleimage.OrderIndexValidator(v); err != nil {
			return &ValidationError{Name: "order_index", err: fmt.Errorf(`ent: validator failed for field "RuleImage.order_index": %w`, err)}
		}
	}
	if _u.mutation.RuleCleared() && len(_u.mutation.RuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RuleImage.rule"`)
	}
	return nil
}

func (_u *RuleImageUpdateOne) sqlSave(ctx context.Context) (_node *RuleImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ruleimage.Table, ruleimage.Columns, sqlgraph.NewFieldSpec(ruleimage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RuleImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ruleimage.FieldID)
		for _, f := range fields {
			if !ruleimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ruleimage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(ruleimage.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageData(); ok {
		_spec.SetField(ruleimage.FieldImageData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(ruleimage.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(ruleimage.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(ruleimage.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(ruleimage.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ruleimage.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ruleimage.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(ruleimage.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(ruleimage.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ruleimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RuleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RuleImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ruleimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
