// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

// ValidationItemUpdate is the builder for updating ValidationItem entities.
type ValidationItemUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationItemMutation
}

// Where appends a list predicates to the ValidationItemUpdate builder.
func (_u *ValidationItemUpdate) Where(ps ...predicate.ValidationItem) *ValidationItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ValidationItemUpdate) SetDocumentID(v uuid.UUID) *ValidationItemUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ValidationItemUpdate) SetNillableDocumentID(v *uuid.UUID) *ValidationItemUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *ValidationItemUpdate) ClearDocumentID() *ValidationItemUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *ValidationItemUpdate) SetRuleID(v uuid.UUID) *ValidationItemUpdate {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *ValidationItemUpdate) SetNillableRuleID(v *uuid.UUID) *ValidationItemUpdate {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// ClearRuleID clears the value of the "rule_id" field.
func (_u *ValidationItemUpdate) ClearRuleID() *ValidationItemUpdate {
	_u.mutation.ClearRuleID()
	return _u
}

// SetExtractedContent sets the "extracted_content" field.
func (_u *ValidationItemUpdate) SetExtractedContent(v json.RawMessage) *ValidationItemUpdate {
	_u.mutation.SetExtractedContent(v)
	return _u
}

// AppendExtractedContent appends value to the "extracted_content" field.
func (_u *ValidationItemUpdate) AppendExtractedContent(v json.RawMessage) *ValidationItemUpdate {
	_u.mutation.AppendExtractedContent(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ValidationItemUpdate) SetStatus(v string) *ValidationItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ValidationItemUpdate) SetNillableStatus(v *string) *ValidationItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetValidatorNotes sets the "validator_notes" field.
func (_u *ValidationItemUpdate) SetValidatorNotes(v string) *ValidationItemUpdate {
	_u.mutation.SetValidatorNotes(v)
	return _u
}

// SetNillableValidatorNotes sets the "validator_notes" field if the given value is not nil.
func (_u *ValidationItemUpdate) SetNillableValidatorNotes(v *string) *ValidationItemUpdate {
	if v != nil {
		_u.SetValidatorNotes(*v)
	}
	return _u
}

// ClearValidatorNotes clears the value of the "validator_notes" field.
func (_u *ValidationItemUpdate) ClearValidatorNotes() *ValidationItemUpdate {
	_u.mutation.ClearValidatorNotes()
	return _u
}

// SetValidatedBy sets the "validated_by" field.
func (_u *ValidationItemUpdate) SetValidatedBy(v string) *ValidationItemUpdate {
	_u.mutation.SetValidatedBy(v)
	return _u
}

// SetNillableValidatedBy sets the "validated_by" field if the given value is not nil.
func (_u *ValidationItemUpdate) SetNillableValidatedBy(v *string) *ValidationItemUpdate {
	if v != nil {
		_u.SetValidatedBy(*v)
	}
	return _u
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (_u *ValidationItemUpdate) ClearValidatedBy() *ValidationItemUpdate {
	_u.mutation.ClearValidatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ValidationItemUpdate) SetCreatedAt(v time.Time) *ValidationItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ValidationItemUpdate) SetNillableCreatedAt(v *time.Time) *ValidationItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ValidationItemUpdate) SetValidatedAt(v time.Time) *ValidationItemUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ValidationItemUpdate) SetNillableValidatedAt(v *time.Time) *ValidationItemUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ValidationItemUpdate) ClearValidatedAt() *ValidationItemUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetDocument sets the "document" edge to the ImportedDocument entity.
func (_u *ValidationItemUpdate) SetDocument(v *ImportedDocument) *ValidationItemUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetRule sets the "rule" edge to the Rule entity.
func (_u *ValidationItemUpdate) SetRule(v *Rule) *ValidationItemUpdate {
	return _u.SetRuleID(v.ID)
}

// Mutation returns the ValidationItemMutation object of the builder.
func (_u *ValidationItemUpdate) Mutation() *ValidationItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the ImportedDocument entity.
func (_u *ValidationItemUpdate) ClearDocument() *ValidationItemUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearRule clears the "rule" edge to the Rule entity.
func (_u *ValidationItemUpdate) ClearRule() *ValidationItemUpdate {
	_u.mutation.ClearRule()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := validationitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationitem.Table, validationitem.Columns, sqlgraph.NewFieldSpec(validationitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExtractedContent(); ok {
		_spec.SetField(validationitem.FieldExtractedContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, validationitem.FieldExtractedContent, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(validationitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidatorNotes(); ok {
		_spec.SetField(validationitem.FieldValidatorNotes, field.TypeString, value)
	}
	if _u.mutation.ValidatorNotesCleared() {
		_spec.ClearField(validationitem.FieldValidatorNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ValidatedBy(); ok {
		_spec.SetField(validationitem.FieldValidatedBy, field.TypeString, value)
	}
	if _u.mutation.ValidatedByCleared() {
		_spec.ClearField(validationitem.FieldValidatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(validationitem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(validationitem.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(validationitem.FieldValidatedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RuleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationItemUpdateOne is the builder for updating a single ValidationItem entity.
type ValidationItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationItemMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ValidationItemUpdateOne) SetDocumentID(v uuid.UUID) *ValidationItemUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ValidationItemUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ValidationItemUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *ValidationItemUpdateOne) ClearDocumentID() *ValidationItemUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *ValidationItemUpdateOne) SetRuleID(v uuid.UUID) *ValidationItemUpdateOne {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *ValidationItemUpdateOne) SetNillableRuleID(v *uuid.UUID) *ValidationItemUpdateOne {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// ClearRuleID clears the value of the "rule_id" field.
func (_u *ValidationItemUpdateOne) ClearRuleID() *ValidationItemUpdateOne {
	_u.mutation.ClearRuleID()
	return _u
}

// SetExtractedContent sets the "extracted_content" field.
func (_u *ValidationItemUpdateOne) SetExtractedContent(v json.RawMessage) *ValidationItemUpdateOne {
	_u.mutation.SetExtractedContent(v)
	return _u
}

// AppendExtractedContent appends value to the "extracted_content" field.
func (_u *ValidationItemUpdateOne) AppendExtractedContent(v json.RawMessage) *ValidationItemUpdateOne {
	_u.mutation.AppendExtractedContent(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ValidationItemUpdateOne) SetStatus(v string) *ValidationItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ValidationItemUpdateOne) SetNillableStatus(v *string) *ValidationItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetValidatorNotes sets the "validator_notes" field.
func (_u *ValidationItemUpdateOne) SetValidatorNotes(v string) *ValidationItemUpdateOne {
	_u.mutation.SetValidatorNotes(v)
	return _u
}

// SetNillableValidatorNotes sets the "validator_notes" field if the given value is not nil.
func (_u *ValidationItemUpdateOne) SetNillableValidatorNotes(v *string) *ValidationItemUpdateOne {
	if v != nil {
		_u.SetValidatorNotes(*v)
	}
	return _u
}

// ClearValidatorNotes clears the value of the "validator_notes" field.
func (_u *ValidationItemUpdateOne) ClearValidatorNotes() *ValidationItemUpdateOne {
	_u.mutation.ClearValidatorNotes()
	return _u
}

// SetValidatedBy sets the "validated_by" field.
func (_u *ValidationItemUpdateOne) SetValidatedBy(v string) *ValidationItemUpdateOne {
	_u.mutation.SetValidatedBy(v)
	return _u
}

// SetNillableValidatedBy sets the "validated_by" field if the given value is not nil.
func (_u *ValidationItemUpdateOne) SetNillableValidatedBy(v *string) *ValidationItemUpdateOne {
	if v != nil {
		_u.SetValidatedBy(*v)
	}
	return _u
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (_u *ValidationItemUpdateOne) ClearValidatedBy() *ValidationItemUpdateOne {
	_u.mutation.ClearValidatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ValidationItemUpdateOne) SetCreatedAt(v time.Time) *ValidationItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ValidationItemUpdateOne) SetNillableCreatedAt(v *time.Time) *ValidationItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ValidationItemUpdateOne) SetValidatedAt(v time.Time) *ValidationItemUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ValidationItemUpdateOne) SetNillableValidatedAt(v *time.Time) *ValidationItemUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ValidationItemUpdateOne) ClearValidatedAt() *ValidationItemUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetDocument sets the "document" edge to the ImportedDocument entity.
func (_u *ValidationItemUpdateOne) SetDocument(v *ImportedDocument) *ValidationItemUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetRule sets the "rule" edge to the Rule entity.
func (_u *ValidationItemUpdateOne) SetRule(v *Rule) *ValidationItemUpdateOne {
	return _u.SetRuleID(v.ID)
}

// Mutation returns the ValidationItemMutation object of the builder.
func (_u *ValidationItemUpdateOne) Mutation() *ValidationItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the ImportedDocument entity.
func (_u *ValidationItemUpdateOne) ClearDocument() *ValidationItemUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearRule clears the "rule" edge to the Rule entity.
func (_u *ValidationItemUpdateOne) ClearRule() *ValidationItemUpdateOne {
	_u.mutation.ClearRule()
	return _u
}

// Where appends a list predicates to the ValidationItemUpdate builder.
func (_u *ValidationItemUpdateOne) Where(ps ...predicate.ValidationItem) *ValidationItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationItemUpdateOne) Select(field string, fields ...string) *ValidationItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationItem entity.
func (_u *ValidationItemUpdateOne) Save(ctx context.Context) (*ValidationItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationItemUpdateOne) SaveX(ctx context.Context) *ValidationItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := validationitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationItemUpdateOne) sqlSave(ctx context.Context) (_node *ValidationItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationitem.Table, validationitem.Columns, sqlgraph.NewFieldSpec(validationitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationitem.FieldID)
		for _, f := range fields {
			if !validationitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationitem.FieldID {
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
	if value, ok := _u.mutation.ExtractedContent(); ok {
		_spec.SetField(validationitem.FieldExtractedContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, validationitem.FieldExtractedContent, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(validationitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidatorNotes(); ok {
		_spec.SetField(validationitem.FieldValidatorNotes, field.TypeString, value)
	}
	if _u.mutation.ValidatorNotesCleared() {
		_spec.ClearField(validationitem.FieldValidatorNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ValidatedBy(); ok {
		_spec.SetField(validationitem.FieldValidatedBy, field.TypeString, value)
	}
	if _u.mutation.ValidatedByCleared() {
		_spec.ClearField(validationitem.FieldValidatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(validationitem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(validationitem.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(validationitem.FieldValidatedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RuleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ValidationItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
