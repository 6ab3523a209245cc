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
	"github.com/esdguide/ruletracker/gen/ent/technology"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

// RuleUpdate is the builder for updating Rule entities.
type RuleUpdate struct {
	config
	hooks    []Hook
	mutation *RuleMutation
}

// Where appends a list predicates to the RuleUpdate builder.
func (_u *RuleUpdate) Where(ps ...predicate.Rule) *RuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTechnologyID sets the "technology_id" field.
func (_u *RuleUpdate) SetTechnologyID(v uuid.UUID) *RuleUpdate {
	_u.mutation.SetTechnologyID(v)
	return _u
}

// SetNillableTechnologyID sets the "technology_id" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableTechnologyID(v *uuid.UUID) *RuleUpdate {
	if v != nil {
		_u.SetTechnologyID(*v)
	}
	return _u
}

// SetRuleType sets the "rule_type" field.
func (_u *RuleUpdate) SetRuleType(v string) *RuleUpdate {
	_u.mutation.SetRuleType(v)
	return _u
}

// SetNillableRuleType sets the "rule_type" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableRuleType(v *string) *RuleUpdate {
	if v != nil {
		_u.SetRuleType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RuleUpdate) SetTitle(v string) *RuleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableTitle(v *string) *RuleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RuleUpdate) SetContent(v string) *RuleUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableContent(v *string) *RuleUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *RuleUpdate) SetExplanation(v string) *RuleUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableExplanation(v *string) *RuleUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *RuleUpdate) ClearExplanation() *RuleUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetImplementationNotes sets the "implementation_notes" field.
func (_u *RuleUpdate) SetImplementationNotes(v string) *RuleUpdate {
	_u.mutation.SetImplementationNotes(v)
	return _u
}

// SetNillableImplementationNotes sets the "implementation_notes" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableImplementationNotes(v *string) *RuleUpdate {
	if v != nil {
		_u.SetImplementationNotes(*v)
	}
	return _u
}

// ClearImplementationNotes clears the value of the "implementation_notes" field.
func (_u *RuleUpdate) ClearImplementationNotes() *RuleUpdate {
	_u.mutation.ClearImplementationNotes()
	return _u
}

// SetReferences sets the "references" field.
func (_u *RuleUpdate) SetReferences(v string) *RuleUpdate {
	_u.mutation.SetReferences(v)
	return _u
}

// SetNillableReferences sets the "references" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableReferences(v *string) *RuleUpdate {
	if v != nil {
		_u.SetReferences(*v)
	}
	return _u
}

// ClearReferences clears the value of the "references" field.
func (_u *RuleUpdate) ClearReferences() *RuleUpdate {
	_u.mutation.ClearReferences()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *RuleUpdate) SetSeverity(v string) *RuleUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableSeverity(v *string) *RuleUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RuleUpdate) SetCategory(v string) *RuleUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableCategory(v *string) *RuleUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *RuleUpdate) ClearCategory() *RuleUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *RuleUpdate) SetOrderIndex(v int) *RuleUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableOrderIndex(v *int) *RuleUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *RuleUpdate) AddOrderIndex(v int) *RuleUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RuleUpdate) SetIsActive(v bool) *RuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableIsActive(v *bool) *RuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *RuleUpdate) SetCreatedBy(v string) *RuleUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableCreatedBy(v *string) *RuleUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *RuleUpdate) ClearCreatedBy() *RuleUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *RuleUpdate) SetReviewedBy(v string) *RuleUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableReviewedBy(v *string) *RuleUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *RuleUpdate) ClearReviewedBy() *RuleUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *RuleUpdate) SetReviewedAt(v time.Time) *RuleUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableReviewedAt(v *time.Time) *RuleUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *RuleUpdate) ClearReviewedAt() *RuleUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RuleUpdate) SetCreatedAt(v time.Time) *RuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RuleUpdate) SetNillableCreatedAt(v *time.Time) *RuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RuleUpdate) SetUpdatedAt(v time.Time) *RuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTechnology sets the "technology" edge to the Technology entity.
func (_u *RuleUpdate) SetTechnology(v *Technology) *RuleUpdate {
	return _u.SetTechnologyID(v.ID)
}

// AddImageIDs adds the "images" edge to the RuleImage entity by IDs.
func (_u *RuleUpdate) AddImageIDs(ids ...uuid.UUID) *RuleUpdate {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the RuleImage entity.
func (_u *RuleUpdate) AddImages(v ...*RuleImage) *RuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// AddValidationItemIDs adds the "validation_items" edge to the ValidationItem entity by IDs.
func (_u *RuleUpdate) AddValidationItemIDs(ids ...uuid.UUID) *RuleUpdate {
	_u.mutation.AddValidationItemIDs(ids...)
	return _u
}

// AddValidationItems adds the "validation_items" edges to the ValidationItem entity.
func (_u *RuleUpdate) AddValidationItems(v ...*ValidationItem) *RuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationItemIDs(ids...)
}

// Mutation returns the RuleMutation object of the builder.
func (_u *RuleUpdate) Mutation() *RuleMutation {
	return _u.mutation
}

// ClearTechnology clears the "technology" edge to the Technology entity.
func (_u *RuleUpdate) ClearTechnology() *RuleUpdate {
	_u.mutation.ClearTechnology()
	return _u
}

// ClearImages clears all "images" edges to the RuleImage entity.
func (_u *RuleUpdate) ClearImages() *RuleUpdate {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to RuleImage entities by IDs.
func (_u *RuleUpdate) RemoveImageIDs(ids ...uuid.UUID) *RuleUpdate {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to RuleImage entities.
func (_u *RuleUpdate) RemoveImages(v ...*RuleImage) *RuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// ClearValidationItems clears all "validation_items" edges to the ValidationItem entity.
func (_u *RuleUpdate) ClearValidationItems() *RuleUpdate {
	_u.mutation.ClearValidationItems()
	return _u
}

// RemoveValidationItemIDs removes the "validation_items" edge to ValidationItem entities by IDs.
func (_u *RuleUpdate) RemoveValidationItemIDs(ids ...uuid.UUID) *RuleUpdate {
	_u.mutation.RemoveValidationItemIDs(ids...)
	return _u
}

// RemoveValidationItems removes "validation_items" edges to ValidationItem entities.
func (_u *RuleUpdate) RemoveValidationItems(v ...*ValidationItem) *RuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleUpdate) check() error {
	if v, ok := _u.mutation.RuleType(); ok {
		if err := rule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "Rule.rule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := rule.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Rule.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := rule.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Rule.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := rule.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Rule.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderIndex(); ok {
		if err := rule.OrderIndexValidator(v); err != nil {
			return &ValidationError{Name: "order_index", err: fmt.Errorf(`ent: validator failed for field "Rule.order_index": %w`, err)}
		}
	}
	if _u.mutation.TechnologyCleared() && len(_u.mutation.TechnologyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Rule.technology"`)
	}
	return nil
}

func (_u *RuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rule.Table, rule.Columns, sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleType(); ok {
		_spec.SetField(rule.FieldRuleType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(rule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(rule.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(rule.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(rule.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.ImplementationNotes(); ok {
		_spec.SetField(rule.FieldImplementationNotes, field.TypeString, value)
	}
	if _u.mutation.ImplementationNotesCleared() {
		_spec.ClearField(rule.FieldImplementationNotes, field.TypeString)
	}
	if value, ok := _u.mutation.References(); ok {
		_spec.SetField(rule.FieldReferences, field.TypeString, value)
	}
	if _u.mutation.ReferencesCleared() {
		_spec.ClearField(rule.FieldReferences, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(rule.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(rule.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(rule.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(rule.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(rule.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(rule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(rule.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(rule.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(rule.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(rule.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(rule.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(rule.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(rule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TechnologyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnologyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationItemsIDs(); len(nodes) > 0 && !_u.mutation.ValidationItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RuleUpdateOne is the builder for updating a single Rule entity.
type RuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RuleMutation
}

// SetTechnologyID sets the "technology_id" field.
func (_u *RuleUpdateOne) SetTechnologyID(v uuid.UUID) *RuleUpdateOne {
	_u.mutation.SetTechnologyID(v)
	return _u
}

// SetNillableTechnologyID sets the "technology_id" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableTechnologyID(v *uuid.UUID) *RuleUpdateOne {
	if v != nil {
		_u.SetTechnologyID(*v)
	}
	return _u
}

// SetRuleType sets the "rule_type" field.
func (_u *RuleUpdateOne) SetRuleType(v string) *RuleUpdateOne {
	_u.mutation.SetRuleType(v)
	return _u
}

// SetNillableRuleType sets the "rule_type" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableRuleType(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetRuleType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RuleUpdateOne) SetTitle(v string) *RuleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableTitle(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RuleUpdateOne) SetContent(v string) *RuleUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableContent(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *RuleUpdateOne) SetExplanation(v string) *RuleUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableExplanation(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *RuleUpdateOne) ClearExplanation() *RuleUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetImplementationNotes sets the "implementation_notes" field.
func (_u *RuleUpdateOne) SetImplementationNotes(v string) *RuleUpdateOne {
	_u.mutation.SetImplementationNotes(v)
	return _u
}

// SetNillableImplementationNotes sets the "implementation_notes" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableImplementationNotes(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetImplementationNotes(*v)
	}
	return _u
}

// ClearImplementationNotes clears the value of the "implementation_notes" field.
func (_u *RuleUpdateOne) ClearImplementationNotes() *RuleUpdateOne {
	_u.mutation.ClearImplementationNotes()
	return _u
}

// SetReferences sets the "references" field.
func (_u *RuleUpdateOne) SetReferences(v string) *RuleUpdateOne {
	_u.mutation.SetReferences(v)
	return _u
}

// SetNillableReferences sets the "references" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableReferences(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetReferences(*v)
	}
	return _u
}

// ClearReferences clears the value of the "references" field.
func (_u *RuleUpdateOne) ClearReferences() *RuleUpdateOne {
	_u.mutation.ClearReferences()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *RuleUpdateOne) SetSeverity(v string) *RuleUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableSeverity(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RuleUpdateOne) SetCategory(v string) *RuleUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableCategory(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *RuleUpdateOne) ClearCategory() *RuleUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *RuleUpdateOne) SetOrderIndex(v int) *RuleUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableOrderIndex(v *int) *RuleUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *RuleUpdateOne) AddOrderIndex(v int) *RuleUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RuleUpdateOne) SetIsActive(v bool) *RuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableIsActive(v *bool) *RuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *RuleUpdateOne) SetCreatedBy(v string) *RuleUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableCreatedBy(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *RuleUpdateOne) ClearCreatedBy() *RuleUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *RuleUpdateOne) SetReviewedBy(v string) *RuleUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableReviewedBy(v *string) *RuleUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *RuleUpdateOne) ClearReviewedBy() *RuleUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *RuleUpdateOne) SetReviewedAt(v time.Time) *RuleUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableReviewedAt(v *time.Time) *RuleUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *RuleUpdateOne) ClearReviewedAt() *RuleUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RuleUpdateOne) SetCreatedAt(v time.Time) *RuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RuleUpdateOne) SetNillableCreatedAt(v *time.Time) *RuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RuleUpdateOne) SetUpdatedAt(v time.Time) *RuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTechnology sets the "technology" edge to the Technology entity.
func (_u *RuleUpdateOne) SetTechnology(v *Technology) *RuleUpdateOne {
	return _u.SetTechnologyID(v.ID)
}

// AddImageIDs adds the "images" edge to the RuleImage entity by IDs.
func (_u *RuleUpdateOne) AddImageIDs(ids ...uuid.UUID) *RuleUpdateOne {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the RuleImage entity.
func (_u *RuleUpdateOne) AddImages(v ...*RuleImage) *RuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// AddValidationItemIDs adds the "validation_items" edge to the ValidationItem entity by IDs.
func (_u *RuleUpdateOne) AddValidationItemIDs(ids ...uuid.UUID) *RuleUpdateOne {
	_u.mutation.AddValidationItemIDs(ids...)
	return _u
}

// AddValidationItems adds the "validation_items" edges to the ValidationItem entity.
func (_u *RuleUpdateOne) AddValidationItems(v ...*ValidationItem) *RuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationItemIDs(ids...)
}

// Mutation returns the RuleMutation object of the builder.
func (_u *RuleUpdateOne) Mutation() *RuleMutation {
	return _u.mutation
}

// ClearTechnology clears the "technology" edge to the Technology entity.
func (_u *RuleUpdateOne) ClearTechnology() *RuleUpdateOne {
	_u.mutation.ClearTechnology()
	return _u
}

// ClearImages clears all "images" edges to the RuleImage entity.
func (_u *RuleUpdateOne) ClearImages() *RuleUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to RuleImage entities by IDs.
func (_u *RuleUpdateOne) RemoveImageIDs(ids ...uuid.UUID) *RuleUpdateOne {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to RuleImage entities.
func (_u *RuleUpdateOne) RemoveImages(v ...*RuleImage) *RuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// ClearValidationItems clears all "validation_items" edges to the ValidationItem entity.
func (_u *RuleUpdateOne) ClearValidationItems() *RuleUpdateOne {
	_u.mutation.ClearValidationItems()
	return _u
}

// RemoveValidationItemIDs removes the "validation_items" edge to ValidationItem entities by IDs.
func (_u *RuleUpdateOne) RemoveValidationItemIDs(ids ...uuid.UUID) *RuleUpdateOne {
	_u.mutation.RemoveValidationItemIDs(ids...)
	return _u
}

// RemoveValidationItems removes "validation_items" edges to ValidationItem entities.
func (_u *RuleUpdateOne) RemoveValidationItems(v ...*ValidationItem) *RuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationItemIDs(ids...)
}

// Where appends a list predicates to the RuleUpdate builder.
func (_u *RuleUpdateOne) Where(ps ...predicate.Rule) *RuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RuleUpdateOne) Select(field string, fields ...string) *RuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Rule entity.
func (_u *RuleUpdateOne) Save(ctx context.Context) (*Rule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleUpdateOne) SaveX(ctx context.Context) *Rule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleUpdateOne) check() error {
	if v, ok := _u.mutation.RuleType(); ok {
		if err := rule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "Rule.rule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := rule.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Rule.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := rule.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Rule.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := rule.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Rule.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderIndex(); ok {
		if err := rule.OrderIndexValidator(v); err != nil {
			return &ValidationError{Name: "order_index", err: fmt.Errorf(`ent: validator failed for field "Rule.order_index": %w`, err)}
		}
	}
	if _u.mutation.TechnologyCleared() && len(_u.mutation.TechnologyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Rule.technology"`)
	}
	return nil
}

func (_u *RuleUpdateOne) sqlSave(ctx context.Context) (_node *Rule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rule.Table, rule.Columns, sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Rule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rule.FieldID)
		for _, f := range fields {
			if !rule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rule.FieldID {
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
	if value, ok := _u.mutation.RuleType(); ok {
		_spec.SetField(rule.FieldRuleType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(rule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(rule.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(rule.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(rule.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.ImplementationNotes(); ok {
		_spec.SetField(rule.FieldImplementationNotes, field.TypeString, value)
	}
	if _u.mutation.ImplementationNotesCleared() {
		_spec.ClearField(rule.FieldImplementationNotes, field.TypeString)
	}
	if value, ok := _u.mutation.References(); ok {
		_spec.SetField(rule.FieldReferences, field.TypeString, value)
	}
	if _u.mutation.ReferencesCleared() {
		_spec.ClearField(rule.FieldReferences, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(rule.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(rule.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(rule.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(rule.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(rule.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(rule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(rule.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(rule.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(rule.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(rule.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(rule.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(rule.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(rule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TechnologyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnologyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationItemsIDs(); len(nodes) > 0 && !_u.mutation.ValidationItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Rule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
