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
	"github.com/esdguide/ruletracker/gen/ent/technology"
	"github.com/google/uuid"
)

// TechnologyUpdate is the builder for updating Technology entities.
type TechnologyUpdate struct {
	config
	hooks    []Hook
	mutation *TechnologyMutation
}

// Where appends a list predicates to the TechnologyUpdate builder.
func (_u *TechnologyUpdate) Where(ps ...predicate.Technology) *TechnologyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TechnologyUpdate) SetName(v string) *TechnologyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableName(v *string) *TechnologyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TechnologyUpdate) SetDescription(v string) *TechnologyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableDescription(v *string) *TechnologyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TechnologyUpdate) ClearDescription() *TechnologyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetNodeSize sets the "node_size" field.
func (_u *TechnologyUpdate) SetNodeSize(v string) *TechnologyUpdate {
	_u.mutation.SetNodeSize(v)
	return _u
}

// SetNillableNodeSize sets the "node_size" field if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableNodeSize(v *string) *TechnologyUpdate {
	if v != nil {
		_u.SetNodeSize(*v)
	}
	return _u
}

// ClearNodeSize clears the value of the "node_size" field.
func (_u *TechnologyUpdate) ClearNodeSize() *TechnologyUpdate {
	_u.mutation.ClearNodeSize()
	return _u
}

// SetProcessType sets the "process_type" field.
func (_u *TechnologyUpdate) SetProcessType(v string) *TechnologyUpdate {
	_u.mutation.SetProcessType(v)
	return _u
}

// SetNillableProcessType sets the "process_type" field if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableProcessType(v *string) *TechnologyUpdate {
	if v != nil {
		_u.SetProcessType(*v)
	}
	return _u
}

// ClearProcessType clears the value of the "process_type" field.
func (_u *TechnologyUpdate) ClearProcessType() *TechnologyUpdate {
	_u.mutation.ClearProcessType()
	return _u
}

// SetFoundry sets the "foundry" field.
func (_u *TechnologyUpdate) SetFoundry(v string) *TechnologyUpdate {
	_u.mutation.SetFoundry(v)
	return _u
}

// SetNillableFoundry sets the "foundry" field if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableFoundry(v *string) *TechnologyUpdate {
	if v != nil {
		_u.SetFoundry(*v)
	}
	return _u
}

// ClearFoundry clears the value of the "foundry" field.
func (_u *TechnologyUpdate) ClearFoundry() *TechnologyUpdate {
	_u.mutation.ClearFoundry()
	return _u
}

// SetActive sets the "active" field.
func (_u *TechnologyUpdate) SetActive(v bool) *TechnologyUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableActive(v *bool) *TechnologyUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TechnologyUpdate) SetCreatedAt(v time.Time) *TechnologyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableCreatedAt(v *time.Time) *TechnologyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechnologyUpdate) SetUpdatedAt(v time.Time) *TechnologyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRuleIDs adds the "rules" edge to the Rule entity by IDs.
func (_u *TechnologyUpdate) AddRuleIDs(ids ...uuid.UUID) *TechnologyUpdate {
	_u.mutation.AddRuleIDs(ids...)
	return _u
}

// AddRules adds the "rules" edges to the Rule entity.
func (_u *TechnologyUpdate) AddRules(v ...*Rule) *TechnologyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleIDs(ids...)
}

// Mutation returns the TechnologyMutation object of the builder.
func (_u *TechnologyUpdate) Mutation() *TechnologyMutation {
	return _u.mutation
}

// ClearRules clears all "rules" edges to the Rule entity.
func (_u *TechnologyUpdate) ClearRules() *TechnologyUpdate {
	_u.mutation.ClearRules()
	return _u
}

// RemoveRuleIDs removes the "rules" edge to Rule entities by IDs.
func (_u *TechnologyUpdate) RemoveRuleIDs(ids ...uuid.UUID) *TechnologyUpdate {
	_u.mutation.RemoveRuleIDs(ids...)
	return _u
}

// RemoveRules removes "rules" edges to Rule entities.
func (_u *TechnologyUpdate) RemoveRules(v ...*Rule) *TechnologyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TechnologyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechnologyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TechnologyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechnologyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechnologyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := technology.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechnologyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := technology.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Technology.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TechnologyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(technology.Table, technology.Columns, sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(technology.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(technology.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(technology.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.NodeSize(); ok {
		_spec.SetField(technology.FieldNodeSize, field.TypeString, value)
	}
	if _u.mutation.NodeSizeCleared() {
		_spec.ClearField(technology.FieldNodeSize, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessType(); ok {
		_spec.SetField(technology.FieldProcessType, field.TypeString, value)
	}
	if _u.mutation.ProcessTypeCleared() {
		_spec.ClearField(technology.FieldProcessType, field.TypeString)
	}
	if value, ok := _u.mutation.Foundry(); ok {
		_spec.SetField(technology.FieldFoundry, field.TypeString, value)
	}
	if _u.mutation.FoundryCleared() {
		_spec.ClearField(technology.FieldFoundry, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(technology.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(technology.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(technology.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technology.RulesTable,
			Columns: []string{technology.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRulesIDs(); len(nodes) > 0 && !_u.mutation.RulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technology.RulesTable,
			Columns: []string{technology.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technology.RulesTable,
			Columns: []string{technology.RulesColumn},
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
			err = &NotFoundError{technology.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TechnologyUpdateOne is the builder for updating a single Technology entity.
type TechnologyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TechnologyMutation
}

// SetName sets the "name" field.
func (_u *TechnologyUpdateOne) SetName(v string) *TechnologyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableName(v *string) *TechnologyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TechnologyUpdateOne) SetDescription(v string) *TechnologyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableDescription(v *string) *TechnologyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TechnologyUpdateOne) ClearDescription() *TechnologyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetNodeSize sets the "node_size" field.
func (_u *TechnologyUpdateOne) SetNodeSize(v string) *TechnologyUpdateOne {
	_u.mutation.SetNodeSize(v)
	return _u
}

// SetNillableNodeSize sets the "node_size" field if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableNodeSize(v *string) *TechnologyUpdateOne {
	if v != nil {
		_u.SetNodeSize(*v)
	}
	return _u
}

// ClearNodeSize clears the value of the "node_size" field.
func (_u *TechnologyUpdateOne) ClearNodeSize() *TechnologyUpdateOne {
	_u.mutation.ClearNodeSize()
	return _u
}

// SetProcessType sets the "process_type" field.
func (_u *TechnologyUpdateOne) SetProcessType(v string) *TechnologyUpdateOne {
	_u.mutation.SetProcessType(v)
	return _u
}

// SetNillableProcessType sets the "process_type" field if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableProcessType(v *string) *TechnologyUpdateOne {
	if v != nil {
		_u.SetProcessType(*v)
	}
	return _u
}

// ClearProcessType clears the value of the "process_type" field.
func (_u *TechnologyUpdateOne) ClearProcessType() *TechnologyUpdateOne {
	_u.mutation.ClearProcessType()
	return _u
}

// SetFoundry sets the "foundry" field.
func (_u *TechnologyUpdateOne) SetFoundry(v string) *TechnologyUpdateOne {
	_u.mutation.SetFoundry(v)
	return _u
}

// SetNillableFoundry sets the "foundry" field if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableFoundry(v *string) *TechnologyUpdateOne {
	if v != nil {
		_u.SetFoundry(*v)
	}
	return _u
}

// ClearFoundry clears the value of the "foundry" field.
func (_u *TechnologyUpdateOne) ClearFoundry() *TechnologyUpdateOne {
	_u.mutation.ClearFoundry()
	return _u
}

// SetActive sets the "active" field.
func (_u *TechnologyUpdateOne) SetActive(v bool) *TechnologyUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableActive(v *bool) *TechnologyUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TechnologyUpdateOne) SetCreatedAt(v time.Time) *TechnologyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableCreatedAt(v *time.Time) *TechnologyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechnologyUpdateOne) SetUpdatedAt(v time.Time) *TechnologyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRuleIDs adds the "rules" edge to the Rule entity by IDs.
func (_u *TechnologyUpdateOne) AddRuleIDs(ids ...uuid.UUID) *TechnologyUpdateOne {
	_u.mutation.AddRuleIDs(ids...)
	return _u
}

// AddRules adds the "rules" edges to the Rule entity.
func (_u *TechnologyUpdateOne) AddRules(v ...*Rule) *TechnologyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleIDs(ids...)
}

// Mutation returns the TechnologyMutation object of the builder.
func (_u *TechnologyUpdateOne) Mutation() *TechnologyMutation {
	return _u.mutation
}

// ClearRules clears all "rules" edges to the Rule entity.
func (_u *TechnologyUpdateOne) ClearRules() *TechnologyUpdateOne {
	_u.mutation.ClearRules()
	return _u
}

// RemoveRuleIDs removes the "rules" edge to Rule entities by IDs.
func (_u *TechnologyUpdateOne) RemoveRuleIDs(ids ...uuid.UUID) *TechnologyUpdateOne {
	_u.mutation.RemoveRuleIDs(ids...)
	return _u
}

// RemoveRules removes "rules" edges to Rule entities.
func (_u *TechnologyUpdateOne) RemoveRules(v ...*Rule) *TechnologyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleIDs(ids...)
}

// Where appends a list predicates to the TechnologyUpdate builder.
func (_u *TechnologyUpdateOne) Where(ps ...predicate.Technology) *TechnologyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TechnologyUpdateOne) Select(field string, fields ...string) *TechnologyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Technology entity.
func (_u *TechnologyUpdateOne) Save(ctx context.Context) (*Technology, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechnologyUpdateOne) SaveX(ctx context.Context) *Technology {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TechnologyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechnologyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechnologyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := technology.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechnologyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := technology.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Technology.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TechnologyUpdateOne) sqlSave(ctx context.Context) (_node *Technology, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(technology.Table, technology.Columns, sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Technology.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, technology.FieldID)
		for _, f := range fields {
			if !technology.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != technology.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(technology.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(technology.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(technology.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.NodeSize(); ok {
		_spec.SetField(technology.FieldNodeSize, field.TypeString, value)
	}
	if _u.mutation.NodeSizeCleared() {
		_spec.ClearField(technology.FieldNodeSize, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessType(); ok {
		_spec.SetField(technology.FieldProcessType, field.TypeString, value)
	}
	if _u.mutation.ProcessTypeCleared() {
		_spec.ClearField(technology.FieldProcessType, field.TypeString)
	}
	if value, ok := _u.mutation.Foundry(); ok {
		_spec.SetField(technology.FieldFoundry, field.TypeString, value)
	}
	if _u.mutation.FoundryCleared() {
		_spec.ClearField(technology.FieldFoundry, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(technology.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(technology.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(technology.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technology.RulesTable,
			Columns: []string{technology.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRulesIDs(); len(nodes) > 0 && !_u.mutation.RulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technology.RulesTable,
			Columns: []string{technology.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technology.RulesTable,
			Columns: []string{technology.RulesColumn},
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
	_node = &Technology{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{technology.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
