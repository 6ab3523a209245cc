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
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

// ImportedDocumentUpdate is the builder for updating ImportedDocument entities.
type ImportedDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *ImportedDocumentMutation
}

// Where appends a list predicates to the ImportedDocumentUpdate builder.
func (_u *ImportedDocumentUpdate) Where(ps ...predicate.ImportedDocument) *ImportedDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ImportedDocumentUpdate) SetFilename(v string) *ImportedDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportedDocumentUpdate) SetNillableFilename(v *string) *ImportedDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ImportedDocumentUpdate) SetFormat(v string) *ImportedDocumentUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ImportedDocumentUpdate) SetNillableFormat(v *string) *ImportedDocumentUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetFileData sets the "file_data" field.
func (_u *ImportedDocumentUpdate) SetFileData(v []byte) *ImportedDocumentUpdate {
	_u.mutation.SetFileData(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportedDocumentUpdate) SetStatus(v string) *ImportedDocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportedDocumentUpdate) SetNillableStatus(v *string) *ImportedDocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingNotes sets the "processing_notes" field.
func (_u *ImportedDocumentUpdate) SetProcessingNotes(v string) *ImportedDocumentUpdate {
	_u.mutation.SetProcessingNotes(v)
	return _u
}

// SetNillableProcessingNotes sets the "processing_notes" field if the given value is not nil.
func (_u *ImportedDocumentUpdate) SetNillableProcessingNotes(v *string) *ImportedDocumentUpdate {
	if v != nil {
		_u.SetProcessingNotes(*v)
	}
	return _u
}

// ClearProcessingNotes clears the value of the "processing_notes" field.
func (_u *ImportedDocumentUpdate) ClearProcessingNotes() *ImportedDocumentUpdate {
	_u.mutation.ClearProcessingNotes()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *ImportedDocumentUpdate) SetUploadedBy(v string) *ImportedDocumentUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *ImportedDocumentUpdate) SetNillableUploadedBy(v *string) *ImportedDocumentUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *ImportedDocumentUpdate) ClearUploadedBy() *ImportedDocumentUpdate {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ImportedDocumentUpdate) SetUploadedAt(v time.Time) *ImportedDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ImportedDocumentUpdate) SetNillableUploadedAt(v *time.Time) *ImportedDocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ImportedDocumentUpdate) SetProcessedAt(v time.Time) *ImportedDocumentUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ImportedDocumentUpdate) SetNillableProcessedAt(v *time.Time) *ImportedDocumentUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ImportedDocumentUpdate) ClearProcessedAt() *ImportedDocumentUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddValidationItemIDs adds the "validation_items" edge to the ValidationItem entity by IDs.
func (_u *ImportedDocumentUpdate) AddValidationItemIDs(ids ...uuid.UUID) *ImportedDocumentUpdate {
	_u.mutation.AddValidationItemIDs(ids...)
	return _u
}

// AddValidationItems adds the "validation_items" edges to the ValidationItem entity.
func (_u *ImportedDocumentUpdate) AddValidationItems(v ...*ValidationItem) *ImportedDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationItemIDs(ids...)
}

// Mutation returns the ImportedDocumentMutation object of the builder.
func (_u *ImportedDocumentUpdate) Mutation() *ImportedDocumentMutation {
	return _u.mutation
}

// ClearValidationItems clears all "validation_items" edges to the ValidationItem entity.
func (_u *ImportedDocumentUpdate) ClearValidationItems() *ImportedDocumentUpdate {
	_u.mutation.ClearValidationItems()
	return _u
}

// RemoveValidationItemIDs removes the "validation_items" edge to ValidationItem entities by IDs.
func (_u *ImportedDocumentUpdate) RemoveValidationItemIDs(ids ...uuid.UUID) *ImportedDocumentUpdate {
	_u.mutation.RemoveValidationItemIDs(ids...)
	return _u
}

// RemoveValidationItems removes "validation_items" edges to ValidationItem entities.
func (_u *ImportedDocumentUpdate) RemoveValidationItems(v ...*ValidationItem) *ImportedDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportedDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportedDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportedDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportedDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportedDocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := importeddocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportedDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := importeddocument.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ImportedDocument.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importeddocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportedDocument.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportedDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importeddocument.Table, importeddocument.Columns, sqlgraph.NewFieldSpec(importeddocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(importeddocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(importeddocument.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileData(); ok {
		_spec.SetField(importeddocument.FieldFileData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importeddocument.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingNotes(); ok {
		_spec.SetField(importeddocument.FieldProcessingNotes, field.TypeString, value)
	}
	if _u.mutation.ProcessingNotesCleared() {
		_spec.ClearField(importeddocument.FieldProcessingNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(importeddocument.FieldUploadedBy, field.TypeString, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(importeddocument.FieldUploadedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(importeddocument.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(importeddocument.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(importeddocument.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.ValidationItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importeddocument.ValidationItemsTable,
			Columns: []string{importeddocument.ValidationItemsColumn},
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
			Table:   importeddocument.ValidationItemsTable,
			Columns: []string{importeddocument.ValidationItemsColumn},
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
			Table:   importeddocument.ValidationItemsTable,
			Columns: []string{importeddocument.ValidationItemsColumn},
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
			err = &NotFoundError{importeddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportedDocumentUpdateOne is the builder for updating a single ImportedDocument entity.
type ImportedDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportedDocumentMutation
}

// SetFilename sets the "filename" field.
func (_u *ImportedDocumentUpdateOne) SetFilename(v string) *ImportedDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportedDocumentUpdateOne) SetNillableFilename(v *string) *ImportedDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ImportedDocumentUpdateOne) SetFormat(v string) *ImportedDocumentUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ImportedDocumentUpdateOne) SetNillableFormat(v *string) *ImportedDocumentUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetFileData sets the "file_data" field.
func (_u *ImportedDocumentUpdateOne) SetFileData(v []byte) *ImportedDocumentUpdateOne {
	_u.mutation.SetFileData(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportedDocumentUpdateOne) SetStatus(v string) *ImportedDocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportedDocumentUpdateOne) SetNillableStatus(v *string) *ImportedDocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingNotes sets the "processing_notes" field.
func (_u *ImportedDocumentUpdateOne) SetProcessingNotes(v string) *ImportedDocumentUpdateOne {
	_u.mutation.SetProcessingNotes(v)
	return _u
}

// SetNillableProcessingNotes sets the "processing_notes" field if the given value is not nil.
func (_u *ImportedDocumentUpdateOne) SetNillableProcessingNotes(v *string) *ImportedDocumentUpdateOne {
	if v != nil {
		_u.SetProcessingNotes(*v)
	}
	return _u
}

// ClearProcessingNotes clears the value of the "processing_notes" field.
func (_u *ImportedDocumentUpdateOne) ClearProcessingNotes() *ImportedDocumentUpdateOne {
	_u.mutation.ClearProcessingNotes()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *ImportedDocumentUpdateOne) SetUploadedBy(v string) *ImportedDocumentUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *ImportedDocumentUpdateOne) SetNillableUploadedBy(v *string) *ImportedDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *ImportedDocumentUpdateOne) ClearUploadedBy() *ImportedDocumentUpdateOne {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ImportedDocumentUpdateOne) SetUploadedAt(v time.Time) *ImportedDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ImportedDocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *ImportedDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ImportedDocumentUpdateOne) SetProcessedAt(v time.Time) *ImportedDocumentUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ImportedDocumentUpdateOne) SetNillableProcessedAt(v *time.Time) *ImportedDocumentUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ImportedDocumentUpdateOne) ClearProcessedAt() *ImportedDocumentUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddValidationItemIDs adds the "validation_items" edge to the ValidationItem entity by IDs.
func (_u *ImportedDocumentUpdateOne) AddValidationItemIDs(ids ...uuid.UUID) *ImportedDocumentUpdateOne {
	_u.mutation.AddValidationItemIDs(ids...)
	return _u
}

// AddValidationItems adds the "validation_items" edges to the ValidationItem entity.
func (_u *ImportedDocumentUpdateOne) AddValidationItems(v ...*ValidationItem) *ImportedDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationItemIDs(ids...)
}

// Mutation returns the ImportedDocumentMutation object of the builder.
func (_u *ImportedDocumentUpdateOne) Mutation() *ImportedDocumentMutation {
	return _u.mutation
}

// ClearValidationItems clears all "validation_items" edges to the ValidationItem entity.
func (_u *ImportedDocumentUpdateOne) ClearValidationItems() *ImportedDocumentUpdateOne {
	_u.mutation.ClearValidationItems()
	return _u
}

// RemoveValidationItemIDs removes the "validation_items" edge to ValidationItem entities by IDs.
func (_u *ImportedDocumentUpdateOne) RemoveValidationItemIDs(ids ...uuid.UUID) *ImportedDocumentUpdateOne {
	_u.mutation.RemoveValidationItemIDs(ids...)
	return _u
}

// RemoveValidationItems removes "validation_items" edges to ValidationItem entities.
func (_u *ImportedDocumentUpdateOne) RemoveValidationItems(v ...*ValidationItem) *ImportedDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationItemIDs(ids...)
}

// Where appends a list predicates to the ImportedDocumentUpdate builder.
func (_u *ImportedDocumentUpdateOne) Where(ps ...predicate.ImportedDocument) *ImportedDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportedDocumentUpdateOne) Select(field string, fields ...string) *ImportedDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportedDocument entity.
func (_u *ImportedDocumentUpdateOne) Save(ctx context.Context) (*ImportedDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportedDocumentUpdateOne) SaveX(ctx context.Context) *ImportedDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportedDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportedDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportedDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := importeddocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportedDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := importeddocument.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ImportedDocument.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importeddocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportedDocument.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportedDocumentUpdateOne) sqlSave(ctx context.Context) (_node *ImportedDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importeddocument.Table, importeddocument.Columns, sqlgraph.NewFieldSpec(importeddocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportedDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importeddocument.FieldID)
		for _, f := range fields {
			if !importeddocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importeddocument.FieldID {
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
		_spec.SetField(importeddocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(importeddocument.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileData(); ok {
		_spec.SetField(importeddocument.FieldFileData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importeddocument.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingNotes(); ok {
		_spec.SetField(importeddocument.FieldProcessingNotes, field.TypeString, value)
	}
	if _u.mutation.ProcessingNotesCleared() {
		_spec.ClearField(importeddocument.FieldProcessingNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(importeddocument.FieldUploadedBy, field.TypeString, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(importeddocument.FieldUploadedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(importeddocument.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(importeddocument.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(importeddocument.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.ValidationItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importeddocument.ValidationItemsTable,
			Columns: []string{importeddocument.ValidationItemsColumn},
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
			Table:   importeddocument.ValidationItemsTable,
			Columns: []string{importeddocument.ValidationItemsColumn},
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
			Table:   importeddocument.ValidationItemsTable,
			Columns: []string{importeddocument.ValidationItemsColumn},
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
	_node = &ImportedDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importeddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
