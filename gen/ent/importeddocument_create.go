// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

// ImportedDocumentCreate is the builder for creating a ImportedDocument entity.
type ImportedDocumentCreate struct {
	config
	mutation *ImportedDocumentMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *ImportedDocumentCreate) SetFilename(v string) *ImportedDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ImportedDocumentCreate) SetFormat(v string) *ImportedDocumentCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetFileData sets the "file_data" field.
func (_c *ImportedDocumentCreate) SetFileData(v []byte) *ImportedDocumentCreate {
	_c.mutation.SetFileData(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportedDocumentCreate) SetStatus(v string) *ImportedDocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportedDocumentCreate) SetNillableStatus(v *string) *ImportedDocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessingNotes sets the "processing_notes" field.
func (_c *ImportedDocumentCreate) SetProcessingNotes(v string) *ImportedDocumentCreate {
	_c.mutation.SetProcessingNotes(v)
	return _c
}

// SetNillableProcessingNotes sets the "processing_notes" field if the given value is not nil.
func (_c *ImportedDocumentCreate) SetNillableProcessingNotes(v *string) *ImportedDocumentCreate {
	if v != nil {
		_c.SetProcessingNotes(*v)
	}
	return _c
}

// SetUploadedBy sets the "uploaded_by" field.
func (_c *ImportedDocumentCreate) SetUploadedBy(v string) *ImportedDocumentCreate {
	_c.mutation.SetUploadedBy(v)
	return _c
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_c *ImportedDocumentCreate) SetNillableUploadedBy(v *string) *ImportedDocumentCreate {
	if v != nil {
		_c.SetUploadedBy(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *ImportedDocumentCreate) SetUploadedAt(v time.Time) *ImportedDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *ImportedDocumentCreate) SetNillableUploadedAt(v *time.Time) *ImportedDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ImportedDocumentCreate) SetProcessedAt(v time.Time) *ImportedDocumentCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ImportedDocumentCreate) SetNillableProcessedAt(v *time.Time) *ImportedDocumentCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportedDocumentCreate) SetID(v uuid.UUID) *ImportedDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportedDocumentCreate) SetNillableID(v *uuid.UUID) *ImportedDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddValidationItemIDs adds the "validation_items" edge to the ValidationItem entity by IDs.
func (_c *ImportedDocumentCreate) AddValidationItemIDs(ids ...uuid.UUID) *ImportedDocumentCreate {
	_c.mutation.AddValidationItemIDs(ids...)
	return _c
}

// AddValidationItems adds the "validation_items" edges to the ValidationItem entity.
func (_c *ImportedDocumentCreate) AddValidationItems(v ...*ValidationItem) *ImportedDocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValidationItemIDs(ids...)
}

// Mutation returns the ImportedDocumentMutation object of the builder.
func (_c *ImportedDocumentCreate) Mutation() *ImportedDocumentMutation {
	return _c.mutation
}

// Save creates the ImportedDocument in the database.
func (_c *ImportedDocumentCreate) Save(ctx context.Context) (*ImportedDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportedDocumentCreate) SaveX(ctx context.Context) *ImportedDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportedDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportedDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportedDocumentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := importeddocument.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := importeddocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importeddocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportedDocumentCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ImportedDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := importeddocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportedDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ImportedDocument.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := importeddocument.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ImportedDocument.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileData(); !ok {
		return &ValidationError{Name: "file_data", err: errors.New(`ent: missing required field "ImportedDocument.file_data"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportedDocument.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importeddocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportedDocument.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "ImportedDocument.uploaded_at"`)}
	}
	return nil
}

func (_c *ImportedDocumentCreate) sqlSave(ctx context.Context) (*ImportedDocument, error) {
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

func (_c *ImportedDocumentCreate) createSpec() (*ImportedDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportedDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importeddocument.Table, sqlgraph.NewFieldSpec(importeddocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(importeddocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(importeddocument.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.FileData(); ok {
		_spec.SetField(importeddocument.FieldFileData, field.TypeBytes, value)
		_node.FileData = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importeddocument.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProcessingNotes(); ok {
		_spec.SetField(importeddocument.FieldProcessingNotes, field.TypeString, value)
		_node.ProcessingNotes = &value
	}
	if value, ok := _c.mutation.UploadedBy(); ok {
		_spec.SetField(importeddocument.FieldUploadedBy, field.TypeString, value)
		_node.UploadedBy = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(importeddocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(importeddocument.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.ValidationItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ImportedDocumentCreateBulk is the builder for creating many ImportedDocument entities in bulk.
type ImportedDocumentCreateBulk struct {
	config
	err      error
	builders []*ImportedDocumentCreate
}

// Save creates the ImportedDocument entities in the database.
func (_c *ImportedDocumentCreateBulk) Save(ctx context.Context) ([]*ImportedDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportedDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportedDocumentMutation)
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
func (_c *ImportedDocumentCreateBulk) SaveX(ctx context.Context) []*ImportedDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportedDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportedDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
