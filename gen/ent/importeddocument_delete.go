// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
)

// ImportedDocumentDelete is the builder for deleting a ImportedDocument entity.
type ImportedDocumentDelete struct {
	config
	hooks    []Hook
	mutation *ImportedDocumentMutation
}

// Where appends a list predicates to the ImportedDocumentDelete builder.
func (_d *ImportedDocumentDelete) Where(ps ...predicate.ImportedDocument) *ImportedDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ImportedDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ImportedDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ImportedDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(importeddocument.Table, sqlgraph.NewFieldSpec(importeddocument.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ImportedDocumentDeleteOne is the builder for deleting a single ImportedDocument entity.
type ImportedDocumentDeleteOne struct {
	_d *ImportedDocumentDelete
}

// Where appends a list predicates to the ImportedDocumentDelete builder.
func (_d *ImportedDocumentDeleteOne) Where(ps ...predicate.ImportedDocument) *ImportedDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ImportedDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{importeddocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ImportedDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
