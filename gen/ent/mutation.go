// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/ruleimage"
	"github.com/esdguide/ruletracker/gen/ent/technology"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeImportedDocument = "ImportedDocument"
	TypeRule             = "Rule"
	TypeRuleImage        = "RuleImage"
	TypeTechnology       = "Technology"
	TypeValidationItem   = "ValidationItem"
)

// ImportedDocumentMutation represents an operation that mutates the ImportedDocument nodes in the graph.
type ImportedDocumentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	filename                *string
	format                  *string
	file_data               *[]byte
	status                  *string
	processing_notes        *string
	uploaded_by             *string
	uploaded_at             *time.Time
	processed_at            *time.Time
	clearedFields           map[string]struct{}
	validation_items        map[uuid.UUID]struct{}
	removedvalidation_items map[uuid.UUID]struct{}
	clearedvalidation_items bool
	done                    bool
	oldValue                func(context.Context) (*ImportedDocument, error)
	predicates              []predicate.ImportedDocument
}

var _ ent.Mutation = (*ImportedDocumentMutation)(nil)

// importeddocumentOption allows management of the mutation configuration using functional options.
type importeddocumentOption func(*ImportedDocumentMutation)

// newImportedDocumentMutation creates new mutation for the ImportedDocument entity.
func newImportedDocumentMutation(c config, op Op, opts ...importeddocumentOption) *ImportedDocumentMutation {
	m := &ImportedDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeImportedDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportedDocumentID sets the ID field of the mutation.
func withImportedDocumentID(id uuid.UUID) importeddocumentOption {
	return func(m *ImportedDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportedDocument
		)
		m.oldValue = func(ctx context.Context) (*ImportedDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportedDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportedDocument sets the old ImportedDocument of the mutation.
func withImportedDocument(node *ImportedDocument) importeddocumentOption {
	return func(m *ImportedDocumentMutation) {
		m.oldValue = func(context.Context) (*ImportedDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportedDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportedDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportedDocument entities.
func (m *ImportedDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportedDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportedDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportedDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ImportedDocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ImportedDocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ImportedDocument entity.
// If the ImportedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedDocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ImportedDocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFormat sets the "format" field.
func (m *ImportedDocumentMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ImportedDocumentMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ImportedDocument entity.
// If the ImportedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedDocumentMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ImportedDocumentMutation) ResetFormat() {
	m.format = nil
}

// SetFileData sets the "file_data" field.
func (m *ImportedDocumentMutation) SetFileData(b []byte) {
	m.file_data = &b
}

// FileData returns the value of the "file_data" field in the mutation.
func (m *ImportedDocumentMutation) FileData() (r []byte, exists bool) {
	v := m.file_data
	if v == nil {
		return
	}
	return *v, true
}

// OldFileData returns the old "file_data" field's value of the ImportedDocument entity.
// If the ImportedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedDocumentMutation) OldFileData(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileData: %w", err)
	}
	return oldValue.FileData, nil
}

// ResetFileData resets all changes to the "file_data" field.
func (m *ImportedDocumentMutation) ResetFileData() {
	m.file_data = nil
}

// SetStatus sets the "status" field.
func (m *ImportedDocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportedDocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportedDocument entity.
// If the ImportedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedDocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ImportedDocumentMutation) ResetStatus() {
	m.status = nil
}

// SetProcessingNotes sets the "processing_notes" field.
func (m *ImportedDocumentMutation) SetProcessingNotes(s string) {
	m.processing_notes = &s
}

// ProcessingNotes returns the value of the "processing_notes" field in the mutation.
func (m *ImportedDocumentMutation) ProcessingNotes() (r string, exists bool) {
	v := m.processing_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingNotes returns the old "processing_notes" field's value of the ImportedDocument entity.
// If the ImportedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedDocumentMutation) OldProcessingNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingNotes: %w", err)
	}
	return oldValue.ProcessingNotes, nil
}

// ClearProcessingNotes clears the value of the "processing_notes" field.
func (m *ImportedDocumentMutation) ClearProcessingNotes() {
	m.processing_notes = nil
	m.clearedFields[importeddocument.FieldProcessingNotes] = struct{}{}
}

// ProcessingNotesCleared returns if the "processing_notes" field was cleared in this mutation.
func (m *ImportedDocumentMutation) ProcessingNotesCleared() bool {
	_, ok := m.clearedFields[importeddocument.FieldProcessingNotes]
	return ok
}

// ResetProcessingNotes resets all changes to the "processing_notes" field.
func (m *ImportedDocumentMutation) ResetProcessingNotes() {
	m.processing_notes = nil
	delete(m.clearedFields, importeddocument.FieldProcessingNotes)
}

// SetUploadedBy sets the "uploaded_by" field.
func (m *ImportedDocumentMutation) SetUploadedBy(s string) {
	m.uploaded_by = &s
}

// UploadedBy returns the value of the "uploaded_by" field in the mutation.
func (m *ImportedDocumentMutation) UploadedBy() (r string, exists bool) {
	v := m.uploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedBy returns the old "uploaded_by" field's value of the ImportedDocument entity.
// If the ImportedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedDocumentMutation) OldUploadedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedBy: %w", err)
	}
	return oldValue.UploadedBy, nil
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (m *ImportedDocumentMutation) ClearUploadedBy() {
	m.uploaded_by = nil
	m.clearedFields[importeddocument.FieldUploadedBy] = struct{}{}
}

// UploadedByCleared returns if the "uploaded_by" field was cleared in this mutation.
func (m *ImportedDocumentMutation) UploadedByCleared() bool {
	_, ok := m.clearedFields[importeddocument.FieldUploadedBy]
	return ok
}

// ResetUploadedBy resets all changes to the "uploaded_by" field.
func (m *ImportedDocumentMutation) ResetUploadedBy() {
	m.uploaded_by = nil
	delete(m.clearedFields, importeddocument.FieldUploadedBy)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ImportedDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ImportedDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ImportedDocument entity.
// If the ImportedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ImportedDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *ImportedDocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ImportedDocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ImportedDocument entity.
// If the ImportedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportedDocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ImportedDocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[importeddocument.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ImportedDocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[importeddocument.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ImportedDocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, importeddocument.FieldProcessedAt)
}

// AddValidationItemIDs adds the "validation_items" edge to the ValidationItem entity by ids.
func (m *ImportedDocumentMutation) AddValidationItemIDs(ids ...uuid.UUID) {
	if m.validation_items == nil {
		m.validation_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.validation_items[ids[i]] = struct{}{}
	}
}

// ClearValidationItems clears the "validation_items" edge to the ValidationItem entity.
func (m *ImportedDocumentMutation) ClearValidationItems() {
	m.clearedvalidation_items = true
}

// ValidationItemsCleared reports if the "validation_items" edge to the ValidationItem entity was cleared.
func (m *ImportedDocumentMutation) ValidationItemsCleared() bool {
	return m.clearedvalidation_items
}

// RemoveValidationItemIDs removes the "validation_items" edge to the ValidationItem entity by IDs.
func (m *ImportedDocumentMutation) RemoveValidationItemIDs(ids ...uuid.UUID) {
	if m.removedvalidation_items == nil {
		m.removedvalidation_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.validation_items, ids[i])
		m.removedvalidation_items[ids[i]] = struct{}{}
	}
}

// RemovedValidationItems returns the removed IDs of the "validation_items" edge to the ValidationItem entity.
func (m *ImportedDocumentMutation) RemovedValidationItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedvalidation_items {
		ids = append(ids, id)
	}
	return
}

// ValidationItemsIDs returns the "validation_items" edge IDs in the mutation.
func (m *ImportedDocumentMutation) ValidationItemsIDs() (ids []uuid.UUID) {
	for id := range m.validation_items {
		ids = append(ids, id)
	}
	return
}

// ResetValidationItems resets all changes to the "validation_items" edge.
func (m *ImportedDocumentMutation) ResetValidationItems() {
	m.validation_items = nil
	m.clearedvalidation_items = false
	m.removedvalidation_items = nil
}

// Where appends a list predicates to the ImportedDocumentMutation builder.
func (m *ImportedDocumentMutation) Where(ps ...predicate.ImportedDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportedDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportedDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportedDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportedDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportedDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportedDocument).
func (m *ImportedDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportedDocumentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.filename != nil {
		fields = append(fields, importeddocument.FieldFilename)
	}
	if m.format != nil {
		fields = append(fields, importeddocument.FieldFormat)
	}
	if m.file_data != nil {
		fields = append(fields, importeddocument.FieldFileData)
	}
	if m.status != nil {
		fields = append(fields, importeddocument.FieldStatus)
	}
	if m.processing_notes != nil {
		fields = append(fields, importeddocument.FieldProcessingNotes)
	}
	if m.uploaded_by != nil {
		fields = append(fields, importeddocument.FieldUploadedBy)
	}
	if m.uploaded_at != nil {
		fields = append(fields, importeddocument.FieldUploadedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, importeddocument.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportedDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importeddocument.FieldFilename:
		return m.Filename()
	case importeddocument.FieldFormat:
		return m.Format()
	case importeddocument.FieldFileData:
		return m.FileData()
	case importeddocument.FieldStatus:
		return m.Status()
	case importeddocument.FieldProcessingNotes:
		return m.ProcessingNotes()
	case importeddocument.FieldUploadedBy:
		return m.UploadedBy()
	case importeddocument.FieldUploadedAt:
		return m.UploadedAt()
	case importeddocument.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportedDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importeddocument.FieldFilename:
		return m.OldFilename(ctx)
	case importeddocument.FieldFormat:
		return m.OldFormat(ctx)
	case importeddocument.FieldFileData:
		return m.OldFileData(ctx)
	case importeddocument.FieldStatus:
		return m.OldStatus(ctx)
	case importeddocument.FieldProcessingNotes:
		return m.OldProcessingNotes(ctx)
	case importeddocument.FieldUploadedBy:
		return m.OldUploadedBy(ctx)
	case importeddocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case importeddocument.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImportedDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportedDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importeddocument.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case importeddocument.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case importeddocument.FieldFileData:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileData(v)
		return nil
	case importeddocument.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importeddocument.FieldProcessingNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingNotes(v)
		return nil
	case importeddocument.FieldUploadedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedBy(v)
		return nil
	case importeddocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case importeddocument.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImportedDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportedDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportedDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportedDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ImportedDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportedDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importeddocument.FieldProcessingNotes) {
		fields = append(fields, importeddocument.FieldProcessingNotes)
	}
	if m.FieldCleared(importeddocument.FieldUploadedBy) {
		fields = append(fields, importeddocument.FieldUploadedBy)
	}
	if m.FieldCleared(importeddocument.FieldProcessedAt) {
		fields = append(fields, importeddocument.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportedDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportedDocumentMutation) ClearField(name string) error {
	switch name {
	case importeddocument.FieldProcessingNotes:
		m.ClearProcessingNotes()
		return nil
	case importeddocument.FieldUploadedBy:
		m.ClearUploadedBy()
		return nil
	case importeddocument.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportedDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportedDocumentMutation) ResetField(name string) error {
	switch name {
	case importeddocument.FieldFilename:
		m.ResetFilename()
		return nil
	case importeddocument.FieldFormat:
		m.ResetFormat()
		return nil
	case importeddocument.FieldFileData:
		m.ResetFileData()
		return nil
	case importeddocument.FieldStatus:
		m.ResetStatus()
		return nil
	case importeddocument.FieldProcessingNotes:
		m.ResetProcessingNotes()
		return nil
	case importeddocument.FieldUploadedBy:
		m.ResetUploadedBy()
		return nil
	case importeddocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case importeddocument.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportedDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportedDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.validation_items != nil {
		edges = append(edges, importeddocument.EdgeValidationItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportedDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case importeddocument.EdgeValidationItems:
		ids := make([]ent.Value, 0, len(m.validation_items))
		for id := range m.validation_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportedDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedvalidation_items != nil {
		edges = append(edges, importeddocument.EdgeValidationItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportedDocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case importeddocument.EdgeValidationItems:
		ids := make([]ent.Value, 0, len(m.removedvalidation_items))
		for id := range m.removedvalidation_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportedDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvalidation_items {
		edges = append(edges, importeddocument.EdgeValidationItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportedDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case importeddocument.EdgeValidationItems:
		return m.clearedvalidation_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportedDocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ImportedDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportedDocumentMutation) ResetEdge(name string) error {
	switch name {
	case importeddocument.EdgeValidationItems:
		m.ResetValidationItems()
		return nil
	}
	return fmt.Errorf("unknown ImportedDocument edge %s", name)
}

// RuleMutation represents an operation that mutates the Rule nodes in the graph.
type RuleMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	rule_type               *string
	title                   *string
	content                 *string
	explanation             *string
	implementation_notes    *string
	references              *string
	severity                *string
	category                *string
	order_index             *int
	addorder_index          *int
	is_active               *bool
	created_by              *string
	reviewed_by             *string
	reviewed_at             *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	technology              *uuid.UUID
	clearedtechnology       bool
	images                  map[uuid.UUID]struct{}
	removedimages           map[uuid.UUID]struct{}
	clearedimages           bool
	validation_items        map[uuid.UUID]struct{}
	removedvalidation_items map[uuid.UUID]struct{}
	clearedvalidation_items bool
	done                    bool
	oldValue                func(context.Context) (*Rule, error)
	predicates              []predicate.Rule
}

var _ ent.Mutation = (*RuleMutation)(nil)

// ruleOption allows management of the mutation configuration using functional options.
type ruleOption func(*RuleMutation)

// newRuleMutation creates new mutation for the Rule entity.
func newRuleMutation(c config, op Op, opts ...ruleOption) *RuleMutation {
	m := &RuleMutation{
		config:        c,
		op:            op,
		typ:           TypeRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuleID sets the ID field of the mutation.
func withRuleID(id uuid.UUID) ruleOption {
	return func(m *RuleMutation) {
		var (
			err   error
			once  sync.Once
			value *Rule
		)
		m.oldValue = func(ctx context.Context) (*Rule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRule sets the old Rule of the mutation.
func withRule(node *Rule) ruleOption {
	return func(m *RuleMutation) {
		m.oldValue = func(context.Context) (*Rule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Rule entities.
func (m *RuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTechnologyID sets the "technology_id" field.
func (m *RuleMutation) SetTechnologyID(u uuid.UUID) {
	m.technology = &u
}

// TechnologyID returns the value of the "technology_id" field in the mutation.
func (m *RuleMutation) TechnologyID() (r uuid.UUID, exists bool) {
	v := m.technology
	if v == nil {
		return
	}
	return *v, true
}

// OldTechnologyID returns the old "technology_id" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldTechnologyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechnologyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechnologyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechnologyID: %w", err)
	}
	return oldValue.TechnologyID, nil
}

// ResetTechnologyID resets all changes to the "technology_id" field.
func (m *RuleMutation) ResetTechnologyID() {
	m.technology = nil
}

// SetRuleType sets the "rule_type" field.
func (m *RuleMutation) SetRuleType(s string) {
	m.rule_type = &s
}

// RuleType returns the value of the "rule_type" field in the mutation.
func (m *RuleMutation) RuleType() (r string, exists bool) {
	v := m.rule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleType returns the old "rule_type" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldRuleType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleType: %w", err)
	}
	return oldValue.RuleType, nil
}

// ResetRuleType resets all changes to the "rule_type" field.
func (m *RuleMutation) ResetRuleType() {
	m.rule_type = nil
}

// SetTitle sets the "title" field.
func (m *RuleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RuleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RuleMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *RuleMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *RuleMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *RuleMutation) ResetContent() {
	m.content = nil
}

// SetExplanation sets the "explanation" field.
func (m *RuleMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *RuleMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldExplanation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *RuleMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[rule.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *RuleMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[rule.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *RuleMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, rule.FieldExplanation)
}

// SetImplementationNotes sets the "implementation_notes" field.
func (m *RuleMutation) SetImplementationNotes(s string) {
	m.implementation_notes = &s
}

// ImplementationNotes returns the value of the "implementation_notes" field in the mutation.
func (m *RuleMutation) ImplementationNotes() (r string, exists bool) {
	v := m.implementation_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldImplementationNotes returns the old "implementation_notes" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldImplementationNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImplementationNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImplementationNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImplementationNotes: %w", err)
	}
	return oldValue.ImplementationNotes, nil
}

// ClearImplementationNotes clears the value of the "implementation_notes" field.
func (m *RuleMutation) ClearImplementationNotes() {
	m.implementation_notes = nil
	m.clearedFields[rule.FieldImplementationNotes] = struct{}{}
}

// ImplementationNotesCleared returns if the "implementation_notes" field was cleared in this mutation.
func (m *RuleMutation) ImplementationNotesCleared() bool {
	_, ok := m.clearedFields[rule.FieldImplementationNotes]
	return ok
}

// ResetImplementationNotes resets all changes to the "implementation_notes" field.
func (m *RuleMutation) ResetImplementationNotes() {
	m.implementation_notes = nil
	delete(m.clearedFields, rule.FieldImplementationNotes)
}

// SetReferences sets the "references" field.
func (m *RuleMutation) SetReferences(s string) {
	m.references = &s
}

// References returns the value of the "references" field in the mutation.
func (m *RuleMutation) References() (r string, exists bool) {
	v := m.references
	if v == nil {
		return
	}
	return *v, true
}

// OldReferences returns the old "references" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldReferences(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferences: %w", err)
	}
	return oldValue.References, nil
}

// ClearReferences clears the value of the "references" field.
func (m *RuleMutation) ClearReferences() {
	m.references = nil
	m.clearedFields[rule.FieldReferences] = struct{}{}
}

// ReferencesCleared returns if the "references" field was cleared in this mutation.
func (m *RuleMutation) ReferencesCleared() bool {
	_, ok := m.clearedFields[rule.FieldReferences]
	return ok
}

// ResetReferences resets all changes to the "references" field.
func (m *RuleMutation) ResetReferences() {
	m.references = nil
	delete(m.clearedFields, rule.FieldReferences)
}

// SetSeverity sets the "severity" field.
func (m *RuleMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *RuleMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *RuleMutation) ResetSeverity() {
	m.severity = nil
}

// SetCategory sets the "category" field.
func (m *RuleMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *RuleMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *RuleMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[rule.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *RuleMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[rule.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *RuleMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, rule.FieldCategory)
}

// SetOrderIndex sets the "order_index" field.
func (m *RuleMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *RuleMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *RuleMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *RuleMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *RuleMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetIsActive sets the "is_active" field.
func (m *RuleMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *RuleMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *RuleMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *RuleMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *RuleMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *RuleMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[rule.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *RuleMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[rule.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *RuleMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, rule.FieldCreatedBy)
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *RuleMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *RuleMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldReviewedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *RuleMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[rule.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *RuleMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[rule.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *RuleMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, rule.FieldReviewedBy)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *RuleMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *RuleMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *RuleMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[rule.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *RuleMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[rule.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *RuleMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, rule.FieldReviewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTechnology clears the "technology" edge to the Technology entity.
func (m *RuleMutation) ClearTechnology() {
	m.clearedtechnology = true
	m.clearedFields[rule.FieldTechnologyID] = struct{}{}
}

// TechnologyCleared reports if the "technology" edge to the Technology entity was cleared.
func (m *RuleMutation) TechnologyCleared() bool {
	return m.clearedtechnology
}

// TechnologyIDs returns the "technology" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TechnologyID instead. It exists only for internal usage by the builders.
func (m *RuleMutation) TechnologyIDs() (ids []uuid.UUID) {
	if id := m.technology; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTechnology resets all changes to the "technology" edge.
func (m *RuleMutation) ResetTechnology() {
	m.technology = nil
	m.clearedtechnology = false
}

// AddImageIDs adds the "images" edge to the RuleImage entity by ids.
func (m *RuleMutation) AddImageIDs(ids ...uuid.UUID) {
	if m.images == nil {
		m.images = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.images[ids[i]] = struct{}{}
	}
}

// ClearImages clears the "images" edge to the RuleImage entity.
func (m *RuleMutation) ClearImages() {
	m.clearedimages = true
}

// ImagesCleared reports if the "images" edge to the RuleImage entity was cleared.
func (m *RuleMutation) ImagesCleared() bool {
	return m.clearedimages
}

// RemoveImageIDs removes the "images" edge to the RuleImage entity by IDs.
func (m *RuleMutation) RemoveImageIDs(ids ...uuid.UUID) {
	if m.removedimages == nil {
		m.removedimages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.images, ids[i])
		m.removedimages[ids[i]] = struct{}{}
	}
}

// RemovedImages returns the removed IDs of the "images" edge to the RuleImage entity.
func (m *RuleMutation) RemovedImagesIDs() (ids []uuid.UUID) {
	for id := range m.removedimages {
		ids = append(ids, id)
	}
	return
}

// ImagesIDs returns the "images" edge IDs in the mutation.
func (m *RuleMutation) ImagesIDs() (ids []uuid.UUID) {
	for id := range m.images {
		ids = append(ids, id)
	}
	return
}

// ResetImages resets all changes to the "images" edge.
func (m *RuleMutation) ResetImages() {
	m.images = nil
	m.clearedimages = false
	m.removedimages = nil
}

// AddValidationItemIDs adds the "validation_items" edge to the ValidationItem entity by ids.
func (m *RuleMutation) AddValidationItemIDs(ids ...uuid.UUID) {
	if m.validation_items == nil {
		m.validation_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.validation_items[ids[i]] = struct{}{}
	}
}

// ClearValidationItems clears the "validation_items" edge to the ValidationItem entity.
func (m *RuleMutation) ClearValidationItems() {
	m.clearedvalidation_items = true
}

// ValidationItemsCleared reports if the "validation_items" edge to the ValidationItem entity was cleared.
func (m *RuleMutation) ValidationItemsCleared() bool {
	return m.clearedvalidation_items
}

// RemoveValidationItemIDs removes the "validation_items" edge to the ValidationItem entity by IDs.
func (m *RuleMutation) RemoveValidationItemIDs(ids ...uuid.UUID) {
	if m.removedvalidation_items == nil {
		m.removedvalidation_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.validation_items, ids[i])
		m.removedvalidation_items[ids[i]] = struct{}{}
	}
}

// RemovedValidationItems returns the removed IDs of the "validation_items" edge to the ValidationItem entity.
func (m *RuleMutation) RemovedValidationItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedvalidation_items {
		ids = append(ids, id)
	}
	return
}

// ValidationItemsIDs returns the "validation_items" edge IDs in the mutation.
func (m *RuleMutation) ValidationItemsIDs() (ids []uuid.UUID) {
	for id := range m.validation_items {
		ids = append(ids, id)
	}
	return
}

// ResetValidationItems resets all changes to the "validation_items" edge.
func (m *RuleMutation) ResetValidationItems() {
	m.validation_items = nil
	m.clearedvalidation_items = false
	m.removedvalidation_items = nil
}

// Where appends a list predicates to the RuleMutation builder.
func (m *RuleMutation) Where(ps ...predicate.Rule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rule).
func (m *RuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuleMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.technology != nil {
		fields = append(fields, rule.FieldTechnologyID)
	}
	if m.rule_type != nil {
		fields = append(fields, rule.FieldRuleType)
	}
	if m.title != nil {
		fields = append(fields, rule.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, rule.FieldContent)
	}
	if m.explanation != nil {
		fields = append(fields, rule.FieldExplanation)
	}
	if m.implementation_notes != nil {
		fields = append(fields, rule.FieldImplementationNotes)
	}
	if m.references != nil {
		fields = append(fields, rule.FieldReferences)
	}
	if m.severity != nil {
		fields = append(fields, rule.FieldSeverity)
	}
	if m.category != nil {
		fields = append(fields, rule.FieldCategory)
	}
	if m.order_index != nil {
		fields = append(fields, rule.FieldOrderIndex)
	}
	if m.is_active != nil {
		fields = append(fields, rule.FieldIsActive)
	}
	if m.created_by != nil {
		fields = append(fields, rule.FieldCreatedBy)
	}
	if m.reviewed_by != nil {
		fields = append(fields, rule.FieldReviewedBy)
	}
	if m.reviewed_at != nil {
		fields = append(fields, rule.FieldReviewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, rule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, rule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rule.FieldTechnologyID:
		return m.TechnologyID()
	case rule.FieldRuleType:
		return m.RuleType()
	case rule.FieldTitle:
		return m.Title()
	case rule.FieldContent:
		return m.Content()
	case rule.FieldExplanation:
		return m.Explanation()
	case rule.FieldImplementationNotes:
		return m.ImplementationNotes()
	case rule.FieldReferences:
		return m.References()
	case rule.FieldSeverity:
		return m.Severity()
	case rule.FieldCategory:
		return m.Category()
	case rule.FieldOrderIndex:
		return m.OrderIndex()
	case rule.FieldIsActive:
		return m.IsActive()
	case rule.FieldCreatedBy:
		return m.CreatedBy()
	case rule.FieldReviewedBy:
		return m.ReviewedBy()
	case rule.FieldReviewedAt:
		return m.ReviewedAt()
	case rule.FieldCreatedAt:
		return m.CreatedAt()
	case rule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rule.FieldTechnologyID:
		return m.OldTechnologyID(ctx)
	case rule.FieldRuleType:
		return m.OldRuleType(ctx)
	case rule.FieldTitle:
		return m.OldTitle(ctx)
	case rule.FieldContent:
		return m.OldContent(ctx)
	case rule.FieldExplanation:
		return m.OldExplanation(ctx)
	case rule.FieldImplementationNotes:
		return m.OldImplementationNotes(ctx)
	case rule.FieldReferences:
		return m.OldReferences(ctx)
	case rule.FieldSeverity:
		return m.OldSeverity(ctx)
	case rule.FieldCategory:
		return m.OldCategory(ctx)
	case rule.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case rule.FieldIsActive:
		return m.OldIsActive(ctx)
	case rule.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case rule.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case rule.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case rule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Rule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rule.FieldTechnologyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechnologyID(v)
		return nil
	case rule.FieldRuleType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleType(v)
		return nil
	case rule.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case rule.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case rule.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case rule.FieldImplementationNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImplementationNotes(v)
		return nil
	case rule.FieldReferences:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferences(v)
		return nil
	case rule.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case rule.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case rule.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case rule.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case rule.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case rule.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case rule.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case rule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Rule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuleMutation) AddedFields() []string {
	var fields []string
	if m.addorder_index != nil {
		fields = append(fields, rule.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rule.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rule.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Rule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rule.FieldExplanation) {
		fields = append(fields, rule.FieldExplanation)
	}
	if m.FieldCleared(rule.FieldImplementationNotes) {
		fields = append(fields, rule.FieldImplementationNotes)
	}
	if m.FieldCleared(rule.FieldReferences) {
		fields = append(fields, rule.FieldReferences)
	}
	if m.FieldCleared(rule.FieldCategory) {
		fields = append(fields, rule.FieldCategory)
	}
	if m.FieldCleared(rule.FieldCreatedBy) {
		fields = append(fields, rule.FieldCreatedBy)
	}
	if m.FieldCleared(rule.FieldReviewedBy) {
		fields = append(fields, rule.FieldReviewedBy)
	}
	if m.FieldCleared(rule.FieldReviewedAt) {
		fields = append(fields, rule.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuleMutation) ClearField(name string) error {
	switch name {
	case rule.FieldExplanation:
		m.ClearExplanation()
		return nil
	case rule.FieldImplementationNotes:
		m.ClearImplementationNotes()
		return nil
	case rule.FieldReferences:
		m.ClearReferences()
		return nil
	case rule.FieldCategory:
		m.ClearCategory()
		return nil
	case rule.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case rule.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case rule.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Rule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuleMutation) ResetField(name string) error {
	switch name {
	case rule.FieldTechnologyID:
		m.ResetTechnologyID()
		return nil
	case rule.FieldRuleType:
		m.ResetRuleType()
		return nil
	case rule.FieldTitle:
		m.ResetTitle()
		return nil
	case rule.FieldContent:
		m.ResetContent()
		return nil
	case rule.FieldExplanation:
		m.ResetExplanation()
		return nil
	case rule.FieldImplementationNotes:
		m.ResetImplementationNotes()
		return nil
	case rule.FieldReferences:
		m.ResetReferences()
		return nil
	case rule.FieldSeverity:
		m.ResetSeverity()
		return nil
	case rule.FieldCategory:
		m.ResetCategory()
		return nil
	case rule.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case rule.FieldIsActive:
		m.ResetIsActive()
		return nil
	case rule.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case rule.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case rule.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case rule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Rule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.technology != nil {
		edges = append(edges, rule.EdgeTechnology)
	}
	if m.images != nil {
		edges = append(edges, rule.EdgeImages)
	}
	if m.validation_items != nil {
		edges = append(edges, rule.EdgeValidationItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rule.EdgeTechnology:
		if id := m.technology; id != nil {
			return []ent.Value{*id}
		}
	case rule.EdgeImages:
		ids := make([]ent.Value, 0, len(m.images))
		for id := range m.images {
			ids = append(ids, id)
		}
		return ids
	case rule.EdgeValidationItems:
		ids := make([]ent.Value, 0, len(m.validation_items))
		for id := range m.validation_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedimages != nil {
		edges = append(edges, rule.EdgeImages)
	}
	if m.removedvalidation_items != nil {
		edges = append(edges, rule.EdgeValidationItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rule.EdgeImages:
		ids := make([]ent.Value, 0, len(m.removedimages))
		for id := range m.removedimages {
			ids = append(ids, id)
		}
		return ids
	case rule.EdgeValidationItems:
		ids := make([]ent.Value, 0, len(m.removedvalidation_items))
		for id := range m.removedvalidation_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtechnology {
		edges = append(edges, rule.EdgeTechnology)
	}
	if m.clearedimages {
		edges = append(edges, rule.EdgeImages)
	}
	if m.clearedvalidation_items {
		edges = append(edges, rule.EdgeValidationItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuleMutation) EdgeCleared(name string) bool {
	switch name {
	case rule.EdgeTechnology:
		return m.clearedtechnology
	case rule.EdgeImages:
		return m.clearedimages
	case rule.EdgeValidationItems:
		return m.clearedvalidation_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuleMutation) ClearEdge(name string) error {
	switch name {
	case rule.EdgeTechnology:
		m.ClearTechnology()
		return nil
	}
	return fmt.Errorf("unknown Rule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuleMutation) ResetEdge(name string) error {
	switch name {
	case rule.EdgeTechnology:
		m.ResetTechnology()
		return nil
	case rule.EdgeImages:
		m.ResetImages()
		return nil
	case rule.EdgeValidationItems:
		m.ResetValidationItems()
		return nil
	}
	return fmt.Errorf("unknown Rule edge %s", name)
}

// RuleImageMutation represents an operation that mutates the RuleImage nodes in the graph.
type RuleImageMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	filename       *string
	image_data     *[]byte
	mime_type      *string
	caption        *string
	description    *string
	order_index    *int
	addorder_index *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	rule           *uuid.UUID
	clearedrule    bool
	done           bool
	oldValue       func(context.Context) (*RuleImage, error)
	predicates     []predicate.RuleImage
}

var _ ent.Mutation = (*RuleImageMutation)(nil)

// ruleimageOption allows management of the mutation configuration using functional options.
type ruleimageOption func(*RuleImageMutation)

// newRuleImageMutation creates new mutation for the RuleImage entity.
func newRuleImageMutation(c config, op Op, opts ...ruleimageOption) *RuleImageMutation {
	m := &RuleImageMutation{
		config:        c,
		op:            op,
		typ:           TypeRuleImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuleImageID sets the ID field of the mutation.
func withRuleImageID(id uuid.UUID) ruleimageOption {
	return func(m *RuleImageMutation) {
		var (
			err   error
			once  sync.Once
			value *RuleImage
		)
		m.oldValue = func(ctx context.Context) (*RuleImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RuleImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRuleImage sets the old RuleImage of the mutation.
func withRuleImage(node *RuleImage) ruleimageOption {
	return func(m *RuleImageMutation) {
		m.oldValue = func(context.Context) (*RuleImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuleImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuleImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RuleImage entities.
func (m *RuleImageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuleImageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuleImageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RuleImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleID sets the "rule_id" field.
func (m *RuleImageMutation) SetRuleID(u uuid.UUID) {
	m.rule = &u
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *RuleImageMutation) RuleID() (r uuid.UUID, exists bool) {
	v := m.rule
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the RuleImage entity.
// If the RuleImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleImageMutation) OldRuleID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *RuleImageMutation) ResetRuleID() {
	m.rule = nil
}

// SetFilename sets the "filename" field.
func (m *RuleImageMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *RuleImageMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the RuleImage entity.
// If the RuleImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleImageMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *RuleImageMutation) ResetFilename() {
	m.filename = nil
}

// SetImageData sets the "image_data" field.
func (m *RuleImageMutation) SetImageData(b []byte) {
	m.image_data = &b
}

// ImageData returns the value of the "image_data" field in the mutation.
func (m *RuleImageMutation) ImageData() (r []byte, exists bool) {
	v := m.image_data
	if v == nil {
		return
	}
	return *v, true
}

// OldImageData returns the old "image_data" field's value of the RuleImage entity.
// If the RuleImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleImageMutation) OldImageData(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageData: %w", err)
	}
	return oldValue.ImageData, nil
}

// ResetImageData resets all changes to the "image_data" field.
func (m *RuleImageMutation) ResetImageData() {
	m.image_data = nil
}

// SetMimeType sets the "mime_type" field.
func (m *RuleImageMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *RuleImageMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the RuleImage entity.
// If the RuleImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleImageMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *RuleImageMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[ruleimage.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *RuleImageMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[ruleimage.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *RuleImageMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, ruleimage.FieldMimeType)
}

// SetCaption sets the "caption" field.
func (m *RuleImageMutation) SetCaption(s string) {
	m.caption = &s
}

// Caption returns the value of the "caption" field in the mutation.
func (m *RuleImageMutation) Caption() (r string, exists bool) {
	v := m.caption
	if v == nil {
		return
	}
	return *v, true
}

// OldCaption returns the old "caption" field's value of the RuleImage entity.
// If the RuleImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleImageMutation) OldCaption(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaption: %w", err)
	}
	return oldValue.Caption, nil
}

// ClearCaption clears the value of the "caption" field.
func (m *RuleImageMutation) ClearCaption() {
	m.caption = nil
	m.clearedFields[ruleimage.FieldCaption] = struct{}{}
}

// CaptionCleared returns if the "caption" field was cleared in this mutation.
func (m *RuleImageMutation) CaptionCleared() bool {
	_, ok := m.clearedFields[ruleimage.FieldCaption]
	return ok
}

// ResetCaption resets all changes to the "caption" field.
func (m *RuleImageMutation) ResetCaption() {
	m.caption = nil
	delete(m.clearedFields, ruleimage.FieldCaption)
}

// SetDescription sets the "description" field.
func (m *RuleImageMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RuleImageMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RuleImage entity.
// If the RuleImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleImageMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RuleImageMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[ruleimage.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RuleImageMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[ruleimage.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RuleImageMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, ruleimage.FieldDescription)
}

// SetOrderIndex sets the "order_index" field.
func (m *RuleImageMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *RuleImageMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the RuleImage entity.
// If the RuleImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleImageMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *RuleImageMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *RuleImageMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *RuleImageMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RuleImageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RuleImageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RuleImage entity.
// If the RuleImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleImageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RuleImageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRule clears the "rule" edge to the Rule entity.
func (m *RuleImageMutation) ClearRule() {
	m.clearedrule = true
	m.clearedFields[ruleimage.FieldRuleID] = struct{}{}
}

// RuleCleared reports if the "rule" edge to the Rule entity was cleared.
func (m *RuleImageMutation) RuleCleared() bool {
	return m.clearedrule
}

// RuleIDs returns the "rule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RuleID instead. It exists only for internal usage by the builders.
func (m *RuleImageMutation) RuleIDs() (ids []uuid.UUID) {
	if id := m.rule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRule resets all changes to the "rule" edge.
func (m *RuleImageMutation) ResetRule() {
	m.rule = nil
	m.clearedrule = false
}

// Where appends a list predicates to the RuleImageMutation builder.
func (m *RuleImageMutation) Where(ps ...predicate.RuleImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuleImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuleImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RuleImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuleImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuleImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RuleImage).
func (m *RuleImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuleImageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.rule != nil {
		fields = append(fields, ruleimage.FieldRuleID)
	}
	if m.filename != nil {
		fields = append(fields, ruleimage.FieldFilename)
	}
	if m.image_data != nil {
		fields = append(fields, ruleimage.FieldImageData)
	}
	if m.mime_type != nil {
		fields = append(fields, ruleimage.FieldMimeType)
	}
	if m.caption != nil {
		fields = append(fields, ruleimage.FieldCaption)
	}
	if m.description != nil {
		fields = append(fields, ruleimage.FieldDescription)
	}
	if m.order_index != nil {
		fields = append(fields, ruleimage.FieldOrderIndex)
	}
	if m.created_at != nil {
		fields = append(fields, ruleimage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuleImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ruleimage.FieldRuleID:
		return m.RuleID()
	case ruleimage.FieldFilename:
		return m.Filename()
	case ruleimage.FieldImageData:
		return m.ImageData()
	case ruleimage.FieldMimeType:
		return m.MimeType()
	case ruleimage.FieldCaption:
		return m.Caption()
	case ruleimage.FieldDescription:
		return m.Description()
	case ruleimage.FieldOrderIndex:
		return m.OrderIndex()
	case ruleimage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuleImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ruleimage.FieldRuleID:
		return m.OldRuleID(ctx)
	case ruleimage.FieldFilename:
		return m.OldFilename(ctx)
	case ruleimage.FieldImageData:
		return m.OldImageData(ctx)
	case ruleimage.FieldMimeType:
		return m.OldMimeType(ctx)
	case ruleimage.FieldCaption:
		return m.OldCaption(ctx)
	case ruleimage.FieldDescription:
		return m.OldDescription(ctx)
	case ruleimage.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case ruleimage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RuleImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ruleimage.FieldRuleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case ruleimage.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case ruleimage.FieldImageData:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageData(v)
		return nil
	case ruleimage.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case ruleimage.FieldCaption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaption(v)
		return nil
	case ruleimage.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ruleimage.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case ruleimage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RuleImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuleImageMutation) AddedFields() []string {
	var fields []string
	if m.addorder_index != nil {
		fields = append(fields, ruleimage.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuleImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ruleimage.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ruleimage.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown RuleImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuleImageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ruleimage.FieldMimeType) {
		fields = append(fields, ruleimage.FieldMimeType)
	}
	if m.FieldCleared(ruleimage.FieldCaption) {
		fields = append(fields, ruleimage.FieldCaption)
	}
	if m.FieldCleared(ruleimage.FieldDescription) {
		fields = append(fields, ruleimage.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuleImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuleImageMutation) ClearField(name string) error {
	switch name {
	case ruleimage.FieldMimeType:
		m.ClearMimeType()
		return nil
	case ruleimage.FieldCaption:
		m.ClearCaption()
		return nil
	case ruleimage.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown RuleImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuleImageMutation) ResetField(name string) error {
	switch name {
	case ruleimage.FieldRuleID:
		m.ResetRuleID()
		return nil
	case ruleimage.FieldFilename:
		m.ResetFilename()
		return nil
	case ruleimage.FieldImageData:
		m.ResetImageData()
		return nil
	case ruleimage.FieldMimeType:
		m.ResetMimeType()
		return nil
	case ruleimage.FieldCaption:
		m.ResetCaption()
		return nil
	case ruleimage.FieldDescription:
		m.ResetDescription()
		return nil
	case ruleimage.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case ruleimage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RuleImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuleImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.rule != nil {
		edges = append(edges, ruleimage.EdgeRule)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuleImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ruleimage.EdgeRule:
		if id := m.rule; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuleImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuleImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuleImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrule {
		edges = append(edges, ruleimage.EdgeRule)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuleImageMutation) EdgeCleared(name string) bool {
	switch name {
	case ruleimage.EdgeRule:
		return m.clearedrule
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuleImageMutation) ClearEdge(name string) error {
	switch name {
	case ruleimage.EdgeRule:
		m.ClearRule()
		return nil
	}
	return fmt.Errorf("unknown RuleImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuleImageMutation) ResetEdge(name string) error {
	switch name {
	case ruleimage.EdgeRule:
		m.ResetRule()
		return nil
	}
	return fmt.Errorf("unknown RuleImage edge %s", name)
}

// TechnologyMutation represents an operation that mutates the Technology nodes in the graph.
type TechnologyMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	description   *string
	node_size     *string
	process_type  *string
	foundry       *string
	active        *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	rules         map[uuid.UUID]struct{}
	removedrules  map[uuid.UUID]struct{}
	clearedrules  bool
	done          bool
	oldValue      func(context.Context) (*Technology, error)
	predicates    []predicate.Technology
}

var _ ent.Mutation = (*TechnologyMutation)(nil)

// technologyOption allows management of the mutation configuration using functional options.
type technologyOption func(*TechnologyMutation)

// newTechnologyMutation creates new mutation for the Technology entity.
func newTechnologyMutation(c config, op Op, opts ...technologyOption) *TechnologyMutation {
	m := &TechnologyMutation{
		config:        c,
		op:            op,
		typ:           TypeTechnology,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTechnologyID sets the ID field of the mutation.
func withTechnologyID(id uuid.UUID) technologyOption {
	return func(m *TechnologyMutation) {
		var (
			err   error
			once  sync.Once
			value *Technology
		)
		m.oldValue = func(ctx context.Context) (*Technology, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Technology.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTechnology sets the old Technology of the mutation.
func withTechnology(node *Technology) technologyOption {
	return func(m *TechnologyMutation) {
		m.oldValue = func(context.Context) (*Technology, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TechnologyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TechnologyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Technology entities.
func (m *TechnologyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TechnologyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TechnologyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Technology.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TechnologyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TechnologyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TechnologyMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TechnologyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TechnologyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TechnologyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[technology.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TechnologyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[technology.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TechnologyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, technology.FieldDescription)
}

// SetNodeSize sets the "node_size" field.
func (m *TechnologyMutation) SetNodeSize(s string) {
	m.node_size = &s
}

// NodeSize returns the value of the "node_size" field in the mutation.
func (m *TechnologyMutation) NodeSize() (r string, exists bool) {
	v := m.node_size
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeSize returns the old "node_size" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldNodeSize(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeSize: %w", err)
	}
	return oldValue.NodeSize, nil
}

// ClearNodeSize clears the value of the "node_size" field.
func (m *TechnologyMutation) ClearNodeSize() {
	m.node_size = nil
	m.clearedFields[technology.FieldNodeSize] = struct{}{}
}

// NodeSizeCleared returns if the "node_size" field was cleared in this mutation.
func (m *TechnologyMutation) NodeSizeCleared() bool {
	_, ok := m.clearedFields[technology.FieldNodeSize]
	return ok
}

// ResetNodeSize resets all changes to the "node_size" field.
func (m *TechnologyMutation) ResetNodeSize() {
	m.node_size = nil
	delete(m.clearedFields, technology.FieldNodeSize)
}

// SetProcessType sets the "process_type" field.
func (m *TechnologyMutation) SetProcessType(s string) {
	m.process_type = &s
}

// ProcessType returns the value of the "process_type" field in the mutation.
func (m *TechnologyMutation) ProcessType() (r string, exists bool) {
	v := m.process_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessType returns the old "process_type" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldProcessType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessType: %w", err)
	}
	return oldValue.ProcessType, nil
}

// ClearProcessType clears the value of the "process_type" field.
func (m *TechnologyMutation) ClearProcessType() {
	m.process_type = nil
	m.clearedFields[technology.FieldProcessType] = struct{}{}
}

// ProcessTypeCleared returns if the "process_type" field was cleared in this mutation.
func (m *TechnologyMutation) ProcessTypeCleared() bool {
	_, ok := m.clearedFields[technology.FieldProcessType]
	return ok
}

// ResetProcessType resets all changes to the "process_type" field.
func (m *TechnologyMutation) ResetProcessType() {
	m.process_type = nil
	delete(m.clearedFields, technology.FieldProcessType)
}

// SetFoundry sets the "foundry" field.
func (m *TechnologyMutation) SetFoundry(s string) {
	m.foundry = &s
}

// Foundry returns the value of the "foundry" field in the mutation.
func (m *TechnologyMutation) Foundry() (r string, exists bool) {
	v := m.foundry
	if v == nil {
		return
	}
	return *v, true
}

// OldFoundry returns the old "foundry" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldFoundry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFoundry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFoundry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFoundry: %w", err)
	}
	return oldValue.Foundry, nil
}

// ClearFoundry clears the value of the "foundry" field.
func (m *TechnologyMutation) ClearFoundry() {
	m.foundry = nil
	m.clearedFields[technology.FieldFoundry] = struct{}{}
}

// FoundryCleared returns if the "foundry" field was cleared in this mutation.
func (m *TechnologyMutation) FoundryCleared() bool {
	_, ok := m.clearedFields[technology.FieldFoundry]
	return ok
}

// ResetFoundry resets all changes to the "foundry" field.
func (m *TechnologyMutation) ResetFoundry() {
	m.foundry = nil
	delete(m.clearedFields, technology.FieldFoundry)
}

// SetActive sets the "active" field.
func (m *TechnologyMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *TechnologyMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *TechnologyMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TechnologyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TechnologyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TechnologyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TechnologyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TechnologyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TechnologyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRuleIDs adds the "rules" edge to the Rule entity by ids.
func (m *TechnologyMutation) AddRuleIDs(ids ...uuid.UUID) {
	if m.rules == nil {
		m.rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rules[ids[i]] = struct{}{}
	}
}

// ClearRules clears the "rules" edge to the Rule entity.
func (m *TechnologyMutation) ClearRules() {
	m.clearedrules = true
}

// RulesCleared reports if the "rules" edge to the Rule entity was cleared.
func (m *TechnologyMutation) RulesCleared() bool {
	return m.clearedrules
}

// RemoveRuleIDs removes the "rules" edge to the Rule entity by IDs.
func (m *TechnologyMutation) RemoveRuleIDs(ids ...uuid.UUID) {
	if m.removedrules == nil {
		m.removedrules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rules, ids[i])
		m.removedrules[ids[i]] = struct{}{}
	}
}

// RemovedRules returns the removed IDs of the "rules" edge to the Rule entity.
func (m *TechnologyMutation) RemovedRulesIDs() (ids []uuid.UUID) {
	for id := range m.removedrules {
		ids = append(ids, id)
	}
	return
}

// RulesIDs returns the "rules" edge IDs in the mutation.
func (m *TechnologyMutation) RulesIDs() (ids []uuid.UUID) {
	for id := range m.rules {
		ids = append(ids, id)
	}
	return
}

// ResetRules resets all changes to the "rules" edge.
func (m *TechnologyMutation) ResetRules() {
	m.rules = nil
	m.clearedrules = false
	m.removedrules = nil
}

// Where appends a list predicates to the TechnologyMutation builder.
func (m *TechnologyMutation) Where(ps ...predicate.Technology) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TechnologyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TechnologyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Technology, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TechnologyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TechnologyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Technology).
func (m *TechnologyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TechnologyMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, technology.FieldName)
	}
	if m.description != nil {
		fields = append(fields, technology.FieldDescription)
	}
	if m.node_size != nil {
		fields = append(fields, technology.FieldNodeSize)
	}
	if m.process_type != nil {
		fields = append(fields, technology.FieldProcessType)
	}
	if m.foundry != nil {
		fields = append(fields, technology.FieldFoundry)
	}
	if m.active != nil {
		fields = append(fields, technology.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, technology.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, technology.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TechnologyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case technology.FieldName:
		return m.Name()
	case technology.FieldDescription:
		return m.Description()
	case technology.FieldNodeSize:
		return m.NodeSize()
	case technology.FieldProcessType:
		return m.ProcessType()
	case technology.FieldFoundry:
		return m.Foundry()
	case technology.FieldActive:
		return m.Active()
	case technology.FieldCreatedAt:
		return m.CreatedAt()
	case technology.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TechnologyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case technology.FieldName:
		return m.OldName(ctx)
	case technology.FieldDescription:
		return m.OldDescription(ctx)
	case technology.FieldNodeSize:
		return m.OldNodeSize(ctx)
	case technology.FieldProcessType:
		return m.OldProcessType(ctx)
	case technology.FieldFoundry:
		return m.OldFoundry(ctx)
	case technology.FieldActive:
		return m.OldActive(ctx)
	case technology.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case technology.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Technology field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechnologyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case technology.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case technology.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case technology.FieldNodeSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeSize(v)
		return nil
	case technology.FieldProcessType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessType(v)
		return nil
	case technology.FieldFoundry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFoundry(v)
		return nil
	case technology.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case technology.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case technology.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Technology field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TechnologyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TechnologyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechnologyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Technology numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TechnologyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(technology.FieldDescription) {
		fields = append(fields, technology.FieldDescription)
	}
	if m.FieldCleared(technology.FieldNodeSize) {
		fields = append(fields, technology.FieldNodeSize)
	}
	if m.FieldCleared(technology.FieldProcessType) {
		fields = append(fields, technology.FieldProcessType)
	}
	if m.FieldCleared(technology.FieldFoundry) {
		fields = append(fields, technology.FieldFoundry)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TechnologyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TechnologyMutation) ClearField(name string) error {
	switch name {
	case technology.FieldDescription:
		m.ClearDescription()
		return nil
	case technology.FieldNodeSize:
		m.ClearNodeSize()
		return nil
	case technology.FieldProcessType:
		m.ClearProcessType()
		return nil
	case technology.FieldFoundry:
		m.ClearFoundry()
		return nil
	}
	return fmt.Errorf("unknown Technology nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TechnologyMutation) ResetField(name string) error {
	switch name {
	case technology.FieldName:
		m.ResetName()
		return nil
	case technology.FieldDescription:
		m.ResetDescription()
		return nil
	case technology.FieldNodeSize:
		m.ResetNodeSize()
		return nil
	case technology.FieldProcessType:
		m.ResetProcessType()
		return nil
	case technology.FieldFoundry:
		m.ResetFoundry()
		return nil
	case technology.FieldActive:
		m.ResetActive()
		return nil
	case technology.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case technology.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Technology field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TechnologyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.rules != nil {
		edges = append(edges, technology.EdgeRules)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TechnologyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case technology.EdgeRules:
		ids := make([]ent.Value, 0, len(m.rules))
		for id := range m.rules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TechnologyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrules != nil {
		edges = append(edges, technology.EdgeRules)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TechnologyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case technology.EdgeRules:
		ids := make([]ent.Value, 0, len(m.removedrules))
		for id := range m.removedrules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TechnologyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrules {
		edges = append(edges, technology.EdgeRules)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TechnologyMutation) EdgeCleared(name string) bool {
	switch name {
	case technology.EdgeRules:
		return m.clearedrules
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TechnologyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Technology unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TechnologyMutation) ResetEdge(name string) error {
	switch name {
	case technology.EdgeRules:
		m.ResetRules()
		return nil
	}
	return fmt.Errorf("unknown Technology edge %s", name)
}

// ValidationItemMutation represents an operation that mutates the ValidationItem nodes in the graph.
type ValidationItemMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	extracted_content       *json.RawMessage
	appendextracted_content json.RawMessage
	status                  *string
	validator_notes         *string
	validated_by            *string
	created_at              *time.Time
	validated_at            *time.Time
	clearedFields           map[string]struct{}
	document                *uuid.UUID
	cleareddocument         bool
	rule                    *uuid.UUID
	clearedrule             bool
	done                    bool
	oldValue                func(context.Context) (*ValidationItem, error)
	predicates              []predicate.ValidationItem
}

var _ ent.Mutation = (*ValidationItemMutation)(nil)

// validationitemOption allows management of the mutation configuration using functional options.
type validationitemOption func(*ValidationItemMutation)

// newValidationItemMutation creates new mutation for the ValidationItem entity.
func newValidationItemMutation(c config, op Op, opts ...validationitemOption) *ValidationItemMutation {
	m := &ValidationItemMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationItemID sets the ID field of the mutation.
func withValidationItemID(id uuid.UUID) validationitemOption {
	return func(m *ValidationItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationItem
		)
		m.oldValue = func(ctx context.Context) (*ValidationItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationItem sets the old ValidationItem of the mutation.
func withValidationItem(node *ValidationItem) validationitemOption {
	return func(m *ValidationItemMutation) {
		m.oldValue = func(context.Context) (*ValidationItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationItem entities.
func (m *ValidationItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ValidationItemMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ValidationItemMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *ValidationItemMutation) ClearDocumentID() {
	m.document = nil
	m.clearedFields[validationitem.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *ValidationItemMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ValidationItemMutation) ResetDocumentID() {
	m.document = nil
	delete(m.clearedFields, validationitem.FieldDocumentID)
}

// SetRuleID sets the "rule_id" field.
func (m *ValidationItemMutation) SetRuleID(u uuid.UUID) {
	m.rule = &u
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *ValidationItemMutation) RuleID() (r uuid.UUID, exists bool) {
	v := m.rule
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldRuleID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ClearRuleID clears the value of the "rule_id" field.
func (m *ValidationItemMutation) ClearRuleID() {
	m.rule = nil
	m.clearedFields[validationitem.FieldRuleID] = struct{}{}
}

// RuleIDCleared returns if the "rule_id" field was cleared in this mutation.
func (m *ValidationItemMutation) RuleIDCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldRuleID]
	return ok
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *ValidationItemMutation) ResetRuleID() {
	m.rule = nil
	delete(m.clearedFields, validationitem.FieldRuleID)
}

// SetExtractedContent sets the "extracted_content" field.
func (m *ValidationItemMutation) SetExtractedContent(jm json.RawMessage) {
	m.extracted_content = &jm
	m.appendextracted_content = nil
}

// ExtractedContent returns the value of the "extracted_content" field in the mutation.
func (m *ValidationItemMutation) ExtractedContent() (r json.RawMessage, exists bool) {
	v := m.extracted_content
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedContent returns the old "extracted_content" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldExtractedContent(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedContent: %w", err)
	}
	return oldValue.ExtractedContent, nil
}

// AppendExtractedContent adds jm to the "extracted_content" field.
func (m *ValidationItemMutation) AppendExtractedContent(jm json.RawMessage) {
	m.appendextracted_content = append(m.appendextracted_content, jm...)
}

// AppendedExtractedContent returns the list of values that were appended to the "extracted_content" field in this mutation.
func (m *ValidationItemMutation) AppendedExtractedContent() (json.RawMessage, bool) {
	if len(m.appendextracted_content) == 0 {
		return nil, false
	}
	return m.appendextracted_content, true
}

// ResetExtractedContent resets all changes to the "extracted_content" field.
func (m *ValidationItemMutation) ResetExtractedContent() {
	m.extracted_content = nil
	m.appendextracted_content = nil
}

// SetStatus sets the "status" field.
func (m *ValidationItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ValidationItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ValidationItemMutation) ResetStatus() {
	m.status = nil
}

// SetValidatorNotes sets the "validator_notes" field.
func (m *ValidationItemMutation) SetValidatorNotes(s string) {
	m.validator_notes = &s
}

// ValidatorNotes returns the value of the "validator_notes" field in the mutation.
func (m *ValidationItemMutation) ValidatorNotes() (r string, exists bool) {
	v := m.validator_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatorNotes returns the old "validator_notes" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldValidatorNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatorNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatorNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatorNotes: %w", err)
	}
	return oldValue.ValidatorNotes, nil
}

// ClearValidatorNotes clears the value of the "validator_notes" field.
func (m *ValidationItemMutation) ClearValidatorNotes() {
	m.validator_notes = nil
	m.clearedFields[validationitem.FieldValidatorNotes] = struct{}{}
}

// ValidatorNotesCleared returns if the "validator_notes" field was cleared in this mutation.
func (m *ValidationItemMutation) ValidatorNotesCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldValidatorNotes]
	return ok
}

// ResetValidatorNotes resets all changes to the "validator_notes" field.
func (m *ValidationItemMutation) ResetValidatorNotes() {
	m.validator_notes = nil
	delete(m.clearedFields, validationitem.FieldValidatorNotes)
}

// SetValidatedBy sets the "validated_by" field.
func (m *ValidationItemMutation) SetValidatedBy(s string) {
	m.validated_by = &s
}

// ValidatedBy returns the value of the "validated_by" field in the mutation.
func (m *ValidationItemMutation) ValidatedBy() (r string, exists bool) {
	v := m.validated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedBy returns the old "validated_by" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldValidatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedBy: %w", err)
	}
	return oldValue.ValidatedBy, nil
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (m *ValidationItemMutation) ClearValidatedBy() {
	m.validated_by = nil
	m.clearedFields[validationitem.FieldValidatedBy] = struct{}{}
}

// ValidatedByCleared returns if the "validated_by" field was cleared in this mutation.
func (m *ValidationItemMutation) ValidatedByCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldValidatedBy]
	return ok
}

// ResetValidatedBy resets all changes to the "validated_by" field.
func (m *ValidationItemMutation) ResetValidatedBy() {
	m.validated_by = nil
	delete(m.clearedFields, validationitem.FieldValidatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ValidationItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetValidatedAt sets the "validated_at" field.
func (m *ValidationItemMutation) SetValidatedAt(t time.Time) {
	m.validated_at = &t
}

// ValidatedAt returns the value of the "validated_at" field in the mutation.
func (m *ValidationItemMutation) ValidatedAt() (r time.Time, exists bool) {
	v := m.validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedAt returns the old "validated_at" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedAt: %w", err)
	}
	return oldValue.ValidatedAt, nil
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (m *ValidationItemMutation) ClearValidatedAt() {
	m.validated_at = nil
	m.clearedFields[validationitem.FieldValidatedAt] = struct{}{}
}

// ValidatedAtCleared returns if the "validated_at" field was cleared in this mutation.
func (m *ValidationItemMutation) ValidatedAtCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldValidatedAt]
	return ok
}

// ResetValidatedAt resets all changes to the "validated_at" field.
func (m *ValidationItemMutation) ResetValidatedAt() {
	m.validated_at = nil
	delete(m.clearedFields, validationitem.FieldValidatedAt)
}

// ClearDocument clears the "document" edge to the ImportedDocument entity.
func (m *ValidationItemMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[validationitem.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the ImportedDocument entity was cleared.
func (m *ValidationItemMutation) DocumentCleared() bool {
	return m.DocumentIDCleared() || m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ValidationItemMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ValidationItemMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearRule clears the "rule" edge to the Rule entity.
func (m *ValidationItemMutation) ClearRule() {
	m.clearedrule = true
	m.clearedFields[validationitem.FieldRuleID] = struct{}{}
}

// RuleCleared reports if the "rule" edge to the Rule entity was cleared.
func (m *ValidationItemMutation) RuleCleared() bool {
	return m.RuleIDCleared() || m.clearedrule
}

// RuleIDs returns the "rule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RuleID instead. It exists only for internal usage by the builders.
func (m *ValidationItemMutation) RuleIDs() (ids []uuid.UUID) {
	if id := m.rule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRule resets all changes to the "rule" edge.
func (m *ValidationItemMutation) ResetRule() {
	m.rule = nil
	m.clearedrule = false
}

// Where appends a list predicates to the ValidationItemMutation builder.
func (m *ValidationItemMutation) Where(ps ...predicate.ValidationItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationItem).
func (m *ValidationItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationItemMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, validationitem.FieldDocumentID)
	}
	if m.rule != nil {
		fields = append(fields, validationitem.FieldRuleID)
	}
	if m.extracted_content != nil {
		fields = append(fields, validationitem.FieldExtractedContent)
	}
	if m.status != nil {
		fields = append(fields, validationitem.FieldStatus)
	}
	if m.validator_notes != nil {
		fields = append(fields, validationitem.FieldValidatorNotes)
	}
	if m.validated_by != nil {
		fields = append(fields, validationitem.FieldValidatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, validationitem.FieldCreatedAt)
	}
	if m.validated_at != nil {
		fields = append(fields, validationitem.FieldValidatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationitem.FieldDocumentID:
		return m.DocumentID()
	case validationitem.FieldRuleID:
		return m.RuleID()
	case validationitem.FieldExtractedContent:
		return m.ExtractedContent()
	case validationitem.FieldStatus:
		return m.Status()
	case validationitem.FieldValidatorNotes:
		return m.ValidatorNotes()
	case validationitem.FieldValidatedBy:
		return m.ValidatedBy()
	case validationitem.FieldCreatedAt:
		return m.CreatedAt()
	case validationitem.FieldValidatedAt:
		return m.ValidatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationitem.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case validationitem.FieldRuleID:
		return m.OldRuleID(ctx)
	case validationitem.FieldExtractedContent:
		return m.OldExtractedContent(ctx)
	case validationitem.FieldStatus:
		return m.OldStatus(ctx)
	case validationitem.FieldValidatorNotes:
		return m.OldValidatorNotes(ctx)
	case validationitem.FieldValidatedBy:
		return m.OldValidatedBy(ctx)
	case validationitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case validationitem.FieldValidatedAt:
		return m.OldValidatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationitem.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case validationitem.FieldRuleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case validationitem.FieldExtractedContent:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedContent(v)
		return nil
	case validationitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case validationitem.FieldValidatorNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatorNotes(v)
		return nil
	case validationitem.FieldValidatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedBy(v)
		return nil
	case validationitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case validationitem.FieldValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ValidationItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(validationitem.FieldDocumentID) {
		fields = append(fields, validationitem.FieldDocumentID)
	}
	if m.FieldCleared(validationitem.FieldRuleID) {
		fields = append(fields, validationitem.FieldRuleID)
	}
	if m.FieldCleared(validationitem.FieldValidatorNotes) {
		fields = append(fields, validationitem.FieldValidatorNotes)
	}
	if m.FieldCleared(validationitem.FieldValidatedBy) {
		fields = append(fields, validationitem.FieldValidatedBy)
	}
	if m.FieldCleared(validationitem.FieldValidatedAt) {
		fields = append(fields, validationitem.FieldValidatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationItemMutation) ClearField(name string) error {
	switch name {
	case validationitem.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	case validationitem.FieldRuleID:
		m.ClearRuleID()
		return nil
	case validationitem.FieldValidatorNotes:
		m.ClearValidatorNotes()
		return nil
	case validationitem.FieldValidatedBy:
		m.ClearValidatedBy()
		return nil
	case validationitem.FieldValidatedAt:
		m.ClearValidatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationItemMutation) ResetField(name string) error {
	switch name {
	case validationitem.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case validationitem.FieldRuleID:
		m.ResetRuleID()
		return nil
	case validationitem.FieldExtractedContent:
		m.ResetExtractedContent()
		return nil
	case validationitem.FieldStatus:
		m.ResetStatus()
		return nil
	case validationitem.FieldValidatorNotes:
		m.ResetValidatorNotes()
		return nil
	case validationitem.FieldValidatedBy:
		m.ResetValidatedBy()
		return nil
	case validationitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case validationitem.FieldValidatedAt:
		m.ResetValidatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, validationitem.EdgeDocument)
	}
	if m.rule != nil {
		edges = append(edges, validationitem.EdgeRule)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationitem.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case validationitem.EdgeRule:
		if id := m.rule; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, validationitem.EdgeDocument)
	}
	if m.clearedrule {
		edges = append(edges, validationitem.EdgeRule)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationItemMutation) EdgeCleared(name string) bool {
	switch name {
	case validationitem.EdgeDocument:
		return m.cleareddocument
	case validationitem.EdgeRule:
		return m.clearedrule
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationItemMutation) ClearEdge(name string) error {
	switch name {
	case validationitem.EdgeDocument:
		m.ClearDocument()
		return nil
	case validationitem.EdgeRule:
		m.ClearRule()
		return nil
	}
	return fmt.Errorf("unknown ValidationItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationItemMutation) ResetEdge(name string) error {
	switch name {
	case validationitem.EdgeDocument:
		m.ResetDocument()
		return nil
	case validationitem.EdgeRule:
		m.ResetRule()
		return nil
	}
	return fmt.Errorf("unknown ValidationItem edge %s", name)
}
