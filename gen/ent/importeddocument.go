// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/google/uuid"
)

// ImportedDocument is the model entity for the ImportedDocument schema.
type ImportedDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// FileData holds the value of the "file_data" field.
	FileData []byte `json:"file_data,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ProcessingNotes holds the value of the "processing_notes" field.
	ProcessingNotes *string `json:"processing_notes,omitempty"`
	// UploadedBy holds the value of the "uploaded_by" field.
	UploadedBy *string `json:"uploaded_by,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ImportedDocumentQuery when eager-loading is set.
	Edges        ImportedDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ImportedDocumentEdges holds the relations/edges for other nodes in the graph.
type ImportedDocumentEdges struct {
	// ValidationItems holds the value of the validation_items edge.
	ValidationItems []*ValidationItem `json:"validation_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ValidationItemsOrErr returns the ValidationItems value or an error if the edge
// was not loaded in eager-loading.
func (e ImportedDocumentEdges) ValidationItemsOrErr() ([]*ValidationItem, error) {
	if e.loadedTypes[0] {
		return e.ValidationItems, nil
	}
	return nil, &NotLoadedError{edge: "validation_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportedDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importeddocument.FieldFileData:
			values[i] = new([]byte)
		case importeddocument.FieldFilename, importeddocument.FieldFormat, importeddocument.FieldStatus, importeddocument.FieldProcessingNotes, importeddocument.FieldUploadedBy:
			values[i] = new(sql.NullString)
		case importeddocument.FieldUploadedAt, importeddocument.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case importeddocument.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportedDocument fields.
func (_m *ImportedDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importeddocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case importeddocument.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case importeddocument.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case importeddocument.FieldFileData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field file_data", values[i])
			} else if value != nil {
				_m.FileData = *value
			}
		case importeddocument.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case importeddocument.FieldProcessingNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_notes", values[i])
			} else if value.Valid {
				_m.ProcessingNotes = new(string)
				*_m.ProcessingNotes = value.String
			}
		case importeddocument.FieldUploadedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_by", values[i])
			} else if value.Valid {
				_m.UploadedBy = new(string)
				*_m.UploadedBy = value.String
			}
		case importeddocument.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case importeddocument.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportedDocument.
// This includes values selected through modifiers, order, etc.
func (_m *ImportedDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryValidationItems queries the "validation_items" edge of the ImportedDocument entity.
func (_m *ImportedDocument) QueryValidationItems() *ValidationItemQuery {
	return NewImportedDocumentClient(_m.config).QueryValidationItems(_m)
}

// Update returns a builder for updating this ImportedDocument.
// Note that you need to call ImportedDocument.Unwrap() before calling this method if this ImportedDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportedDocument) Update() *ImportedDocumentUpdateOne {
	return NewImportedDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportedDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportedDocument) Unwrap() *ImportedDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportedDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportedDocument) String() string {
	var builder strings.Builder
	builder.WriteString("ImportedDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("file_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileData))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ProcessingNotes; v != nil {
		builder.WriteString("processing_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UploadedBy; v != nil {
		builder.WriteString("uploaded_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ImportedDocuments is a parsable slice of ImportedDocument.
type ImportedDocuments []*ImportedDocument
