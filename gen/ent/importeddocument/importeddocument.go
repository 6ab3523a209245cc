// Code generated by ent, DO NOT EDIT.

package importeddocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the importeddocument type in the database.
	Label = "imported_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldFileData holds the string denoting the file_data field in the database.
	FieldFileData = "file_data"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProcessingNotes holds the string denoting the processing_notes field in the database.
	FieldProcessingNotes = "processing_notes"
	// FieldUploadedBy holds the string denoting the uploaded_by field in the database.
	FieldUploadedBy = "uploaded_by"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeValidationItems holds the string denoting the validation_items edge name in mutations.
	EdgeValidationItems = "validation_items"
	// Table holds the table name of the importeddocument in the database.
	Table = "imported_documents"
	// ValidationItemsTable is the table that holds the validation_items relation/edge.
	ValidationItemsTable = "validation_queue"
	// ValidationItemsInverseTable is the table name for the ValidationItem entity.
	// It exists in this package in order to avoid circular dependency with the "validationitem" package.
	ValidationItemsInverseTable = "validation_queue"
	// ValidationItemsColumn is the table column denoting the validation_items relation/edge.
	ValidationItemsColumn = "document_id"
)

// Columns holds all SQL columns for importeddocument fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldFormat,
	FieldFileData,
	FieldStatus,
	FieldProcessingNotes,
	FieldUploadedBy,
	FieldUploadedAt,
	FieldProcessedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ImportedDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProcessingNotes orders the results by the processing_notes field.
func ByProcessingNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingNotes, opts...).ToFunc()
}

// ByUploadedBy orders the results by the uploaded_by field.
func ByUploadedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedBy, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByValidationItemsCount orders the results by validation_items count.
func ByValidationItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newValidationItemsStep(), opts...)
	}
}

// ByValidationItems orders the results by validation_items terms.
func ByValidationItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newValidationItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newValidationItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ValidationItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ValidationItemsTable, ValidationItemsColumn),
	)
}
