// Code generated by ent, DO NOT EDIT.

package importeddocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldFilename, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldFormat, v))
}

// FileData applies equality check predicate on the "file_data" field. It's identical to FileDataEQ.
func FileData(v []byte) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldFileData, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldStatus, v))
}

// ProcessingNotes applies equality check predicate on the "processing_notes" field. It's identical to ProcessingNotesEQ.
func ProcessingNotes(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldProcessingNotes, v))
}

// UploadedBy applies equality check predicate on the "uploaded_by" field. It's identical to UploadedByEQ.
func UploadedBy(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldUploadedBy, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldProcessedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContainsFold(FieldFilename, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContainsFold(FieldFormat, v))
}

// FileDataEQ applies the EQ predicate on the "file_data" field.
func FileDataEQ(v []byte) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldFileData, v))
}

// FileDataNEQ applies the NEQ predicate on the "file_data" field.
func FileDataNEQ(v []byte) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNEQ(FieldFileData, v))
}

// FileDataIn applies the In predicate on the "file_data" field.
func FileDataIn(vs ...[]byte) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIn(FieldFileData, vs...))
}

// FileDataNotIn applies the NotIn predicate on the "file_data" field.
func FileDataNotIn(vs ...[]byte) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotIn(FieldFileData, vs...))
}

// FileDataGT applies the GT predicate on the "file_data" field.
func FileDataGT(v []byte) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGT(FieldFileData, v))
}

// FileDataGTE applies the GTE predicate on the "file_data" field.
func FileDataGTE(v []byte) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGTE(FieldFileData, v))
}

// FileDataLT applies the LT predicate on the "file_data" field.
func FileDataLT(v []byte) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLT(FieldFileData, v))
}

// FileDataLTE applies the LTE predicate on the "file_data" field.
func FileDataLTE(v []byte) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLTE(FieldFileData, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContainsFold(FieldStatus, v))
}

// ProcessingNotesEQ applies the EQ predicate on the "processing_notes" field.
func ProcessingNotesEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldProcessingNotes, v))
}

// ProcessingNotesNEQ applies the NEQ predicate on the "processing_notes" field.
func ProcessingNotesNEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNEQ(FieldProcessingNotes, v))
}

// ProcessingNotesIn applies the In predicate on the "processing_notes" field.
func ProcessingNotesIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIn(FieldProcessingNotes, vs...))
}

// ProcessingNotesNotIn applies the NotIn predicate on the "processing_notes" field.
func ProcessingNotesNotIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotIn(FieldProcessingNotes, vs...))
}

// ProcessingNotesGT applies the GT predicate on the "processing_notes" field.
func ProcessingNotesGT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGT(FieldProcessingNotes, v))
}

// ProcessingNotesGTE applies the GTE predicate on the "processing_notes" field.
func ProcessingNotesGTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGTE(FieldProcessingNotes, v))
}

// ProcessingNotesLT applies the LT predicate on the "processing_notes" field.
func ProcessingNotesLT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLT(FieldProcessingNotes, v))
}

// ProcessingNotesLTE applies the LTE predicate on the "processing_notes" field.
func ProcessingNotesLTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLTE(FieldProcessingNotes, v))
}

// ProcessingNotesContains applies the Contains predicate on the "processing_notes" field.
func ProcessingNotesContains(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContains(FieldProcessingNotes, v))
}

// ProcessingNotesHasPrefix applies the HasPrefix predicate on the "processing_notes" field.
func ProcessingNotesHasPrefix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasPrefix(FieldProcessingNotes, v))
}

// ProcessingNotesHasSuffix applies the HasSuffix predicate on the "processing_notes" field.
func ProcessingNotesHasSuffix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasSuffix(FieldProcessingNotes, v))
}

// ProcessingNotesIsNil applies the IsNil predicate on the "processing_notes" field.
func ProcessingNotesIsNil() predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIsNull(FieldProcessingNotes))
}

// ProcessingNotesNotNil applies the NotNil predicate on the "processing_notes" field.
func ProcessingNotesNotNil() predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotNull(FieldProcessingNotes))
}

// ProcessingNotesEqualFold applies the EqualFold predicate on the "processing_notes" field.
func ProcessingNotesEqualFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEqualFold(FieldProcessingNotes, v))
}

// ProcessingNotesContainsFold applies the ContainsFold predicate on the "processing_notes" field.
func ProcessingNotesContainsFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContainsFold(FieldProcessingNotes, v))
}

// UploadedByEQ applies the EQ predicate on the "uploaded_by" field.
func UploadedByEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldUploadedBy, v))
}

// UploadedByNEQ applies the NEQ predicate on the "uploaded_by" field.
func UploadedByNEQ(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNEQ(FieldUploadedBy, v))
}

// UploadedByIn applies the In predicate on the "uploaded_by" field.
func UploadedByIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIn(FieldUploadedBy, vs...))
}

// UploadedByNotIn applies the NotIn predicate on the "uploaded_by" field.
func UploadedByNotIn(vs ...string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotIn(FieldUploadedBy, vs...))
}

// UploadedByGT applies the GT predicate on the "uploaded_by" field.
func UploadedByGT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGT(FieldUploadedBy, v))
}

// UploadedByGTE applies the GTE predicate on the "uploaded_by" field.
func UploadedByGTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGTE(FieldUploadedBy, v))
}

// UploadedByLT applies the LT predicate on the "uploaded_by" field.
func UploadedByLT(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLT(FieldUploadedBy, v))
}

// UploadedByLTE applies the LTE predicate on the "uploaded_by" field.
func UploadedByLTE(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLTE(FieldUploadedBy, v))
}

// UploadedByContains applies the Contains predicate on the "uploaded_by" field.
func UploadedByContains(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContains(FieldUploadedBy, v))
}

// UploadedByHasPrefix applies the HasPrefix predicate on the "uploaded_by" field.
func UploadedByHasPrefix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasPrefix(FieldUploadedBy, v))
}

// UploadedByHasSuffix applies the HasSuffix predicate on the "uploaded_by" field.
func UploadedByHasSuffix(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldHasSuffix(FieldUploadedBy, v))
}

// UploadedByIsNil applies the IsNil predicate on the "uploaded_by" field.
func UploadedByIsNil() predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIsNull(FieldUploadedBy))
}

// UploadedByNotNil applies the NotNil predicate on the "uploaded_by" field.
func UploadedByNotNil() predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotNull(FieldUploadedBy))
}

// UploadedByEqualFold applies the EqualFold predicate on the "uploaded_by" field.
func UploadedByEqualFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEqualFold(FieldUploadedBy, v))
}

// UploadedByContainsFold applies the ContainsFold predicate on the "uploaded_by" field.
func UploadedByContainsFold(v string) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldContainsFold(FieldUploadedBy, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLTE(FieldUploadedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.FieldNotNull(FieldProcessedAt))
}

// HasValidationItems applies the HasEdge predicate on the "validation_items" edge.
func HasValidationItems() predicate.ImportedDocument {
	return predicate.ImportedDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValidationItemsTable, ValidationItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValidationItemsWith applies the HasEdge predicate on the "validation_items" edge with a given conditions (other predicates).
func HasValidationItemsWith(preds ...predicate.ValidationItem) predicate.ImportedDocument {
	return predicate.ImportedDocument(func(s *sql.Selector) {
		step := newValidationItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportedDocument) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportedDocument) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportedDocument) predicate.ImportedDocument {
	return predicate.ImportedDocument(sql.NotPredicates(p))
}
