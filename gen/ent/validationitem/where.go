// Code generated by ent, DO NOT EDIT.

package validationitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldDocumentID, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldRuleID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldStatus, v))
}

// ValidatorNotes applies equality check predicate on the "validator_notes" field. It's identical to ValidatorNotesEQ.
func ValidatorNotes(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldValidatorNotes, v))
}

// ValidatedBy applies equality check predicate on the "validated_by" field. It's identical to ValidatedByEQ.
func ValidatedBy(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldValidatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldCreatedAt, v))
}

// ValidatedAt applies equality check predicate on the "validated_at" field. It's identical to ValidatedAtEQ.
func ValidatedAt(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldValidatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDIsNil applies the IsNil predicate on the "document_id" field.
func DocumentIDIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldDocumentID))
}

// DocumentIDNotNil applies the NotNil predicate on the "document_id" field.
func DocumentIDNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldDocumentID))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDIsNil applies the IsNil predicate on the "rule_id" field.
func RuleIDIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldRuleID))
}

// RuleIDNotNil applies the NotNil predicate on the "rule_id" field.
func RuleIDNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldRuleID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContainsFold(FieldStatus, v))
}

// ValidatorNotesEQ applies the EQ predicate on the "validator_notes" field.
func ValidatorNotesEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldValidatorNotes, v))
}

// ValidatorNotesNEQ applies the NEQ predicate on the "validator_notes" field.
func ValidatorNotesNEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldValidatorNotes, v))
}

// ValidatorNotesIn applies the In predicate on the "validator_notes" field.
func ValidatorNotesIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldValidatorNotes, vs...))
}

// ValidatorNotesNotIn applies the NotIn predicate on the "validator_notes" field.
func ValidatorNotesNotIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldValidatorNotes, vs...))
}

// ValidatorNotesGT applies the GT predicate on the "validator_notes" field.
func ValidatorNotesGT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldValidatorNotes, v))
}

// ValidatorNotesGTE applies the GTE predicate on the "validator_notes" field.
func ValidatorNotesGTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldValidatorNotes, v))
}

// ValidatorNotesLT applies the LT predicate on the "validator_notes" field.
func ValidatorNotesLT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldValidatorNotes, v))
}

// ValidatorNotesLTE applies the LTE predicate on the "validator_notes" field.
func ValidatorNotesLTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldValidatorNotes, v))
}

// ValidatorNotesContains applies the Contains predicate on the "validator_notes" field.
func ValidatorNotesContains(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContains(FieldValidatorNotes, v))
}

// ValidatorNotesHasPrefix applies the HasPrefix predicate on the "validator_notes" field.
func ValidatorNotesHasPrefix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasPrefix(FieldValidatorNotes, v))
}

// ValidatorNotesHasSuffix applies the HasSuffix predicate on the "validator_notes" field.
func ValidatorNotesHasSuffix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasSuffix(FieldValidatorNotes, v))
}

// ValidatorNotesIsNil applies the IsNil predicate on the "validator_notes" field.
func ValidatorNotesIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldValidatorNotes))
}

// ValidatorNotesNotNil applies the NotNil predicate on the "validator_notes" field.
func ValidatorNotesNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldValidatorNotes))
}

// ValidatorNotesEqualFold applies the EqualFold predicate on the "validator_notes" field.
func ValidatorNotesEqualFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEqualFold(FieldValidatorNotes, v))
}

// ValidatorNotesContainsFold applies the ContainsFold predicate on the "validator_notes" field.
func ValidatorNotesContainsFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContainsFold(FieldValidatorNotes, v))
}

// ValidatedByEQ applies the EQ predicate on the "validated_by" field.
func ValidatedByEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldValidatedBy, v))
}

// ValidatedByNEQ applies the NEQ predicate on the "validated_by" field.
func ValidatedByNEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldValidatedBy, v))
}

// ValidatedByIn applies the In predicate on the "validated_by" field.
func ValidatedByIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldValidatedBy, vs...))
}

// ValidatedByNotIn applies the NotIn predicate on the "validated_by" field.
func ValidatedByNotIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldValidatedBy, vs...))
}

// ValidatedByGT applies the GT predicate on the "validated_by" field.
func ValidatedByGT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldValidatedBy, v))
}

// ValidatedByGTE applies the GTE predicate on the "validated_by" field.
func ValidatedByGTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldValidatedBy, v))
}

// ValidatedByLT applies the LT predicate on the "validated_by" field.
func ValidatedByLT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldValidatedBy, v))
}

// ValidatedByLTE applies the LTE predicate on the "validated_by" field.
func ValidatedByLTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldValidatedBy, v))
}

// ValidatedByContains applies the Contains predicate on the "validated_by" field.
func ValidatedByContains(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContains(FieldValidatedBy, v))
}

// ValidatedByHasPrefix applies the HasPrefix predicate on the "validated_by" field.
func ValidatedByHasPrefix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasPrefix(FieldValidatedBy, v))
}

// ValidatedByHasSuffix applies the HasSuffix predicate on the "validated_by" field.
func ValidatedByHasSuffix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasSuffix(FieldValidatedBy, v))
}

// ValidatedByIsNil applies the IsNil predicate on the "validated_by" field.
func ValidatedByIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldValidatedBy))
}

// ValidatedByNotNil applies the NotNil predicate on the "validated_by" field.
func ValidatedByNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldValidatedBy))
}

// ValidatedByEqualFold applies the EqualFold predicate on the "validated_by" field.
func ValidatedByEqualFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEqualFold(FieldValidatedBy, v))
}

// ValidatedByContainsFold applies the ContainsFold predicate on the "validated_by" field.
func ValidatedByContainsFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContainsFold(FieldValidatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldCreatedAt, v))
}

// ValidatedAtEQ applies the EQ predicate on the "validated_at" field.
func ValidatedAtEQ(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedAtNEQ applies the NEQ predicate on the "validated_at" field.
func ValidatedAtNEQ(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldValidatedAt, v))
}

// ValidatedAtIn applies the In predicate on the "validated_at" field.
func ValidatedAtIn(vs ...time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldValidatedAt, vs...))
}

// ValidatedAtNotIn applies the NotIn predicate on the "validated_at" field.
func ValidatedAtNotIn(vs ...time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldValidatedAt, vs...))
}

// ValidatedAtGT applies the GT predicate on the "validated_at" field.
func ValidatedAtGT(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldValidatedAt, v))
}

// ValidatedAtGTE applies the GTE predicate on the "validated_at" field.
func ValidatedAtGTE(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldValidatedAt, v))
}

// ValidatedAtLT applies the LT predicate on the "validated_at" field.
func ValidatedAtLT(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldValidatedAt, v))
}

// ValidatedAtLTE applies the LTE predicate on the "validated_at" field.
func ValidatedAtLTE(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldValidatedAt, v))
}

// ValidatedAtIsNil applies the IsNil predicate on the "validated_at" field.
func ValidatedAtIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldValidatedAt))
}

// ValidatedAtNotNil applies the NotNil predicate on the "validated_at" field.
func ValidatedAtNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldValidatedAt))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ValidationItem {
	return predicate.ValidationItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.ImportedDocument) predicate.ValidationItem {
	return predicate.ValidationItem(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRule applies the HasEdge predicate on the "rule" edge.
func HasRule() predicate.ValidationItem {
	return predicate.ValidationItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RuleTable, RuleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRuleWith applies the HasEdge predicate on the "rule" edge with a given conditions (other predicates).
func HasRuleWith(preds ...predicate.Rule) predicate.ValidationItem {
	return predicate.ValidationItem(func(s *sql.Selector) {
		step := newRuleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationItem) predicate.ValidationItem {
	return predicate.ValidationItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationItem) predicate.ValidationItem {
	return predicate.ValidationItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationItem) predicate.ValidationItem {
	return predicate.ValidationItem(sql.NotPredicates(p))
}
