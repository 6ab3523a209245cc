// Code generated by ent, DO NOT EDIT.

package rule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldID, id))
}

// TechnologyID applies equality check predicate on the "technology_id" field. It's identical to TechnologyIDEQ.
func TechnologyID(v uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldTechnologyID, v))
}

// RuleType applies equality check predicate on the "rule_type" field. It's identical to RuleTypeEQ.
func RuleType(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldRuleType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldContent, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldExplanation, v))
}

// ImplementationNotes applies equality check predicate on the "implementation_notes" field. It's identical to ImplementationNotesEQ.
func ImplementationNotes(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldImplementationNotes, v))
}

// References applies equality check predicate on the "references" field. It's identical to ReferencesEQ.
func References(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldReferences, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldSeverity, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldCategory, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldOrderIndex, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldIsActive, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldCreatedBy, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldUpdatedAt, v))
}

// TechnologyIDEQ applies the EQ predicate on the "technology_id" field.
func TechnologyIDEQ(v uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldTechnologyID, v))
}

// TechnologyIDNEQ applies the NEQ predicate on the "technology_id" field.
func TechnologyIDNEQ(v uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldTechnologyID, v))
}

// TechnologyIDIn applies the In predicate on the "technology_id" field.
func TechnologyIDIn(vs ...uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldTechnologyID, vs...))
}

// TechnologyIDNotIn applies the NotIn predicate on the "technology_id" field.
func TechnologyIDNotIn(vs ...uuid.UUID) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldTechnologyID, vs...))
}

// RuleTypeEQ applies the EQ predicate on the "rule_type" field.
func RuleTypeEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldRuleType, v))
}

// RuleTypeNEQ applies the NEQ predicate on the "rule_type" field.
func RuleTypeNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldRuleType, v))
}

// RuleTypeIn applies the In predicate on the "rule_type" field.
func RuleTypeIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldRuleType, vs...))
}

// RuleTypeNotIn applies the NotIn predicate on the "rule_type" field.
func RuleTypeNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldRuleType, vs...))
}

// RuleTypeGT applies the GT predicate on the "rule_type" field.
func RuleTypeGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldRuleType, v))
}

// RuleTypeGTE applies the GTE predicate on the "rule_type" field.
func RuleTypeGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldRuleType, v))
}

// RuleTypeLT applies the LT predicate on the "rule_type" field.
func RuleTypeLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldRuleType, v))
}

// RuleTypeLTE applies the LTE predicate on the "rule_type" field.
func RuleTypeLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldRuleType, v))
}

// RuleTypeContains applies the Contains predicate on the "rule_type" field.
func RuleTypeContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldRuleType, v))
}

// RuleTypeHasPrefix applies the HasPrefix predicate on the "rule_type" field.
func RuleTypeHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldRuleType, v))
}

// RuleTypeHasSuffix applies the HasSuffix predicate on the "rule_type" field.
func RuleTypeHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldRuleType, v))
}

// RuleTypeEqualFold applies the EqualFold predicate on the "rule_type" field.
func RuleTypeEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldRuleType, v))
}

// RuleTypeContainsFold applies the ContainsFold predicate on the "rule_type" field.
func RuleTypeContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldRuleType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldContent, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.Rule {
	return predicate.Rule(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.Rule {
	return predicate.Rule(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldExplanation, v))
}

// ImplementationNotesEQ applies the EQ predicate on the "implementation_notes" field.
func ImplementationNotesEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldImplementationNotes, v))
}

// ImplementationNotesNEQ applies the NEQ predicate on the "implementation_notes" field.
func ImplementationNotesNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldImplementationNotes, v))
}

// ImplementationNotesIn applies the In predicate on the "implementation_notes" field.
func ImplementationNotesIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldImplementationNotes, vs...))
}

// ImplementationNotesNotIn applies the NotIn predicate on the "implementation_notes" field.
func ImplementationNotesNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldImplementationNotes, vs...))
}

// ImplementationNotesGT applies the GT predicate on the "implementation_notes" field.
func ImplementationNotesGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldImplementationNotes, v))
}

// ImplementationNotesGTE applies the GTE predicate on the "implementation_notes" field.
func ImplementationNotesGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldImplementationNotes, v))
}

// ImplementationNotesLT applies the LT predicate on the "implementation_notes" field.
func ImplementationNotesLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldImplementationNotes, v))
}

// ImplementationNotesLTE applies the LTE predicate on the "implementation_notes" field.
func ImplementationNotesLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldImplementationNotes, v))
}

// ImplementationNotesContains applies the Contains predicate on the "implementation_notes" field.
func ImplementationNotesContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldImplementationNotes, v))
}

// ImplementationNotesHasPrefix applies the HasPrefix predicate on the "implementation_notes" field.
func ImplementationNotesHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldImplementationNotes, v))
}

// ImplementationNotesHasSuffix applies the HasSuffix predicate on the "implementation_notes" field.
func ImplementationNotesHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldImplementationNotes, v))
}

// ImplementationNotesIsNil applies the IsNil predicate on the "implementation_notes" field.
func ImplementationNotesIsNil() predicate.Rule {
	return predicate.Rule(sql.FieldIsNull(FieldImplementationNotes))
}

// ImplementationNotesNotNil applies the NotNil predicate on the "implementation_notes" field.
func ImplementationNotesNotNil() predicate.Rule {
	return predicate.Rule(sql.FieldNotNull(FieldImplementationNotes))
}

// ImplementationNotesEqualFold applies the EqualFold predicate on the "implementation_notes" field.
func ImplementationNotesEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldImplementationNotes, v))
}

// ImplementationNotesContainsFold applies the ContainsFold predicate on the "implementation_notes" field.
func ImplementationNotesContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldImplementationNotes, v))
}

// ReferencesEQ applies the EQ predicate on the "references" field.
func ReferencesEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldReferences, v))
}

// ReferencesNEQ applies the NEQ predicate on the "references" field.
func ReferencesNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldReferences, v))
}

// ReferencesIn applies the In predicate on the "references" field.
func ReferencesIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldReferences, vs...))
}

// ReferencesNotIn applies the NotIn predicate on the "references" field.
func ReferencesNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldReferences, vs...))
}

// ReferencesGT applies the GT predicate on the "references" field.
func ReferencesGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldReferences, v))
}

// ReferencesGTE applies the GTE predicate on the "references" field.
func ReferencesGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldReferences, v))
}

// ReferencesLT applies the LT predicate on the "references" field.
func ReferencesLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldReferences, v))
}

// ReferencesLTE applies the LTE predicate on the "references" field.
func ReferencesLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldReferences, v))
}

// ReferencesContains applies the Contains predicate on the "references" field.
func ReferencesContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldReferences, v))
}

// ReferencesHasPrefix applies the HasPrefix predicate on the "references" field.
func ReferencesHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldReferences, v))
}

// ReferencesHasSuffix applies the HasSuffix predicate on the "references" field.
func ReferencesHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldReferences, v))
}

// ReferencesIsNil applies the IsNil predicate on the "references" field.
func ReferencesIsNil() predicate.Rule {
	return predicate.Rule(sql.FieldIsNull(FieldReferences))
}

// ReferencesNotNil applies the NotNil predicate on the "references" field.
func ReferencesNotNil() predicate.Rule {
	return predicate.Rule(sql.FieldNotNull(FieldReferences))
}

// ReferencesEqualFold applies the EqualFold predicate on the "references" field.
func ReferencesEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldReferences, v))
}

// ReferencesContainsFold applies the ContainsFold predicate on the "references" field.
func ReferencesContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldReferences, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldSeverity, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Rule {
	return predicate.Rule(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Rule {
	return predicate.Rule(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldCategory, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldOrderIndex, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Rule {
	return predicate.Rule(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Rule {
	return predicate.Rule(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldCreatedBy, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.Rule {
	return predicate.Rule(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.Rule {
	return predicate.Rule(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldReviewedBy, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.Rule {
	return predicate.Rule(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.Rule {
	return predicate.Rule(sql.FieldNotNull(FieldReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTechnology applies the HasEdge predicate on the "technology" edge.
func HasTechnology() predicate.Rule {
	return predicate.Rule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TechnologyTable, TechnologyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTechnologyWith applies the HasEdge predicate on the "technology" edge with a given conditions (other predicates).
func HasTechnologyWith(preds ...predicate.Technology) predicate.Rule {
	return predicate.Rule(func(s *sql.Selector) {
		step := newTechnologyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImages applies the HasEdge predicate on the "images" edge.
func HasImages() predicate.Rule {
	return predicate.Rule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImagesWith applies the HasEdge predicate on the "images" edge with a given conditions (other predicates).
func HasImagesWith(preds ...predicate.RuleImage) predicate.Rule {
	return predicate.Rule(func(s *sql.Selector) {
		step := newImagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasValidationItems applies the HasEdge predicate on the "validation_items" edge.
func HasValidationItems() predicate.Rule {
	return predicate.Rule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValidationItemsTable, ValidationItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValidationItemsWith applies the HasEdge predicate on the "validation_items" edge with a given conditions (other predicates).
func HasValidationItemsWith(preds ...predicate.ValidationItem) predicate.Rule {
	return predicate.Rule(func(s *sql.Selector) {
		step := newValidationItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Rule) predicate.Rule {
	return predicate.Rule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Rule) predicate.Rule {
	return predicate.Rule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Rule) predicate.Rule {
	return predicate.Rule(sql.NotPredicates(p))
}
