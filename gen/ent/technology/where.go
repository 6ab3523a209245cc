// Code generated by ent, DO NOT EDIT.

package technology

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldDescription, v))
}

// NodeSize applies equality check predicate on the "node_size" field. It's identical to NodeSizeEQ.
func NodeSize(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldNodeSize, v))
}

// ProcessType applies equality check predicate on the "process_type" field. It's identical to ProcessTypeEQ.
func ProcessType(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldProcessType, v))
}

// Foundry applies equality check predicate on the "foundry" field. It's identical to FoundryEQ.
func Foundry(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldFoundry, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Technology {
	return predicate.Technology(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Technology {
	return predicate.Technology(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContainsFold(FieldDescription, v))
}

// NodeSizeEQ applies the EQ predicate on the "node_size" field.
func NodeSizeEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldNodeSize, v))
}

// NodeSizeNEQ applies the NEQ predicate on the "node_size" field.
func NodeSizeNEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldNodeSize, v))
}

// NodeSizeIn applies the In predicate on the "node_size" field.
func NodeSizeIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldNodeSize, vs...))
}

// NodeSizeNotIn applies the NotIn predicate on the "node_size" field.
func NodeSizeNotIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldNodeSize, vs...))
}

// NodeSizeGT applies the GT predicate on the "node_size" field.
func NodeSizeGT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldNodeSize, v))
}

// NodeSizeGTE applies the GTE predicate on the "node_size" field.
func NodeSizeGTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldNodeSize, v))
}

// NodeSizeLT applies the LT predicate on the "node_size" field.
func NodeSizeLT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldNodeSize, v))
}

// NodeSizeLTE applies the LTE predicate on the "node_size" field.
func NodeSizeLTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldNodeSize, v))
}

// NodeSizeContains applies the Contains predicate on the "node_size" field.
func NodeSizeContains(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContains(FieldNodeSize, v))
}

// NodeSizeHasPrefix applies the HasPrefix predicate on the "node_size" field.
func NodeSizeHasPrefix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasPrefix(FieldNodeSize, v))
}

// NodeSizeHasSuffix applies the HasSuffix predicate on the "node_size" field.
func NodeSizeHasSuffix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasSuffix(FieldNodeSize, v))
}

// NodeSizeIsNil applies the IsNil predicate on the "node_size" field.
func NodeSizeIsNil() predicate.Technology {
	return predicate.Technology(sql.FieldIsNull(FieldNodeSize))
}

// NodeSizeNotNil applies the NotNil predicate on the "node_size" field.
func NodeSizeNotNil() predicate.Technology {
	return predicate.Technology(sql.FieldNotNull(FieldNodeSize))
}

// NodeSizeEqualFold applies the EqualFold predicate on the "node_size" field.
func NodeSizeEqualFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEqualFold(FieldNodeSize, v))
}

// NodeSizeContainsFold applies the ContainsFold predicate on the "node_size" field.
func NodeSizeContainsFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContainsFold(FieldNodeSize, v))
}

// ProcessTypeEQ applies the EQ predicate on the "process_type" field.
func ProcessTypeEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldProcessType, v))
}

// ProcessTypeNEQ applies the NEQ predicate on the "process_type" field.
func ProcessTypeNEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldProcessType, v))
}

// ProcessTypeIn applies the In predicate on the "process_type" field.
func ProcessTypeIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldProcessType, vs...))
}

// ProcessTypeNotIn applies the NotIn predicate on the "process_type" field.
func ProcessTypeNotIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldProcessType, vs...))
}

// ProcessTypeGT applies the GT predicate on the "process_type" field.
func ProcessTypeGT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldProcessType, v))
}

// ProcessTypeGTE applies the GTE predicate on the "process_type" field.
func ProcessTypeGTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldProcessType, v))
}

// ProcessTypeLT applies the LT predicate on the "process_type" field.
func ProcessTypeLT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldProcessType, v))
}

// ProcessTypeLTE applies the LTE predicate on the "process_type" field.
func ProcessTypeLTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldProcessType, v))
}

// ProcessTypeContains applies the Contains predicate on the "process_type" field.
func ProcessTypeContains(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContains(FieldProcessType, v))
}

// ProcessTypeHasPrefix applies the HasPrefix predicate on the "process_type" field.
func ProcessTypeHasPrefix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasPrefix(FieldProcessType, v))
}

// ProcessTypeHasSuffix applies the HasSuffix predicate on the "process_type" field.
func ProcessTypeHasSuffix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasSuffix(FieldProcessType, v))
}

// ProcessTypeIsNil applies the IsNil predicate on the "process_type" field.
func ProcessTypeIsNil() predicate.Technology {
	return predicate.Technology(sql.FieldIsNull(FieldProcessType))
}

// ProcessTypeNotNil applies the NotNil predicate on the "process_type" field.
func ProcessTypeNotNil() predicate.Technology {
	return predicate.Technology(sql.FieldNotNull(FieldProcessType))
}

// ProcessTypeEqualFold applies the EqualFold predicate on the "process_type" field.
func ProcessTypeEqualFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEqualFold(FieldProcessType, v))
}

// ProcessTypeContainsFold applies the ContainsFold predicate on the "process_type" field.
func ProcessTypeContainsFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContainsFold(FieldProcessType, v))
}

// FoundryEQ applies the EQ predicate on the "foundry" field.
func FoundryEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldFoundry, v))
}

// FoundryNEQ applies the NEQ predicate on the "foundry" field.
func FoundryNEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldFoundry, v))
}

// FoundryIn applies the In predicate on the "foundry" field.
func FoundryIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldFoundry, vs...))
}

// FoundryNotIn applies the NotIn predicate on the "foundry" field.
func FoundryNotIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldFoundry, vs...))
}

// FoundryGT applies the GT predicate on the "foundry" field.
func FoundryGT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldFoundry, v))
}

// FoundryGTE applies the GTE predicate on the "foundry" field.
func FoundryGTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldFoundry, v))
}

// FoundryLT applies the LT predicate on the "foundry" field.
func FoundryLT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldFoundry, v))
}

// FoundryLTE applies the LTE predicate on the "foundry" field.
func FoundryLTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldFoundry, v))
}

// FoundryContains applies the Contains predicate on the "foundry" field.
func FoundryContains(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContains(FieldFoundry, v))
}

// FoundryHasPrefix applies the HasPrefix predicate on the "foundry" field.
func FoundryHasPrefix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasPrefix(FieldFoundry, v))
}

// FoundryHasSuffix applies the HasSuffix predicate on the "foundry" field.
func FoundryHasSuffix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasSuffix(FieldFoundry, v))
}

// FoundryIsNil applies the IsNil predicate on the "foundry" field.
func FoundryIsNil() predicate.Technology {
	return predicate.Technology(sql.FieldIsNull(FieldFoundry))
}

// FoundryNotNil applies the NotNil predicate on the "foundry" field.
func FoundryNotNil() predicate.Technology {
	return predicate.Technology(sql.FieldNotNull(FieldFoundry))
}

// FoundryEqualFold applies the EqualFold predicate on the "foundry" field.
func FoundryEqualFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEqualFold(FieldFoundry, v))
}

// FoundryContainsFold applies the ContainsFold predicate on the "foundry" field.
func FoundryContainsFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContainsFold(FieldFoundry, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRules applies the HasEdge predicate on the "rules" edge.
func HasRules() predicate.Technology {
	return predicate.Technology(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RulesTable, RulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRulesWith applies the HasEdge predicate on the "rules" edge with a given conditions (other predicates).
func HasRulesWith(preds ...predicate.Rule) predicate.Technology {
	return predicate.Technology(func(s *sql.Selector) {
		step := newRulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Technology) predicate.Technology {
	return predicate.Technology(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Technology) predicate.Technology {
	return predicate.Technology(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Technology) predicate.Technology {
	return predicate.Technology(sql.NotPredicates(p))
}
