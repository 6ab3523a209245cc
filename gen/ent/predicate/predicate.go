// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ImportedDocument is the predicate function for importeddocument builders.
type ImportedDocument func(*sql.Selector)

// Rule is the predicate function for rule builders.
type Rule func(*sql.Selector)

// RuleImage is the predicate function for ruleimage builders.
type RuleImage func(*sql.Selector)

// Technology is the predicate function for technology builders.
type Technology func(*sql.Selector)

// ValidationItem is the predicate function for validationitem builders.
type ValidationItem func(*sql.Selector)
