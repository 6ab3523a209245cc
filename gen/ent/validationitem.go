// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

// ValidationItem is the model entity for the ValidationItem schema.
type ValidationItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID *uuid.UUID `json:"rule_id,omitempty"`
	// ExtractedContent holds the value of the "extracted_content" field.
	ExtractedContent json.RawMessage `json:"extracted_content,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ValidatorNotes holds the value of the "validator_notes" field.
	ValidatorNotes *string `json:"validator_notes,omitempty"`
	// ValidatedBy holds the value of the "validated_by" field.
	ValidatedBy *string `json:"validated_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ValidatedAt holds the value of the "validated_at" field.
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ValidationItemQuery when eager-loading is set.
	Edges        ValidationItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ValidationItemEdges holds the relations/edges for other nodes in the graph.
type ValidationItemEdges struct {
	// Document holds the value of the document edge.
	Document *ImportedDocument `json:"document,omitempty"`
	// Rule holds the value of the rule edge.
	Rule *Rule `json:"rule,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationItemEdges) DocumentOrErr() (*ImportedDocument, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: importeddocument.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// RuleOrErr returns the Rule value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationItemEdges) RuleOrErr() (*Rule, error) {
	if e.Rule != nil {
		return e.Rule, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: rule.Label}
	}
	return nil, &NotLoadedError{edge: "rule"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationitem.FieldDocumentID, validationitem.FieldRuleID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case validationitem.FieldExtractedContent:
			values[i] = new([]byte)
		case validationitem.FieldStatus, validationitem.FieldValidatorNotes, validationitem.FieldValidatedBy:
			values[i] = new(sql.NullString)
		case validationitem.FieldCreatedAt, validationitem.FieldValidatedAt:
			values[i] = new(sql.NullTime)
		case validationitem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationItem fields.
func (_m *ValidationItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case validationitem.FieldDocumentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = new(uuid.UUID)
				*_m.DocumentID = *value.S.(*uuid.UUID)
			}
		case validationitem.FieldRuleID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = new(uuid.UUID)
				*_m.RuleID = *value.S.(*uuid.UUID)
			}
		case validationitem.FieldExtractedContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedContent); err != nil {
					return fmt.Errorf("unmarshal field extracted_content: %w", err)
				}
			}
		case validationitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case validationitem.FieldValidatorNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validator_notes", values[i])
			} else if value.Valid {
				_m.ValidatorNotes = new(string)
				*_m.ValidatorNotes = value.String
			}
		case validationitem.FieldValidatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validated_by", values[i])
			} else if value.Valid {
				_m.ValidatedBy = new(string)
				*_m.ValidatedBy = value.String
			}
		case validationitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case validationitem.FieldValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validated_at", values[i])
			} else if value.Valid {
				_m.ValidatedAt = new(time.Time)
				*_m.ValidatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationItem.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ValidationItem entity.
func (_m *ValidationItem) QueryDocument() *ImportedDocumentQuery {
	return NewValidationItemClient(_m.config).QueryDocument(_m)
}

// QueryRule queries the "rule" edge of the ValidationItem entity.
func (_m *ValidationItem) QueryRule() *RuleQuery {
	return NewValidationItemClient(_m.config).QueryRule(_m)
}

// Update returns a builder for updating this ValidationItem.
// Note that you need to call ValidationItem.Unwrap() before calling this method if this ValidationItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationItem) Update() *ValidationItemUpdateOne {
	return NewValidationItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationItem) Unwrap() *ValidationItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationItem) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.DocumentID; v != nil {
		builder.WriteString("document_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RuleID; v != nil {
		builder.WriteString("rule_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_content=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedContent))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ValidatorNotes; v != nil {
		builder.WriteString("validator_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidatedBy; v != nil {
		builder.WriteString("validated_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ValidatedAt; v != nil {
		builder.WriteString("validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ValidationItems is a parsable slice of ValidationItem.
type ValidationItems []*ValidationItem
