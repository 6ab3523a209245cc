// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/ruleimage"
	"github.com/google/uuid"
)

// RuleImage is the model entity for the RuleImage schema.
type RuleImage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID uuid.UUID `json:"rule_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// ImageData holds the value of the "image_data" field.
	ImageData []byte `json:"image_data,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType *string `json:"mime_type,omitempty"`
	// Caption holds the value of the "caption" field.
	Caption *string `json:"caption,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// OrderIndex holds the value of the "order_index" field.
	OrderIndex int `json:"order_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RuleImageQuery when eager-loading is set.
	Edges        RuleImageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RuleImageEdges holds the relations/edges for other nodes in the graph.
type RuleImageEdges struct {
	// Rule holds the value of the rule edge.
	Rule *Rule `json:"rule,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RuleOrErr returns the Rule value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RuleImageEdges) RuleOrErr() (*Rule, error) {
	if e.Rule != nil {
		return e.Rule, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rule.Label}
	}
	return nil, &NotLoadedError{edge: "rule"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RuleImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ruleimage.FieldImageData:
			values[i] = new([]byte)
		case ruleimage.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case ruleimage.FieldFilename, ruleimage.FieldMimeType, ruleimage.FieldCaption, ruleimage.FieldDescription:
			values[i] = new(sql.NullString)
		case ruleimage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case ruleimage.FieldID, ruleimage.FieldRuleID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RuleImage fields.
func (_m *RuleImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ruleimage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ruleimage.FieldRuleID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value != nil {
				_m.RuleID = *value
			}
		case ruleimage.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case ruleimage.FieldImageData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_data", values[i])
			} else if value != nil {
				_m.ImageData = *value
			}
		case ruleimage.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = new(string)
				*_m.MimeType = value.String
			}
		case ruleimage.FieldCaption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field caption", values[i])
			} else if value.Valid {
				_m.Caption = new(string)
				*_m.Caption = value.String
			}
		case ruleimage.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case ruleimage.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case ruleimage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RuleImage.
// This includes values selected through modifiers, order, etc.
func (_m *RuleImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRule queries the "rule" edge of the RuleImage entity.
func (_m *RuleImage) QueryRule() *RuleQuery {
	return NewRuleImageClient(_m.config).QueryRule(_m)
}

// Update returns a builder for updating this RuleImage.
// Note that you need to call RuleImage.Unwrap() before calling this method if this RuleImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RuleImage) Update() *RuleImageUpdateOne {
	return NewRuleImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RuleImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RuleImage) Unwrap() *RuleImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RuleImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RuleImage) String() string {
	var builder strings.Builder
	builder.WriteString("RuleImage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("rule_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("image_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageData))
	builder.WriteString(", ")
	if v := _m.MimeType; v != nil {
		builder.WriteString("mime_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Caption; v != nil {
		builder.WriteString("caption=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RuleImages is a parsable slice of RuleImage.
type RuleImages []*RuleImage
