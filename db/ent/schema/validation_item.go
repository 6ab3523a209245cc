package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/db/ent/schema/utils"
	"github.com/google/uuid"
)

// ValidationItem is a queued extraction candidate awaiting a human
// decision. Approved items keep a back-reference to the rule they
// produced, serving as an audit trail.
type ValidationItem struct{ ent.Schema }

func (ValidationItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "validation_queue"},
	}
}

func (ValidationItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// optional: manual entry has no source document
		field.UUID("document_id", uuid.UUID{}).Optional().Nillable(),
		// set once the candidate is promoted
		field.UUID("rule_id", uuid.UUID{}).Optional().Nillable(),
		field.JSON("extracted_content", json.RawMessage{}),
		field.String("status").
			Validate(utils.EnumValidator(constants.ValidationStatusValues()...)).
			Default(string(constants.ValidationPending)),
		field.Text("validator_notes").Optional().Nillable(),
		field.String("validated_by").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("validated_at").Optional().Nillable(),
	}
}

func (ValidationItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", ImportedDocument.Type).
			Ref("validation_items").
			Field("document_id").
			Unique(),
		edge.From("rule", Rule.Type).
			Ref("validation_items").
			Field("rule_id").
			Unique(),
	}
}

func (ValidationItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("document_id"),
	}
}
