package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/db/ent/schema/utils"
	"github.com/google/uuid"
)

// Rule is the canonical, durable design rule record. Created by the
// promotion engine or by direct authoring; soft-deleted only.
type Rule struct{ ent.Schema }

func (Rule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "rules"},
	}
}

func (Rule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the ordering index can include it
		field.UUID("technology_id", uuid.UUID{}),
		field.String("rule_type").
			Validate(utils.EnumValidator(constants.RuleTypeValues()...)),
		field.String("title").NotEmpty().MaxLen(255),
		field.Text("content").NotEmpty(),
		field.Text("explanation").Optional().Nillable(),
		field.Text("implementation_notes").Optional().Nillable(),
		field.Text("references").Optional().Nillable(),
		field.String("severity").
			Validate(utils.EnumValidator(constants.SeverityValues()...)).
			Default(string(constants.SeverityMedium)),
		field.String("category").Optional().Nillable(),
		field.Int("order_index").NonNegative().Default(0),
		field.Bool("is_active").Default(true),
		field.String("created_by").Optional().Nillable(),
		field.String("reviewed_by").Optional().Nillable(),
		field.Time("reviewed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Rule) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY rules -> ONE technology (FK: rules.technology_id)
		edge.From("technology", Technology.Type).
			Ref("rules").
			Field("technology_id").
			Required().
			Unique(),
		// ONE rule -> MANY images
		edge.To("images", RuleImage.Type),
		// ONE rule -> MANY validation items (audit back-reference)
		edge.To("validation_items", ValidationItem.Type),
	}
}

func (Rule) Indexes() []ent.Index {
	return []ent.Index{
		// ordering scope: unique position within (technology, rule_type)
		index.Fields("technology_id", "rule_type", "order_index"),
		index.Fields("technology_id", "is_active"),
		index.Fields("rule_type"),
	}
}

// RuleImage is a binary attachment bound to a rule, ordered within its
// owning rule.
type RuleImage struct{ ent.Schema }

func (RuleImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "rule_images"},
	}
}

func (RuleImage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("rule_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.Bytes("image_data").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("mime_type").Optional().Nillable(),
		field.Text("caption").Optional().Nillable(),
		field.Text("description").Optional().Nillable(),
		field.Int("order_index").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (RuleImage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("rule", Rule.Type).
			Ref("images").
			Field("rule_id").
			Required().
			Unique(),
	}
}

func (RuleImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule_id", "order_index"),
	}
}
