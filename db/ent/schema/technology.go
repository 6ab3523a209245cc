package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Technology is the namespace under which rules and their ordering are
// scoped. This pipeline references technologies but does not manage
// their lifecycle.
type Technology struct {
	ent.Schema
}

func (Technology) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "technologies"},
	}
}

func (Technology) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("description").Optional().Nillable(),
		field.String("node_size").Optional().Nillable(),
		field.String("process_type").Optional().Nillable(),
		field.String("foundry").Optional().Nillable(),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Technology) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("rules", Rule.Type),
	}
}
