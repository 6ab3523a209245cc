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

// ImportedDocument holds the raw bytes of an uploaded document and its
// processing lifecycle. Terminal statuses are only revisited through an
// explicit reset.
type ImportedDocument struct{ ent.Schema }

func (ImportedDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "imported_documents"},
	}
}

func (ImportedDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentFormats...)),
		field.Bytes("file_data").
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("status").
			Validate(utils.EnumValidator(constants.DocumentStatusValues()...)).
			Default(string(constants.DocumentPending)),
		field.Text("processing_notes").Optional().Nillable(),
		field.String("uploaded_by").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (ImportedDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("validation_items", ValidationItem.Type),
	}
}

func (ImportedDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "uploaded_at"),
	}
}
