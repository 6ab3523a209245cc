// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ImportedDocumentsColumns holds the columns for the "imported_documents" table.
	ImportedDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "file_data", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "processing_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "uploaded_by", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// ImportedDocumentsTable holds the schema information for the "imported_documents" table.
	ImportedDocumentsTable = &schema.Table{
		Name:       "imported_documents",
		Columns:    ImportedDocumentsColumns,
		PrimaryKey: []*schema.Column{ImportedDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importeddocument_status_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ImportedDocumentsColumns[4], ImportedDocumentsColumns[7]},
			},
		},
	}
	// RulesColumns holds the columns for the "rules" table.
	RulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rule_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "implementation_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "references", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "severity", Type: field.TypeString, Default: "medium"},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "technology_id", Type: field.TypeUUID},
	}
	// RulesTable holds the schema information for the "rules" table.
	RulesTable = &schema.Table{
		Name:       "rules",
		Columns:    RulesColumns,
		PrimaryKey: []*schema.Column{RulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rules_technologies_rules",
				Columns:    []*schema.Column{RulesColumns[16]},
				RefColumns: []*schema.Column{TechnologiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rule_technology_id_rule_type_order_index",
				Unique:  false,
				Columns: []*schema.Column{RulesColumns[16], RulesColumns[1], RulesColumns[9]},
			},
			{
				Name:    "rule_technology_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{RulesColumns[16], RulesColumns[10]},
			},
			{
				Name:    "rule_rule_type",
				Unique:  false,
				Columns: []*schema.Column{RulesColumns[1]},
			},
		},
	}
	// RuleImagesColumns holds the columns for the "rule_images" table.
	RuleImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "image_data", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "caption", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "rule_id", Type: field.TypeUUID},
	}
	// RuleImagesTable holds the schema information for the "rule_images" table.
	RuleImagesTable = &schema.Table{
		Name:       "rule_images",
		Columns:    RuleImagesColumns,
		PrimaryKey: []*schema.Column{RuleImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rule_images_rules_images",
				Columns:    []*schema.Column{RuleImagesColumns[8]},
				RefColumns: []*schema.Column{RulesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ruleimage_rule_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{RuleImagesColumns[8], RuleImagesColumns[6]},
			},
		},
	}
	// TechnologiesColumns holds the columns for the "technologies" table.
	TechnologiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "node_size", Type: field.TypeString, Nullable: true},
		{Name: "process_type", Type: field.TypeString, Nullable: true},
		{Name: "foundry", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TechnologiesTable holds the schema information for the "technologies" table.
	TechnologiesTable = &schema.Table{
		Name:       "technologies",
		Columns:    TechnologiesColumns,
		PrimaryKey: []*schema.Column{TechnologiesColumns[0]},
	}
	// ValidationQueueColumns holds the columns for the "validation_queue" table.
	ValidationQueueColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "extracted_content", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "validator_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validated_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "rule_id", Type: field.TypeUUID, Nullable: true},
	}
	// ValidationQueueTable holds the schema information for the "validation_queue" table.
	ValidationQueueTable = &schema.Table{
		Name:       "validation_queue",
		Columns:    ValidationQueueColumns,
		PrimaryKey: []*schema.Column{ValidationQueueColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_queue_imported_documents_validation_items",
				Columns:    []*schema.Column{ValidationQueueColumns[7]},
				RefColumns: []*schema.Column{ImportedDocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "validation_queue_rules_validation_items",
				Columns:    []*schema.Column{ValidationQueueColumns[8]},
				RefColumns: []*schema.Column{RulesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationitem_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ValidationQueueColumns[2], ValidationQueueColumns[5]},
			},
			{
				Name:    "validationitem_document_id",
				Unique:  false,
				Columns: []*schema.Column{ValidationQueueColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ImportedDocumentsTable,
		RulesTable,
		RuleImagesTable,
		TechnologiesTable,
		ValidationQueueTable,
	}
)

func init() {
	ImportedDocumentsTable.Annotation = &entsql.Annotation{
		Table: "imported_documents",
	}
	RulesTable.ForeignKeys[0].RefTable = TechnologiesTable
	RulesTable.Annotation = &entsql.Annotation{
		Table: "rules",
	}
	RuleImagesTable.ForeignKeys[0].RefTable = RulesTable
	RuleImagesTable.Annotation = &entsql.Annotation{
		Table: "rule_images",
	}
	TechnologiesTable.Annotation = &entsql.Annotation{
		Table: "technologies",
	}
	ValidationQueueTable.ForeignKeys[0].RefTable = ImportedDocumentsTable
	ValidationQueueTable.ForeignKeys[1].RefTable = RulesTable
	ValidationQueueTable.Annotation = &entsql.Annotation{
		Table: "validation_queue",
	}
}
