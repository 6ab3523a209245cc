// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/esdguide/ruletracker/db/ent/schema"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/ruleimage"
	"github.com/esdguide/ruletracker/gen/ent/technology"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	importeddocumentFields := schema.ImportedDocument{}.Fields()
	_ = importeddocumentFields
	// importeddocumentDescFilename is the schema descriptor for filename field.
	importeddocumentDescFilename := importeddocumentFields[1].Descriptor()
	// importeddocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	importeddocument.FilenameValidator = importeddocumentDescFilename.Validators[0].(func(string) error)
	// importeddocumentDescFormat is the schema descriptor for format field.
	importeddocumentDescFormat := importeddocumentFields[2].Descriptor()
	// importeddocument.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	importeddocument.FormatValidator = func() func(string) error {
		validators := importeddocumentDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// importeddocumentDescStatus is the schema descriptor for status field.
	importeddocumentDescStatus := importeddocumentFields[4].Descriptor()
	// importeddocument.DefaultStatus holds the default value on creation for the status field.
	importeddocument.DefaultStatus = importeddocumentDescStatus.Default.(string)
	// importeddocument.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importeddocument.StatusValidator = importeddocumentDescStatus.Validators[0].(func(string) error)
	// importeddocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	importeddocumentDescUploadedAt := importeddocumentFields[7].Descriptor()
	// importeddocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	importeddocument.DefaultUploadedAt = importeddocumentDescUploadedAt.Default.(func() time.Time)
	// importeddocumentDescID is the schema descriptor for id field.
	importeddocumentDescID := importeddocumentFields[0].Descriptor()
	// importeddocument.DefaultID holds the default value on creation for the id field.
	importeddocument.DefaultID = importeddocumentDescID.Default.(func() uuid.UUID)
	ruleFields := schema.Rule{}.Fields()
	_ = ruleFields
	// ruleDescRuleType is the schema descriptor for rule_type field.
	ruleDescRuleType := ruleFields[2].Descriptor()
	// rule.RuleTypeValidator is a validator for the "rule_type" field. It is called by the builders before save.
	rule.RuleTypeValidator = ruleDescRuleType.Validators[0].(func(string) error)
	// ruleDescTitle is the schema descriptor for title field.
	ruleDescTitle := ruleFields[3].Descriptor()
	// rule.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	rule.TitleValidator = func() func(string) error {
		validators := ruleDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ruleDescContent is the schema descriptor for content field.
	ruleDescContent := ruleFields[4].Descriptor()
	// rule.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	rule.ContentValidator = ruleDescContent.Validators[0].(func(string) error)
	// ruleDescSeverity is the schema descriptor for severity field.
	ruleDescSeverity := ruleFields[8].Descriptor()
	// rule.DefaultSeverity holds the default value on creation for the severity field.
	rule.DefaultSeverity = ruleDescSeverity.Default.(string)
	// rule.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	rule.SeverityValidator = ruleDescSeverity.Validators[0].(func(string) error)
	// ruleDescOrderIndex is the schema descriptor for order_index field.
	ruleDescOrderIndex := ruleFields[10].Descriptor()
	// rule.DefaultOrderIndex holds the default value on creation for the order_index field.
	rule.DefaultOrderIndex = ruleDescOrderIndex.Default.(int)
	// rule.OrderIndexValidator is a validator for the "order_index" field. It is called by the builders before save.
	rule.OrderIndexValidator = ruleDescOrderIndex.Validators[0].(func(int) error)
	// ruleDescIsActive is the schema descriptor for is_active field.
	ruleDescIsActive := ruleFields[11].Descriptor()
	// rule.DefaultIsActive holds the default value on creation for the is_active field.
	rule.DefaultIsActive = ruleDescIsActive.Default.(bool)
	// ruleDescCreatedAt is the schema descriptor for created_at field.
	ruleDescCreatedAt := ruleFields[15].Descriptor()
	// rule.DefaultCreatedAt holds the default value on creation for the created_at field.
	rule.DefaultCreatedAt = ruleDescCreatedAt.Default.(func() time.Time)
	// ruleDescUpdatedAt is the schema descriptor for updated_at field.
	ruleDescUpdatedAt := ruleFields[16].Descriptor()
	// rule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rule.DefaultUpdatedAt = ruleDescUpdatedAt.Default.(func() time.Time)
	// rule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rule.UpdateDefaultUpdatedAt = ruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ruleDescID is the schema descriptor for id field.
	ruleDescID := ruleFields[0].Descriptor()
	// rule.DefaultID holds the default value on creation for the id field.
	rule.DefaultID = ruleDescID.Default.(func() uuid.UUID)
	ruleimageFields := schema.RuleImage{}.Fields()
	_ = ruleimageFields
	// ruleimageDescFilename is the schema descriptor for filename field.
	ruleimageDescFilename := ruleimageFields[2].Descriptor()
	// ruleimage.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	ruleimage.FilenameValidator = ruleimageDescFilename.Validators[0].(func(string) error)
	// ruleimageDescImageData is the schema descriptor for image_data field.
	ruleimageDescImageData := ruleimageFields[3].Descriptor()
	// ruleimage.ImageDataValidator is a validator for the "image_data" field. It is called by the builders before save.
	ruleimage.ImageDataValidator = ruleimageDescImageData.Validators[0].(func([]byte) error)
	// ruleimageDescOrderIndex is the schema descriptor for order_index field.
	ruleimageDescOrderIndex := ruleimageFields[7].Descriptor()
	// ruleimage.DefaultOrderIndex holds the default value on creation for the order_index field.
	ruleimage.DefaultOrderIndex = ruleimageDescOrderIndex.Default.(int)
	// ruleimage.OrderIndexValidator is a validator for the "order_index" field. It is called by the builders before save.
	ruleimage.OrderIndexValidator = ruleimageDescOrderIndex.Validators[0].(func(int) error)
	// ruleimageDescCreatedAt is the schema descriptor for created_at field.
	ruleimageDescCreatedAt := ruleimageFields[8].Descriptor()
	// ruleimage.DefaultCreatedAt holds the default value on creation for the created_at field.
	ruleimage.DefaultCreatedAt = ruleimageDescCreatedAt.Default.(func() time.Time)
	// ruleimageDescID is the schema descriptor for id field.
	ruleimageDescID := ruleimageFields[0].Descriptor()
	// ruleimage.DefaultID holds the default value on creation for the id field.
	ruleimage.DefaultID = ruleimageDescID.Default.(func() uuid.UUID)
	technologyFields := schema.Technology{}.Fields()
	_ = technologyFields
	// technologyDescName is the schema descriptor for name field.
	technologyDescName := technologyFields[1].Descriptor()
	// technology.NameValidator is a validator for the "name" field. It is called by the builders before save.
	technology.NameValidator = technologyDescName.Validators[0].(func(string) error)
	// technologyDescActive is the schema descriptor for active field.
	technologyDescActive := technologyFields[6].Descriptor()
	// technology.DefaultActive holds the default value on creation for the active field.
	technology.DefaultActive = technologyDescActive.Default.(bool)
	// technologyDescCreatedAt is the schema descriptor for created_at field.
	technologyDescCreatedAt := technologyFields[7].Descriptor()
	// technology.DefaultCreatedAt holds the default value on creation for the created_at field.
	technology.DefaultCreatedAt = technologyDescCreatedAt.Default.(func() time.Time)
	// technologyDescUpdatedAt is the schema descriptor for updated_at field.
	technologyDescUpdatedAt := technologyFields[8].Descriptor()
	// technology.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	technology.DefaultUpdatedAt = technologyDescUpdatedAt.Default.(func() time.Time)
	// technology.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	technology.UpdateDefaultUpdatedAt = technologyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// technologyDescID is the schema descriptor for id field.
	technologyDescID := technologyFields[0].Descriptor()
	// technology.DefaultID holds the default value on creation for the id field.
	technology.DefaultID = technologyDescID.Default.(func() uuid.UUID)
	validationitemFields := schema.ValidationItem{}.Fields()
	_ = validationitemFields
	// validationitemDescStatus is the schema descriptor for status field.
	validationitemDescStatus := validationitemFields[4].Descriptor()
	// validationitem.DefaultStatus holds the default value on creation for the status field.
	validationitem.DefaultStatus = validationitemDescStatus.Default.(string)
	// validationitem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	validationitem.StatusValidator = validationitemDescStatus.Validators[0].(func(string) error)
	// validationitemDescCreatedAt is the schema descriptor for created_at field.
	validationitemDescCreatedAt := validationitemFields[7].Descriptor()
	// validationitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationitem.DefaultCreatedAt = validationitemDescCreatedAt.Default.(func() time.Time)
	// validationitemDescID is the schema descriptor for id field.
	validationitemDescID := validationitemFields[0].Descriptor()
	// validationitem.DefaultID holds the default value on creation for the id field.
	validationitem.DefaultID = validationitemDescID.Default.(func() uuid.UUID)
}
