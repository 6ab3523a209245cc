package extract

import (
	"context"
	"fmt"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/internal/entity"
)

// Extractor is the capability set every format extractor implements.
// The three capabilities are independent: none may assume the others
// succeeded, and "nothing found" is a normal outcome for each.
type Extractor interface {
	// ExtractRules recovers candidate rules from the document.
	ExtractRules(ctx context.Context) ([]entity.ExtractedRule, error)
	// ExtractMetadata pulls whatever document properties are available.
	// Missing properties are omitted, never an error.
	ExtractMetadata(ctx context.Context) (map[string]any, error)
	// ExtractImages recovers embedded images. Images whose bytes cannot
	// be decoded are skipped without aborting the run.
	ExtractImages(ctx context.Context) ([]entity.ExtractedImage, error)
}

// New builds the extractor for a declared document format.
func New(format constants.DocumentFormat, content []byte) (Extractor, error) {
	switch format {
	case constants.FormatTabular:
		return NewTabularExtractor(content)
	case constants.FormatPDF:
		return NewPDFExtractor(content)
	case constants.FormatWord:
		return NewWordExtractor(content)
	default:
		return nil, fmt.Errorf("no extractor for format %q", format)
	}
}

// Process runs all three capabilities and combines their results. Rule
// extraction failures propagate (the document was unreadable by then);
// metadata and image failures degrade to empty results since candidates
// are the primary product.
func Process(ctx context.Context, ex Extractor) (entity.ExtractionResult, error) {
	rules, err := ex.ExtractRules(ctx)
	if err != nil {
		return entity.ExtractionResult{}, fmt.Errorf("extract rules: %w", err)
	}

	metadata, err := ex.ExtractMetadata(ctx)
	if err != nil || metadata == nil {
		metadata = map[string]any{}
	}

	images, err := ex.ExtractImages(ctx)
	if err != nil {
		images = nil
	}

	return entity.ExtractionResult{
		Rules:    rules,
		Metadata: metadata,
		Images:   images,
	}, nil
}
