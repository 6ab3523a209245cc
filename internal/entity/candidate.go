package entity

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// ExtractedRule is a candidate rule recovered from a document. It is
// not authoritative until a reviewer approves it.
type ExtractedRule struct {
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	RuleType   string           `json:"rule_type,omitempty"`
	Severity   string           `json:"severity,omitempty"`
	Category   string           `json:"category,omitempty"`
	Confidence float32          `json:"confidence,omitempty"` // AI path only, 0..1
	Images     []ExtractedImage `json:"images,omitempty"`

	// TechnologyID is an optional owning-technology hint. Promotion
	// falls back to a configured default when absent.
	TechnologyID *uuid.UUID `json:"technology_id,omitempty"`
}

// Valid reports whether the candidate carries the required fields.
func (r ExtractedRule) Valid() bool {
	return strings.TrimSpace(r.Title) != "" && strings.TrimSpace(r.Content) != ""
}

// ExtractedImage is an embedded image recovered from a document.
type ExtractedImage struct {
	Filename    string `json:"filename"`
	Data        []byte `json:"data,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExtractionResult is the normalized triple every format extractor
// produces. Empty slices are normal outcomes, not errors.
type ExtractionResult struct {
	Rules    []ExtractedRule  `json:"rules"`
	Metadata map[string]any   `json:"metadata"`
	Images   []ExtractedImage `json:"images"`
}

// EncodeContent serializes a candidate for storage on a validation
// queue item.
func EncodeContent(r ExtractedRule) (json.RawMessage, error) {
	return json.Marshal(r)
}

// DecodeContent deserializes a validation queue item payload.
func DecodeContent(raw json.RawMessage) (ExtractedRule, error) {
	var r ExtractedRule
	err := json.Unmarshal(raw, &r)
	return r, err
}
