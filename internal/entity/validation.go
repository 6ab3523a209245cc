package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ValidationItem is one queued extraction candidate awaiting human
// review. ExtractedContent is the candidate serialized as JSON so the
// queue survives schema drift in the candidate shape.
type ValidationItem struct {
	ID               uuid.UUID       `json:"id"`
	DocumentID       *uuid.UUID      `json:"document_id,omitempty"`
	RuleID           *uuid.UUID      `json:"rule_id,omitempty"`
	ExtractedContent json.RawMessage `json:"extracted_content"`
	Status           string          `json:"status"`
	ValidatorNotes   string          `json:"validator_notes,omitempty"`
	ValidatedBy      string          `json:"validated_by,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	ValidatedAt      *time.Time      `json:"validated_at,omitempty"`
}

// Candidate decodes the stored extraction candidate.
func (v *ValidationItem) Candidate() (ExtractedRule, error) {
	return DecodeContent(v.ExtractedContent)
}
