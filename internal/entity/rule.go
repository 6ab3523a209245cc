package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rule is a promoted design rule for transfer between layers.
type Rule struct {
	ID                  uuid.UUID  `json:"id"`
	TechnologyID        uuid.UUID  `json:"technology_id"`
	RuleType            string     `json:"rule_type"`
	Title               string     `json:"title"`
	Content             string     `json:"content"`
	Explanation         string     `json:"explanation,omitempty"`
	ImplementationNotes string     `json:"implementation_notes,omitempty"`
	References          string     `json:"references,omitempty"`
	Severity            string     `json:"severity"`
	Category            string     `json:"category,omitempty"`
	OrderIndex          int        `json:"order_index"`
	IsActive            bool       `json:"is_active"`
	CreatedBy           string     `json:"created_by,omitempty"`
	ReviewedBy          string     `json:"reviewed_by,omitempty"`
	ReviewedAt          *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// RuleImage is an illustration attached to a rule. Image bytes are
// carried separately from the listing shape on purpose.
type RuleImage struct {
	ID          uuid.UUID `json:"id"`
	RuleID      uuid.UUID `json:"rule_id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type,omitempty"`
	Caption     string    `json:"caption,omitempty"`
	Description string    `json:"description,omitempty"`
	OrderIndex  int       `json:"order_index"`
	Data        []byte    `json:"-"`
}

// Technology is a process technology rules are scoped to.
type Technology struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	NodeSize    string    `json:"node_size,omitempty"`
	ProcessType string    `json:"process_type,omitempty"`
	Foundry     string    `json:"foundry,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
