package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an imported document for data transfer between layers.
type Document struct {
	ID              uuid.UUID  `json:"id"`
	Filename        string     `json:"filename"`
	Format          string     `json:"format"`
	Status          string     `json:"status"`
	ProcessingNotes string     `json:"processing_notes,omitempty"`
	UploadedBy      string     `json:"uploaded_by,omitempty"`
	UploadedAt      time.Time  `json:"uploaded_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
}

// ProcessSummary reports what a synchronous extraction run produced.
type ProcessSummary struct {
	DocumentID      uuid.UUID      `json:"document_id"`
	RulesExtracted  int            `json:"rules_extracted"`
	ImagesExtracted int            `json:"images_extracted"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}
