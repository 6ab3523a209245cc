package constants

// DocumentStatus is the canonical processing status for rows in
// imported_documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocumentPending    DocumentStatus = "PENDING"    // uploaded, not yet processed
	DocumentProcessing DocumentStatus = "PROCESSING" // extraction in flight
	DocumentSuccess    DocumentStatus = "SUCCESS"    // terminal: extraction completed
	DocumentFailed     DocumentStatus = "FAILED"     // terminal: extraction failed
)

// DocumentStatusValues returns the allowed document statuses.
func DocumentStatusValues() []string {
	return []string{
		string(DocumentPending),
		string(DocumentProcessing),
		string(DocumentSuccess),
		string(DocumentFailed),
	}
}

// ValidationStatus is the review state of a validation queue item.
//
// PENDING is the enqueue state. APPROVED and REJECTED are terminal on
// the happy path. NEEDS_REVIEW is reachable from any state and acts as
// a re-open.
type ValidationStatus string

const (
	ValidationPending     ValidationStatus = "PENDING"
	ValidationApproved    ValidationStatus = "APPROVED"
	ValidationRejected    ValidationStatus = "REJECTED"
	ValidationNeedsReview ValidationStatus = "NEEDS_REVIEW"
)

// ValidationStatusValues returns the allowed validation statuses.
func ValidationStatusValues() []string {
	return []string{
		string(ValidationPending),
		string(ValidationApproved),
		string(ValidationRejected),
		string(ValidationNeedsReview),
	}
}
