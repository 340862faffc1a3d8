package documents

import "time"

// Document represents an uploaded resume owned by a user. The first
// review run extracts its text and records the derived object under
// ExtractedTextKey so later runs skip extraction.
type Document struct {
	ID               string
	UserID           string
	FileName         string
	OriginalFilename string
	MimeType         string
	ContentType      string
	SizeBytes        int64
	StorageProvider  string
	StorageKey       string
	ExtractedTextKey string
	ExtractedAt      *time.Time
	CreatedAt        time.Time
}
