// Package types provides type definitions for structured data used throughout the resume-insight system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// FileType identifies the declared format of an uploaded resume document.
type FileType string

// Supported resume document formats.
const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
)

// ResumeFacts holds the structured signals derived from one resume document.
// Computed once at ingestion time and never mutated; re-ingesting a document
// produces a new record.
type ResumeFacts struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Education       []string `json:"education"`
	MaskedText      string   `json:"masked_text"`
	IsDuplicate     bool     `json:"is_duplicate"`
	DuplicateOf     string   `json:"duplicate_of,omitempty"`
}

// Resume is a stored resume record: the uploaded document metadata plus the
// facts extracted at ingestion time.
type Resume struct {
	ID         string      `json:"id"`
	Filename   string      `json:"filename"`
	FileType   FileType    `json:"file_type"`
	UploadDate time.Time   `json:"upload_date"`
	FileSize   int64       `json:"file_size"`
	ParsedText string      `json:"parsed_text"`
	Facts      ResumeFacts `json:"facts"`
}
