package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Metadata describes an ingested resume document.
type Metadata struct {
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"` // RFC3339
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
	WordCount  int    `json:"word_count"`
	CharCount  int    `json:"char_count"`
}

// NewMetadata builds metadata for a parsed document.
func NewMetadata(doc *Document) *Metadata {
	return &Metadata{
		Filename:  doc.Filename,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(doc.Text),
		WordCount: len(strings.Fields(doc.Text)),
		CharCount: len(doc.Text),
	}
}

// computeHash computes the SHA256 hash of content as a hex string.
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
