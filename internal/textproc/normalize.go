// Package textproc provides text normalization and PII masking for extracted resume text.
package textproc

import (
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	disallowed     = regexp.MustCompile(`[^\w\s.,;:!?\-()]`)
)

// Normalize cleans raw extracted text: collapses whitespace runs to single
// spaces, strips characters outside a conservative allow-list (word
// characters, whitespace and basic punctuation), and trims the ends.
func Normalize(raw string) string {
	text := whitespaceRuns.ReplaceAllString(raw, " ")
	text = disallowed.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
