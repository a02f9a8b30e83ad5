package textproc

import "regexp"

// PII patterns applied in a fixed order. Masking is regex-based and
// best-effort: atypical formats slip through, which is accepted.
var (
	emailPattern   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern   = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	ssnPattern     = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	cardPattern    = regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)
	addressPattern = regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd)\b`)
)

// MaskPII redacts personally identifying substrings from text. Replacements
// happen in a strict order: emails, phone numbers, SSNs, card numbers, then
// street addresses. The transform is pure and idempotent: replacement tokens
// never re-match any pattern.
func MaskPII(text string) string {
	text = emailPattern.ReplaceAllString(text, "[EMAIL]")
	text = phonePattern.ReplaceAllString(text, "[PHONE]")
	text = ssnPattern.ReplaceAllString(text, "[SSN]")
	text = cardPattern.ReplaceAllString(text, "[CARD]")
	text = addressPattern.ReplaceAllString(text, "[ADDRESS]")
	return text
}
