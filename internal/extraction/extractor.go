// Package extraction derives structured facts (skills, experience years,
// education mentions) from normalized resume text.
package extraction

import (
	"github.com/jonathan/resume-insight/internal/nlp"
	"github.com/jonathan/resume-insight/internal/textproc"
	"github.com/jonathan/resume-insight/internal/types"
)

// Extractor derives resume facts from text using an injected linguistic
// parser. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	parser nlp.Parser
}

// NewExtractor creates an Extractor backed by the given parser.
func NewExtractor(parser nlp.Parser) *Extractor {
	return &Extractor{parser: parser}
}

// Facts runs the full extraction pass over resume text: PII masking, skill
// extraction, experience estimation and education mentions. Duplicate flags
// are left unset; the caller fills them from the duplicate detector.
func (e *Extractor) Facts(text string) types.ResumeFacts {
	return types.ResumeFacts{
		Skills:          e.Skills(text),
		ExperienceYears: e.Experience(text),
		Education:       e.Education(text),
		MaskedText:      textproc.MaskPII(text),
	}
}
