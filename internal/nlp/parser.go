// Package nlp provides the lightweight linguistic collaborators used by fact
// extraction and duplicate detection: sentence segmentation, noun-phrase
// chunking and text embedding. Implementations are constructed explicitly and
// injected so tests can substitute fakes.
package nlp

import (
	"regexp"
	"strings"
)

// Parser segments text into sentences and candidate noun phrases.
type Parser interface {
	// Sentences splits text into sentences in document order.
	Sentences(text string) []string
	// NounPhrases returns short candidate phrases (at most three tokens each).
	NounPhrases(text string) []string
}

// RuleParser is a rule-based Parser. It is stateless and safe for concurrent
// use; one instance is typically shared process-wide.
type RuleParser struct{}

// NewRuleParser returns a rule-based parser.
func NewRuleParser() *RuleParser {
	return &RuleParser{}
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+\s+|\n+`)

// Sentences splits on terminal punctuation followed by whitespace, or on
// newlines. Abbreviation handling is deliberately naive; extraction only
// needs keyword-bearing sentences, not precise segmentation.
func (p *RuleParser) Sentences(text string) []string {
	var sentences []string
	for _, part := range sentenceBoundary.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// stopTokens end a candidate noun phrase when chunking.
var stopTokens = map[string]bool{
	"and": true, "or": true, "the": true, "a": true, "an": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "by": true, "from": true, "as": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"i": true, "my": true, "our": true, "their": true,
}

// NounPhrases chunks text into runs of up to three consecutive content tokens.
// Runs are broken at stop words and punctuation-only tokens. This approximates
// the noun-chunk pass of a full linguistic model closely enough for
// vocabulary-anchored skill extraction.
func (p *RuleParser) NounPhrases(text string) []string {
	tokens := strings.Fields(text)

	var phrases []string
	var run []string
	flush := func() {
		for size := 1; size <= 3 && size <= len(run); size++ {
			for start := 0; start+size <= len(run); start++ {
				phrases = append(phrases, strings.Join(run[start:start+size], " "))
			}
		}
		run = run[:0]
	}

	for _, token := range tokens {
		cleaned := strings.Trim(token, ".,;:!?()")
		if cleaned == "" || stopTokens[strings.ToLower(cleaned)] {
			flush()
			continue
		}
		run = append(run, cleaned)
		// Punctuation inside the original token also ends the run.
		if strings.ContainsAny(token, ".,;:!?") {
			flush()
		}
	}
	flush()

	return phrases
}
