package extraction

import "strings"

// educationKeywords flag sentences that mention a degree or diploma.
var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "degree", "diploma",
	"bsc", "msc", "mba", "ba", "ma", "bs", "ms",
}

// maxEducationEntries caps how many education mentions are kept per resume.
const maxEducationEntries = 5

// Education extracts education mentions: sentences containing a degree
// keyword, in document order, capped at five entries.
func (e *Extractor) Education(text string) []string {
	var education []string
	for _, sentence := range e.parser.Sentences(text) {
		lower := strings.ToLower(sentence)
		for _, keyword := range educationKeywords {
			if strings.Contains(lower, keyword) {
				education = append(education, strings.TrimSpace(sentence))
				break
			}
		}
		if len(education) == maxEducationEntries {
			break
		}
	}
	return education
}
