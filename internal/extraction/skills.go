package extraction

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// skillVocabulary is the curated list of technology and skill tokens matched
// against resume text. Matching is case-insensitive substring matching; the
// noun-phrase pass keeps any short phrase anchored by one of these tokens.
var skillVocabulary = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node", "sql",
	"mongodb", "postgresql", "mysql", "aws", "azure", "docker", "kubernetes",
	"git", "agile", "scrum", "machine learning", "deep learning", "ai",
	"data science", "analytics", "tableau", "power bi", "excel", "r",
	"tensorflow", "pytorch", "pandas", "numpy", "django", "flask", "fastapi",
	"html", "css", "typescript", "redux", "graphql", "rest api", "microservices",
}

// Skills extracts skill mentions from resume text. It matches the fixed
// vocabulary against the lowercased text, then scans parser noun phrases of
// up to three tokens and keeps any phrase containing a vocabulary token.
// Results are deduplicated and title-cased for display.
func (e *Extractor) Skills(text string) []string {
	textLower := strings.ToLower(text)

	seen := make(map[string]bool)
	var found []string
	add := func(display string) {
		if !seen[display] {
			seen[display] = true
			found = append(found, display)
		}
	}

	for _, skill := range skillVocabulary {
		if strings.Contains(textLower, skill) {
			add(titleCase(skill))
		}
	}

	for _, phrase := range e.parser.NounPhrases(text) {
		phraseLower := strings.ToLower(phrase)
		for _, skill := range skillVocabulary {
			if strings.Contains(phraseLower, skill) {
				add(titleCase(phrase))
				break
			}
		}
	}

	sort.Strings(found)
	return found
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest, matching the display form used for stored skills.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}
