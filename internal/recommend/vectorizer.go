package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// maxVocabularySize bounds the vectorizer vocabulary to the most frequent
// terms across the corpus.
const maxVocabularySize = 5000

// vectorizer is an immutable TF-IDF model fitted over a document corpus.
// Vectors are L2-normalized so that dot products are cosine similarities.
type vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// fitVectorizer builds the vocabulary and inverse document frequencies from
// the corpus, then returns the fitted model together with the corpus vectors.
func fitVectorizer(corpus []string) (*vectorizer, [][]float64) {
	tokenized := make([][]string, len(corpus))
	termTotals := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range corpus {
		tokens := tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[string]struct{})
		for _, token := range tokens {
			termTotals[token]++
			if _, ok := seen[token]; !ok {
				seen[token] = struct{}{}
				docFreq[token]++
			}
		}
	}

	terms := make([]string, 0, len(termTotals))
	for term := range termTotals {
		terms = append(terms, term)
	}
	// Most frequent terms first; ties resolve alphabetically so the
	// vocabulary is deterministic across refreshes.
	sort.Slice(terms, func(i, j int) bool {
		if termTotals[terms[i]] != termTotals[terms[j]] {
			return termTotals[terms[i]] > termTotals[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocabularySize {
		terms = terms[:maxVocabularySize]
	}

	v := &vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	docCount := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF keeps terms present in every document from zeroing out.
		v.idf[i] = math.Log((1+docCount)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([][]float64, len(corpus))
	for i, tokens := range tokenized {
		vectors[i] = v.vectorize(tokens)
	}
	return v, vectors
}

// Transform maps free text into the fitted vector space. Terms outside the
// vocabulary are ignored.
func (v *vectorizer) Transform(text string) []float64 {
	return v.vectorize(tokenize(text))
}

func (v *vectorizer) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, token := range tokens {
		if idx, ok := v.vocabulary[token]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// dot is the cosine similarity of two L2-normalized vectors.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// tokenize lowercases the text, splits on non-alphanumeric runs and drops
// stop words and single-character tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) < 2 {
			continue
		}
		if _, stop := englishStopWords[field]; stop {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
