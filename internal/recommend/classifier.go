package recommend

import (
	"math"
	"sort"
)

// classifier is a multinomial naive Bayes model over TF-IDF vectors that
// predicts per-category probabilities for a resume. It is only trained when
// the catalog carries at least two distinct categories; a single-category
// catalog makes the prediction vacuous.
type classifier struct {
	categories    []string
	logPrior      []float64
	logLikelihood [][]float64
}

// trainClassifier fits the model on the catalog document vectors and their
// category labels. Returns nil when fewer than two categories are present.
func trainClassifier(vectors [][]float64, labels []string) *classifier {
	byCategory := make(map[string][]int)
	for i, label := range labels {
		byCategory[label] = append(byCategory[label], i)
	}
	if len(byCategory) < 2 {
		return nil
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	features := len(vectors[0])
	c := &classifier{
		categories:    categories,
		logPrior:      make([]float64, len(categories)),
		logLikelihood: make([][]float64, len(categories)),
	}

	total := float64(len(labels))
	for ci, category := range categories {
		docs := byCategory[category]
		c.logPrior[ci] = math.Log(float64(len(docs)) / total)

		// Laplace-smoothed feature counts aggregated over the category.
		counts := make([]float64, features)
		var sum float64
		for _, di := range docs {
			for fi, value := range vectors[di] {
				counts[fi] += value
				sum += value
			}
		}
		c.logLikelihood[ci] = make([]float64, features)
		denom := math.Log(sum + float64(features))
		for fi := range counts {
			c.logLikelihood[ci][fi] = math.Log(counts[fi]+1) - denom
		}
	}
	return c
}

// Probabilities predicts a normalized probability per category for the given
// vector. The returned values sum to 1.
func (c *classifier) Probabilities(vec []float64) map[string]float64 {
	logProbs := make([]float64, len(c.categories))
	maxLog := math.Inf(-1)
	for ci := range c.categories {
		lp := c.logPrior[ci]
		for fi, value := range vec {
			if value > 0 {
				lp += value * c.logLikelihood[ci][fi]
			}
		}
		logProbs[ci] = lp
		if lp > maxLog {
			maxLog = lp
		}
	}

	probs := make(map[string]float64, len(c.categories))
	var norm float64
	for ci := range c.categories {
		p := math.Exp(logProbs[ci] - maxLog)
		probs[c.categories[ci]] = p
		norm += p
	}
	for category := range probs {
		probs[category] /= norm
	}
	return probs
}
