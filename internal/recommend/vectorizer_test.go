package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := tokenize("The quick brown fox, and a Go developer!")

	assert.Equal(t, []string{"quick", "brown", "fox", "go", "developer"}, tokens)
}

func TestFitVectorizer_VectorsAreUnitLength(t *testing.T) {
	corpus := []string{
		"golang backend microservices",
		"python data analysis pandas",
	}

	_, vectors := fitVectorizer(corpus)

	require.Len(t, vectors, 2)
	for _, vec := range vectors {
		var norm float64
		for _, v := range vec {
			norm += v * v
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
	}
}

func TestVectorizer_IdenticalDocumentsHaveCosineOne(t *testing.T) {
	corpus := []string{"kubernetes docker golang", "react typescript frontend"}

	v, vectors := fitVectorizer(corpus)

	query := v.Transform("kubernetes docker golang")
	assert.InDelta(t, 1.0, dot(query, vectors[0]), 1e-9)
	assert.Less(t, dot(query, vectors[1]), 0.5)
}

func TestVectorizer_UnknownTermsIgnored(t *testing.T) {
	v, _ := fitVectorizer([]string{"golang services"})

	vec := v.Transform("entirely novel vocabulary")

	for _, value := range vec {
		assert.Zero(t, value)
	}
}

func TestFitVectorizer_DeterministicVocabulary(t *testing.T) {
	corpus := []string{"alpha beta gamma", "beta gamma delta", "gamma delta alpha"}

	v1, _ := fitVectorizer(corpus)
	v2, _ := fitVectorizer(corpus)

	assert.Equal(t, v1.vocabulary, v2.vocabulary)
	assert.Equal(t, v1.idf, v2.idf)
}
