package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingEmbedder_Deterministic(t *testing.T) {
	embedder := NewHashingEmbedder()

	vectors, err := embedder.Embed([]string{"go engineer with kubernetes", "go engineer with kubernetes"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)

	assert.Equal(t, vectors[0], vectors[1])
	assert.InDelta(t, 1.0, Cosine(vectors[0], vectors[1]), 1e-9)
}

func TestHashingEmbedder_DifferentTextsDiffer(t *testing.T) {
	embedder := NewHashingEmbedder()

	vectors, err := embedder.Embed([]string{"python data scientist", "embedded C firmware developer"})
	require.NoError(t, err)

	assert.Less(t, Cosine(vectors[0], vectors[1]), 0.95)
}

func TestHashingEmbedder_Normalized(t *testing.T) {
	embedder := NewHashingEmbedder()

	vectors, err := embedder.Embed([]string{"some resume text with several words"})
	require.NoError(t, err)

	var norm float64
	for _, v := range vectors[0] {
		norm += v * v
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestHashingEmbedder_Dimension(t *testing.T) {
	embedder, err := NewHashingEmbedderWithDim(64)
	require.NoError(t, err)
	assert.Equal(t, 64, embedder.Dimension())

	vectors, err := embedder.Embed([]string{"text"})
	require.NoError(t, err)
	assert.Len(t, vectors[0], 64)
}

func TestNewHashingEmbedderWithDim_RejectsNonPositive(t *testing.T) {
	_, err := NewHashingEmbedderWithDim(0)
	assert.Error(t, err)
}

func TestCosine_ZeroVector(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 0}))
}
