package nlp

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

// Embedder maps texts to fixed-length semantic vectors. All texts compared to
// each other must come from the same Embedder instance.
type Embedder interface {
	// Embed returns one vector per input text, each of the same dimension.
	Embed(texts []string) ([][]float64, error)
	// Dimension returns the length of vectors produced by Embed.
	Dimension() int
}

// defaultEmbeddingDim keeps collision rates low for resume-sized documents
// while staying cheap to compare against a corpus of a few hundred entries.
const defaultEmbeddingDim = 512

// HashingEmbedder embeds text as an L2-normalized feature-hashed term
// frequency vector. It is deterministic, dependency-free and read-only after
// construction, so a single instance serves the whole process.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder returns an embedder with the default dimension.
func NewHashingEmbedder() *HashingEmbedder {
	return &HashingEmbedder{dim: defaultEmbeddingDim}
}

// NewHashingEmbedderWithDim returns an embedder producing vectors of the given
// dimension. Dimension must be positive.
func NewHashingEmbedderWithDim(dim int) (*HashingEmbedder, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("embedding dimension must be positive, got %d", dim)
	}
	return &HashingEmbedder{dim: dim}, nil
}

// Dimension returns the vector length.
func (e *HashingEmbedder) Dimension() int {
	return e.dim
}

// Embed maps each text to a hashed term-frequency vector. Identical texts
// always produce identical vectors.
func (e *HashingEmbedder) Embed(texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vectors[i] = e.embedOne(text)
	}
	return vectors, nil
}

func (e *HashingEmbedder) embedOne(text string) []float64 {
	vec := make([]float64, e.dim)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:!?()")
		if token == "" {
			continue
		}
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vec[int(h.Sum32())%e.dim]++
	}

	// L2-normalize so cosine similarity reduces to a dot product.
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Cosine returns the cosine similarity of two equal-length vectors.
// Zero-magnitude vectors yield 0.
func Cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
