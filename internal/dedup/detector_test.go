package dedup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-insight/internal/nlp"
)

// failingEmbedder always returns an error.
type failingEmbedder struct{}

func (f *failingEmbedder) Embed([]string) ([][]float64, error) {
	return nil, errors.New("model unavailable")
}

func (f *failingEmbedder) Dimension() int { return 0 }

func TestDetect_EmptyCorpus(t *testing.T) {
	detector := NewDetector(nlp.NewHashingEmbedder(), nil)

	result := detector.Detect(context.Background(), "any resume text", nil)

	assert.False(t, result.IsDuplicate)
	assert.Empty(t, result.DuplicateOf)
}

func TestDetect_IdenticalTextFirstMatchWins(t *testing.T) {
	detector := NewDetector(nlp.NewHashingEmbedder(), nil)

	corpus := []CorpusEntry{
		{ID: "id1", Text: "senior go engineer kubernetes docker"},
		{ID: "id2", Text: "senior go engineer kubernetes docker"},
	}
	result := detector.Detect(context.Background(), "senior go engineer kubernetes docker", corpus)

	assert.True(t, result.IsDuplicate)
	assert.Equal(t, "id1", result.DuplicateOf)
	assert.InDelta(t, 1.0, result.Similarity, 1e-9)
}

func TestDetect_DistinctTextNotDuplicate(t *testing.T) {
	detector := NewDetector(nlp.NewHashingEmbedder(), nil)

	corpus := []CorpusEntry{
		{ID: "id1", Text: "marketing manager with retail branding background"},
	}
	result := detector.Detect(context.Background(), "embedded firmware engineer writing C for microcontrollers", corpus)

	assert.False(t, result.IsDuplicate)
	assert.Empty(t, result.DuplicateOf)
}

func TestDetect_EmbedderFailureDegradesToNonDuplicate(t *testing.T) {
	detector := NewDetector(&failingEmbedder{}, nil)

	corpus := []CorpusEntry{{ID: "id1", Text: "whatever"}}
	result := detector.Detect(context.Background(), "whatever", corpus)

	assert.False(t, result.IsDuplicate)
}

func TestDetect_CancelledContext(t *testing.T) {
	detector := NewDetector(nlp.NewHashingEmbedder(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := detector.Detect(ctx, "text", []CorpusEntry{{ID: "id1", Text: "text"}})

	assert.False(t, result.IsDuplicate)
}
