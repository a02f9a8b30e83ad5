// Package dedup flags near-duplicate resumes by comparing text embeddings
// against a corpus of previously ingested resumes.
package dedup

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/nlp"
)

// duplicateThreshold is the cosine similarity at or above which a candidate
// is reported as a duplicate of an existing resume.
const duplicateThreshold = 0.95

// CorpusEntry pairs a stored resume id with its text.
type CorpusEntry struct {
	ID   string
	Text string
}

// Result reports whether a candidate duplicates an existing resume.
type Result struct {
	IsDuplicate bool
	DuplicateOf string
	Similarity  float64
}

// Detector compares candidate resumes against a corpus using an injected
// embedding model. Comparison cost is linear in corpus size per call; the
// caller bounds the corpus it supplies.
type Detector struct {
	embedder nlp.Embedder
	log      *zap.Logger
}

// NewDetector creates a Detector using the given embedder.
func NewDetector(embedder nlp.Embedder, log *zap.Logger) *Detector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Detector{embedder: embedder, log: log}
}

// Detect embeds the candidate and every corpus text, computes cosine
// similarities and reports a duplicate when the maximum reaches the
// threshold. Ties resolve to the first corpus entry achieving the maximum.
// An empty corpus or an embedding failure yields a non-duplicate result;
// failures are logged, never surfaced.
func (d *Detector) Detect(ctx context.Context, candidate string, corpus []CorpusEntry) Result {
	if len(corpus) == 0 {
		return Result{}
	}
	if err := ctx.Err(); err != nil {
		d.log.Warn("duplicate detection skipped", zap.Error(err))
		return Result{}
	}

	texts := make([]string, 0, len(corpus)+1)
	texts = append(texts, candidate)
	for _, entry := range corpus {
		texts = append(texts, entry.Text)
	}

	vectors, err := d.embedder.Embed(texts)
	if err != nil {
		d.log.Warn("embedding failed, treating candidate as non-duplicate", zap.Error(err))
		return Result{}
	}

	candidateVec := vectors[0]
	best := Result{Similarity: -1}
	for i, entry := range corpus {
		similarity := nlp.Cosine(candidateVec, vectors[i+1])
		if similarity > best.Similarity {
			best.Similarity = similarity
			best.DuplicateOf = entry.ID
		}
	}

	if best.Similarity >= duplicateThreshold {
		best.IsDuplicate = true
		return best
	}
	return Result{Similarity: best.Similarity}
}
