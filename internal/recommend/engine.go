package recommend

import (
	"context"
	"math"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/types"
)

// Blend weights for the final recommendation score.
const (
	similarityWeight  = 0.6
	probabilityWeight = 0.4
	defaultTopN       = 5
)

// Source supplies the raw job catalog document the engine builds its model
// from.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the catalog from a JSON file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

// model is the immutable recommendation model: the catalog entries, the
// fitted vector space, the per-entry document vectors and the optional
// category classifier. Engines swap whole models; a model is never mutated
// after construction.
type model struct {
	jobs       []types.JobCatalogEntry
	vectorizer *vectorizer
	docVectors [][]float64
	classifier *classifier
}

// Engine recommends catalog jobs for a resume by blending TF-IDF cosine
// similarity with classifier category probabilities. Recommend reads a
// model snapshot without locking; Refresh builds a replacement model off to
// the side and swaps it in atomically, so readers never observe a torn
// model.
type Engine struct {
	source Source
	log    *zap.Logger

	refreshMu sync.Mutex
	model     atomic.Pointer[model]
}

// NewEngine creates an engine over the given catalog source. The engine
// starts unbuilt; call Refresh to build the model.
func NewEngine(source Source, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{source: source, log: log}
}

// Refresh rebuilds the recommendation model from the catalog source and
// swaps it in. A fetch failure or an empty/unparseable catalog clears the
// model, leaving the engine unbuilt until a later refresh succeeds. Refresh
// never panics or returns an error to the caller.
func (e *Engine) Refresh(ctx context.Context) {
	e.refreshMu.Lock()
	defer e.refreshMu.Unlock()

	data, err := e.source.Fetch(ctx)
	if err != nil {
		e.log.Warn("job catalog fetch failed, clearing model", zap.Error(err))
		e.model.Store(nil)
		return
	}

	jobs := ParseCatalog(data)
	if len(jobs) == 0 {
		e.log.Warn("job catalog empty or invalid, clearing model")
		e.model.Store(nil)
		return
	}

	corpus := make([]string, len(jobs))
	labels := make([]string, len(jobs))
	for i, job := range jobs {
		corpus[i] = entryDocument(job)
		labels[i] = job.Category
	}

	vec, docVectors := fitVectorizer(corpus)
	clf := trainClassifier(docVectors, labels)
	if clf == nil {
		e.log.Info("single-category catalog, classifier skipped",
			zap.Int("jobs", len(jobs)))
	}

	e.model.Store(&model{
		jobs:       jobs,
		vectorizer: vec,
		docVectors: docVectors,
		classifier: clf,
	})
	e.log.Info("recommendation model rebuilt", zap.Int("jobs", len(jobs)))
}

// Built reports whether a recommendation model is available.
func (e *Engine) Built() bool {
	return e.model.Load() != nil
}

// Jobs returns the catalog entries of the current model, or nil when the
// engine is unbuilt.
func (e *Engine) Jobs() []types.JobCatalogEntry {
	m := e.model.Load()
	if m == nil {
		return nil
	}
	jobs := make([]types.JobCatalogEntry, len(m.jobs))
	copy(jobs, m.jobs)
	return jobs
}

// Recommend returns the topN highest-scoring jobs for the resume text. The
// final score blends cosine similarity against each catalog entry with the
// classifier probability of the entry's category. Returns nil when the
// engine is unbuilt or the text is blank. Ties preserve catalog order.
func (e *Engine) Recommend(resumeText string, topN int) []types.JobRecommendation {
	m := e.model.Load()
	if m == nil || strings.TrimSpace(resumeText) == "" {
		return nil
	}
	if topN <= 0 {
		topN = defaultTopN
	}

	resumeVec := m.vectorizer.Transform(resumeText)

	var probs map[string]float64
	if m.classifier != nil {
		probs = m.classifier.Probabilities(resumeVec)
	}

	recs := make([]types.JobRecommendation, len(m.jobs))
	for i, job := range m.jobs {
		similarity := dot(resumeVec, m.docVectors[i])
		probability := probs[job.Category]
		recs[i] = types.JobRecommendation{
			JobCatalogEntry:  job,
			SimilarityScore:  round4(similarity),
			ProbabilityScore: round4(probability),
			FinalScore:       round4(similarityWeight*similarity + probabilityWeight*probability),
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].FinalScore > recs[j].FinalScore
	})

	if topN > len(recs) {
		topN = len(recs)
	}
	return recs[:topN]
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
