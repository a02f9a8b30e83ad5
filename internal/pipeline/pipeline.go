// Package pipeline provides the high-level orchestration for resume upload
// and analysis: parsing, fact extraction, duplicate detection, scoring, the
// external analysis and best-of-batch selection.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-insight/internal/dedup"
	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/scoring"
	"github.com/jonathan/resume-insight/internal/textproc"
	"github.com/jonathan/resume-insight/internal/types"
)

// maxConcurrentAnalyses bounds the parallel analysis fan-out in a batch.
const maxConcurrentAnalyses = 4

// Storage is the persistence surface the pipeline needs.
type Storage interface {
	SaveResume(ctx context.Context, resume *types.Resume) error
	GetResume(ctx context.Context, id string) (*types.Resume, error)
	ResumeCorpus(ctx context.Context) ([]dedup.CorpusEntry, error)
	SaveAnalysis(ctx context.Context, analysis *types.ResumeAnalysis) error
	MarkBest(ctx context.Context, analysisID string) error
}

// ExternalAnalyzer produces the qualitative analysis for a resume. It never
// fails; unavailability degrades to default scores.
type ExternalAnalyzer interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) types.ExternalAnalysis
}

// Pipeline wires the processing stages together.
type Pipeline struct {
	parser    *ingestion.Parser
	extractor *extraction.Extractor
	detector  *dedup.Detector
	analyzer  ExternalAnalyzer
	storage   Storage
	log       *zap.Logger
}

// New creates a pipeline over the given collaborators.
func New(parser *ingestion.Parser, extractor *extraction.Extractor, detector *dedup.Detector, analyzer ExternalAnalyzer, storage Storage, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		parser:    parser,
		extractor: extractor,
		detector:  detector,
		analyzer:  analyzer,
		storage:   storage,
		log:       log,
	}
}

// Upload ingests one resume document: parse, normalize, extract facts, flag
// duplicates against the stored corpus and persist the record.
func (p *Pipeline) Upload(ctx context.Context, path string) (*types.Resume, error) {
	doc, err := p.parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", path, err)
	}
	meta := ingestion.NewMetadata(doc)

	normalized := textproc.Normalize(doc.Text)

	// Fact extraction and corpus loading are independent; run them together.
	g, gCtx := errgroup.WithContext(ctx)
	var facts types.ResumeFacts
	var corpus []dedup.CorpusEntry

	g.Go(func() error {
		facts = p.extractor.Facts(normalized)
		return nil
	})
	g.Go(func() error {
		var err error
		corpus, err = p.storage.ResumeCorpus(gCtx)
		if err != nil {
			return fmt.Errorf("load dedup corpus: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := p.detector.Detect(ctx, facts.MaskedText, corpus)
	facts.IsDuplicate = result.IsDuplicate
	facts.DuplicateOf = result.DuplicateOf

	resume := &types.Resume{
		Filename:   doc.Filename,
		FileType:   doc.FileType,
		UploadDate: time.Now().UTC(),
		FileSize:   doc.FileSize,
		ParsedText: normalized,
		Facts:      facts,
	}
	if err := p.storage.SaveResume(ctx, resume); err != nil {
		return nil, err
	}

	p.log.Info("resume uploaded",
		zap.String("resume_id", resume.ID),
		zap.String("filename", resume.Filename),
		zap.String("content_hash", meta.Hash),
		zap.Int("words", meta.WordCount),
		zap.Int("skills", len(facts.Skills)),
		zap.Bool("duplicate", facts.IsDuplicate))
	return resume, nil
}

// Analyze scores a stored resume, optionally against a job description, and
// appends the analysis record. The component scores and the external
// analysis are computed concurrently.
func (p *Pipeline) Analyze(ctx context.Context, resumeID, jobDescription string) (*types.ResumeAnalysis, error) {
	resume, err := p.storage.GetResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, fmt.Errorf("resume not found: %s", resumeID)
	}

	analysis, err := p.analyzeResume(ctx, resume, jobDescription)
	if err != nil {
		return nil, err
	}
	if err := p.storage.SaveAnalysis(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// BatchResult is the outcome of analyzing a batch of resume files.
type BatchResult struct {
	Analyses  []scoring.ScoredAnalysis
	BestIndex int
}

// AnalyzeBatch uploads and analyzes a set of resume files against one job
// description, persists every analysis and flags the best-scoring one.
// Uploads run sequentially so duplicate detection sees each earlier file;
// the analyses then fan out in parallel.
func (p *Pipeline) AnalyzeBatch(ctx context.Context, paths []string, jobDescription string) (*BatchResult, error) {
	if len(paths) == 0 {
		return &BatchResult{BestIndex: -1}, nil
	}

	resumes := make([]*types.Resume, 0, len(paths))
	for _, path := range paths {
		resume, err := p.Upload(ctx, path)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}

	analyses := make([]types.ResumeAnalysis, len(resumes))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)
	for i, resume := range resumes {
		g.Go(func() error {
			analysis, err := p.analyzeResume(gCtx, resume, jobDescription)
			if err != nil {
				return err
			}
			analyses[i] = *analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scored, bestIdx := scoring.RankBatch(analyses)
	for i := range scored {
		scored[i].Analysis.IsBest = i == bestIdx
		if err := p.storage.SaveAnalysis(ctx, &scored[i].Analysis); err != nil {
			return nil, err
		}
	}
	if bestIdx >= 0 {
		if err := p.storage.MarkBest(ctx, scored[bestIdx].Analysis.ID); err != nil {
			return nil, err
		}
		p.log.Info("batch analyzed",
			zap.Int("resumes", len(scored)),
			zap.String("best_analysis_id", scored[bestIdx].Analysis.ID),
			zap.Float64("best_score", scored[bestIdx].FinalScore))
	}

	return &BatchResult{Analyses: scored, BestIndex: bestIdx}, nil
}

// analyzeResume computes the component scores and the external analysis for
// one resume. The two are independent and run concurrently.
func (p *Pipeline) analyzeResume(ctx context.Context, resume *types.Resume, jobDescription string) (*types.ResumeAnalysis, error) {
	keywords := p.jobKeywords(jobDescription)

	var scores types.ComponentScores
	var external types.ExternalAnalysis

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scores = scoring.CalculateScores(
			resume.ParsedText,
			resume.Facts.Skills,
			resume.Facts.ExperienceYears,
			resume.Facts.Education,
			keywords,
		)
		return nil
	})
	g.Go(func() error {
		external = p.analyzer.Analyze(gCtx, resume.Facts.MaskedText, jobDescription)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.ResumeAnalysis{
		ResumeID:        resume.ID,
		Filename:        resume.Filename,
		ComponentScores: scores,
		External:        external,
	}, nil
}

// jobKeywords derives matching keywords from the job description via the
// skill extractor, lowercased. An empty description yields none.
func (p *Pipeline) jobKeywords(jobDescription string) []string {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}
	skills := p.extractor.Skills(textproc.Normalize(jobDescription))
	keywords := make([]string, len(skills))
	for i, skill := range skills {
		keywords[i] = strings.ToLower(skill)
	}
	return keywords
}
