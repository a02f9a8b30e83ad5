package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/types"
)

const (
	maxAttempts = 3
	baseBackoff = 2 * time.Second
)

// Analyzer produces the qualitative external analysis for a resume. It is
// resilient by construction: any failure (transport, rate limit, malformed or
// schema-violating payload) degrades to a conservative default analysis
// rather than an error, so one bad model response never sinks a batch.
type Analyzer struct {
	client Client
	models []string
	log    *zap.Logger
	sleep  func(context.Context, time.Duration)
}

// NewAnalyzer creates an analyzer over the given client and model fallback
// chain. An empty chain falls back to DefaultModels.
func NewAnalyzer(client Client, models []string, log *zap.Logger) *Analyzer {
	if len(models) == 0 {
		models = DefaultModels()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		client: client,
		models: models,
		log:    log,
		sleep:  sleepContext,
	}
}

// Analyze runs the analysis prompt against the model chain and returns the
// parsed analysis, or the conservative default after all attempts fail. Rate
// limit errors back off exponentially and advance to the next fallback model.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) types.ExternalAnalysis {
	prompt := buildAnalysisPrompt(resumeText, jobDescription)

	modelIdx := 0
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}
		model := a.models[modelIdx]

		raw, err := a.client.GenerateJSON(ctx, model, prompt)
		if err != nil {
			a.log.Warn("analysis generation failed",
				zap.String("model", model),
				zap.Int("attempt", attempt),
				zap.Error(err))
			if isRateLimited(err) {
				if modelIdx < len(a.models)-1 {
					modelIdx++
				}
				a.sleep(ctx, baseBackoff*time.Duration(attempt))
			}
			continue
		}

		analysis, err := parseAnalysis(raw)
		if err != nil {
			a.log.Warn("analysis response rejected",
				zap.String("model", model),
				zap.Int("attempt", attempt),
				zap.String("response", logger.TruncateForLog(raw, 200)),
				zap.Error(err))
			continue
		}
		return analysis
	}

	a.log.Warn("external analysis unavailable, using default scores")
	return DefaultAnalysis()
}

// DefaultAnalysis is the conservative stand-in used when no model response
// could be obtained: middling scores and an explicit weakness naming the gap.
func DefaultAnalysis() types.ExternalAnalysis {
	return types.ExternalAnalysis{
		ATSScore:        70,
		MatchPercentage: 70,
		Weaknesses:      []string{"Automated analysis was unavailable; scores are conservative defaults"},
		Recommendations: []string{"Re-run the analysis to get model-backed feedback"},
	}
}

// parseAnalysis strips markdown fencing, sniffs out the JSON object, checks
// it against the analysis schema and unmarshals it.
func parseAnalysis(raw string) (types.ExternalAnalysis, error) {
	payload := ExtractJSONObject(CleanJSONBlock(raw))
	if payload == "" {
		return types.ExternalAnalysis{}, fmt.Errorf("no JSON object in response")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(analysisSchema),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return types.ExternalAnalysis{}, fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		descs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descs = append(descs, desc.String())
		}
		return types.ExternalAnalysis{}, fmt.Errorf("response violates schema: %s", strings.Join(descs, "; "))
	}

	var analysis types.ExternalAnalysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return types.ExternalAnalysis{}, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return analysis, nil
}

// isRateLimited reports whether the error looks like a quota or rate limit
// rejection worth backing off for.
func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"429", "quota", "rate limit", "resource exhausted", "resource_exhausted"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
