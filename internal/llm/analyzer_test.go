package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedClient struct {
	responses []string
	errs      []error
	calls     []string
}

func (c *scriptedClient) GenerateJSON(_ context.Context, model, _ string) (string, error) {
	i := len(c.calls)
	c.calls = append(c.calls, model)
	var resp string
	var err error
	if i < len(c.responses) {
		resp = c.responses[i]
	}
	if i < len(c.errs) {
		err = c.errs[i]
	}
	return resp, err
}

func (c *scriptedClient) Close() error { return nil }

func newTestAnalyzer(client Client) *Analyzer {
	a := NewAnalyzer(client, []string{"primary", "fallback"}, nil)
	a.sleep = func(context.Context, time.Duration) {}
	return a
}

const validResponse = `{
	"ats_score": 82,
	"match_percentage": 74.5,
	"strengths": ["clear chronology"],
	"weaknesses": ["no metrics"],
	"recommendations": ["quantify impact"]
}`

func TestAnalyze_ValidResponse(t *testing.T) {
	client := &scriptedClient{responses: []string{validResponse}}

	analysis := newTestAnalyzer(client).Analyze(context.Background(), "resume text", "")

	assert.Equal(t, 82.0, analysis.ATSScore)
	assert.Equal(t, 74.5, analysis.MatchPercentage)
	assert.Equal(t, []string{"no metrics"}, analysis.Weaknesses)
	assert.Len(t, client.calls, 1)
}

func TestAnalyze_StripsMarkdownFence(t *testing.T) {
	client := &scriptedClient{responses: []string{"```json\n" + validResponse + "\n```"}}

	analysis := newTestAnalyzer(client).Analyze(context.Background(), "resume text", "")

	assert.Equal(t, 82.0, analysis.ATSScore)
}

func TestAnalyze_SniffsObjectOutOfProse(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Sure, here is the analysis you asked for: " + validResponse + " Let me know!",
	}}

	analysis := newTestAnalyzer(client).Analyze(context.Background(), "resume text", "")

	assert.Equal(t, 74.5, analysis.MatchPercentage)
}

func TestAnalyze_RateLimitFallsBackToNextModel(t *testing.T) {
	client := &scriptedClient{
		responses: []string{"", validResponse},
		errs:      []error{errors.New("googleapi: Error 429: quota exceeded"), nil},
	}

	analysis := newTestAnalyzer(client).Analyze(context.Background(), "resume text", "")

	assert.Equal(t, 82.0, analysis.ATSScore)
	require.Len(t, client.calls, 2)
	assert.Equal(t, []string{"primary", "fallback"}, client.calls)
}

func TestAnalyze_SchemaViolationFallsBackToDefault(t *testing.T) {
	// ats_score out of range on every attempt.
	bad := `{"ats_score": 150, "match_percentage": 50}`
	client := &scriptedClient{responses: []string{bad, bad, bad}}

	analysis := newTestAnalyzer(client).Analyze(context.Background(), "resume text", "")

	assert.Equal(t, DefaultAnalysis(), analysis)
	assert.Len(t, client.calls, maxAttempts)
}

func TestAnalyze_GarbageResponsesExhaustAttempts(t *testing.T) {
	client := &scriptedClient{responses: []string{"not json", "still not json", "nope"}}

	analysis := newTestAnalyzer(client).Analyze(context.Background(), "resume text", "")

	assert.Equal(t, 70.0, analysis.ATSScore)
	assert.Equal(t, 70.0, analysis.MatchPercentage)
	assert.NotEmpty(t, analysis.Weaknesses)
}

func TestAnalyze_CancelledContextShortCircuits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &scriptedClient{}

	analysis := newTestAnalyzer(client).Analyze(ctx, "resume text", "")

	assert.Equal(t, DefaultAnalysis(), analysis)
	assert.Empty(t, client.calls)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, isRateLimited(errors.New("Error 429")))
	assert.True(t, isRateLimited(errors.New("RESOURCE_EXHAUSTED: quota")))
	assert.True(t, isRateLimited(errors.New("rate limit hit")))
	assert.False(t, isRateLimited(errors.New("connection refused")))
}

func TestBuildAnalysisPrompt_JobDescriptionOptional(t *testing.T) {
	withJob := buildAnalysisPrompt("resume body", "job body")
	withoutJob := buildAnalysisPrompt("resume body", "  ")

	assert.Contains(t, withJob, "Job description:")
	assert.Contains(t, withJob, "job body")
	assert.NotContains(t, withoutJob, "Job description:")
	assert.Contains(t, withoutJob, "resume body")
}
