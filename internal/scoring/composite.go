package scoring

import (
	"math"

	"github.com/jonathan/resume-insight/internal/types"
)

// Weights blending the external analysis with the local skill match score
// into the composite ranking score.
const (
	atsWeight        = 0.5
	matchWeight      = 0.3
	skillMatchWeight = 0.2
)

// CompositeScore blends the external ATS score, the external match
// percentage and the local skill match score into a single ranking score,
// rounded to two decimals. Deterministic pure function; used only for
// cross-resume ranking.
func CompositeScore(atsScore, matchPercentage, skillMatch float64) float64 {
	score := atsWeight*atsScore + matchWeight*matchPercentage + skillMatchWeight*skillMatch
	return math.Round(score*100) / 100
}

// ScoredAnalysis pairs an analysis record with its composite score for
// ranking within a batch.
type ScoredAnalysis struct {
	Analysis   types.ResumeAnalysis
	FinalScore float64
}

// RankBatch computes composite scores for a batch of analyses and returns
// them with the index of the best entry. Ties resolve to the first-seen
// entry. The selection is advisory: persisting the best flag is the
// caller's responsibility. An empty batch returns index -1.
func RankBatch(analyses []types.ResumeAnalysis) ([]ScoredAnalysis, int) {
	scored := make([]ScoredAnalysis, 0, len(analyses))
	bestIdx := -1
	bestScore := -1.0

	for i, analysis := range analyses {
		final := CompositeScore(
			analysis.External.ATSScore,
			analysis.External.MatchPercentage,
			analysis.ComponentScores.SkillMatch,
		)
		scored = append(scored, ScoredAnalysis{Analysis: analysis, FinalScore: final})
		if final > bestScore {
			bestScore = final
			bestIdx = i
		}
	}

	return scored, bestIdx
}
