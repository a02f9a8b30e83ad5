// Package export renders analysis records as JSON or CSV for downstream
// tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jonathan/resume-insight/internal/scoring"
	"github.com/jonathan/resume-insight/internal/types"
)

// Format identifies an export encoding.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Write renders the analyses in the requested format.
func Write(w io.Writer, format Format, analyses []types.ResumeAnalysis) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, analyses)
	case FormatCSV:
		return WriteCSV(w, analyses)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// WriteJSON writes the analyses as a pretty-printed JSON array.
func WriteJSON(w io.Writer, analyses []types.ResumeAnalysis) error {
	if analyses == nil {
		analyses = []types.ResumeAnalysis{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(analyses); err != nil {
		return fmt.Errorf("failed to encode analyses: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"id", "resume_id", "filename", "created_at", "is_best",
	"skill_match", "experience", "education", "format", "keyword_density", "timeline",
	"ats_score", "match_percentage", "final_score",
}

// WriteCSV writes the analyses as CSV with one row per record. The final
// score column carries the composite ranking score.
func WriteCSV(w io.Writer, analyses []types.ResumeAnalysis) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, analysis := range analyses {
		final := scoring.CompositeScore(
			analysis.External.ATSScore,
			analysis.External.MatchPercentage,
			analysis.ComponentScores.SkillMatch,
		)
		row := []string{
			analysis.ID,
			analysis.ResumeID,
			analysis.Filename,
			analysis.CreatedAt.UTC().Format(time.RFC3339),
			strconv.FormatBool(analysis.IsBest),
			formatScore(analysis.ComponentScores.SkillMatch),
			formatScore(analysis.ComponentScores.Experience),
			formatScore(analysis.ComponentScores.Education),
			formatScore(analysis.ComponentScores.Format),
			formatScore(analysis.ComponentScores.KeywordDensity),
			formatScore(analysis.ComponentScores.Timeline),
			formatScore(analysis.External.ATSScore),
			formatScore(analysis.External.MatchPercentage),
			formatScore(final),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
