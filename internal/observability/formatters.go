// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeFacts outputs a human-readable summary of the facts extracted
// from an uploaded resume.
func (p *Printer) PrintResumeFacts(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("File:       %s (%s)\n", resume.Filename, resume.FileType))
	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", resume.Facts.ExperienceYears))
	sb.WriteString("\n")

	if len(resume.Facts.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(resume.Facts.Skills)))
		count := min(len(resume.Facts.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Facts.Skills[i]))
		}
		if len(resume.Facts.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Facts.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Facts.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(resume.Facts.Education), 3)
		for i := 0; i < count; i++ {
			entry := resume.Facts.Education[i]
			if len(entry) > 50 {
				entry = entry[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		if len(resume.Facts.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Facts.Education)-3))
		}
		sb.WriteString("\n")
	}

	if resume.Facts.IsDuplicate {
		sb.WriteString(fmt.Sprintf("⚠ Duplicate of resume %s\n", resume.Facts.DuplicateOf))
	}

	p.printBox("EXTRACTED RESUME FACTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the component scores and external analysis verdicts
// for one analysis record.
func (p *Printer) PrintAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Resume:   %s\n\n", analysis.Filename))
	sb.WriteString("Component Scores:\n")
	sb.WriteString(fmt.Sprintf("  Skill match:      %5.1f\n", analysis.ComponentScores.SkillMatch))
	sb.WriteString(fmt.Sprintf("  Experience:       %5.1f\n", analysis.ComponentScores.Experience))
	sb.WriteString(fmt.Sprintf("  Education:        %5.1f\n", analysis.ComponentScores.Education))
	sb.WriteString(fmt.Sprintf("  Format:           %5.1f\n", analysis.ComponentScores.Format))
	sb.WriteString(fmt.Sprintf("  Keyword density:  %5.1f\n", analysis.ComponentScores.KeywordDensity))
	sb.WriteString(fmt.Sprintf("  Timeline:         %5.1f\n", analysis.ComponentScores.Timeline))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("ATS score: %.1f   Match: %.1f%%\n", analysis.External.ATSScore, analysis.External.MatchPercentage))

	if len(analysis.External.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(analysis.External.Strengths), 3)
		for i := 0; i < count; i++ {
			s := analysis.External.Strengths[i]
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
		if len(analysis.External.Strengths) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.External.Strengths)-3))
		}
	}

	if len(analysis.External.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		count := min(len(analysis.External.Weaknesses), 3)
		for i := 0; i < count; i++ {
			w := analysis.External.Weaknesses[i]
			if len(w) > 50 {
				w = w[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", w))
		}
		if len(analysis.External.Weaknesses) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.External.Weaknesses)-3))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top ranked job recommendations with their
// blended scores.
func (p *Printer) PrintRecommendations(recs []types.JobRecommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total recommendations: %d\n\n", len(recs)))

	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		title := rec.Title
		if rec.Company != "" {
			title += " at " + rec.Company
		}
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.4f (sim %.4f, prob %.4f)\n", rec.FinalScore, rec.SimilarityScore, rec.ProbabilityScore))
		sb.WriteString(fmt.Sprintf("    Category: %s\n", rec.Category))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more recommendations", len(recs)-maxItemsToShow))
	}

	p.printBox("JOB RECOMMENDATIONS", sb.String())
}
