package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [<file>...]",
	Short: "Analyze resumes, optionally against a job description",
	Long:  "Analyze an already-uploaded resume by ID, or upload and analyze a batch of resume files. With a batch the best-scoring analysis is flagged.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeID string
	jobFile         string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumeID, "resume", "", "ID of an uploaded resume to analyze")
	analyzeCmd.Flags().StringVarP(&jobFile, "job-file", "j", "", "Path to a job description text file")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if analyzeResumeID == "" && len(args) == 0 {
		return fmt.Errorf("provide --resume <id> or one or more resume files")
	}
	if analyzeResumeID != "" && len(args) > 0 {
		return fmt.Errorf("--resume and file arguments are mutually exclusive")
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	log, err := buildLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jobDescription := ""
	if jobFile != "" {
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobDescription = string(data)
	}

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	p, cleanup, err := buildPipeline(ctx, cfg, s, log)
	if err != nil {
		return err
	}
	defer cleanup()

	printer := observability.NewPrinter(os.Stdout)

	if analyzeResumeID != "" {
		analysis, err := p.Analyze(ctx, analyzeResumeID, jobDescription)
		if err != nil {
			return err
		}
		if verbose {
			printer.PrintAnalysis(analysis)
			return nil
		}
		printAnalysis(analysis.Filename, analysis.ComponentScores.SkillMatch,
			analysis.External.ATSScore, analysis.External.MatchPercentage, false)
		return nil
	}

	result, err := p.AnalyzeBatch(ctx, args, jobDescription)
	if err != nil {
		return err
	}
	for i, scored := range result.Analyses {
		printAnalysis(scored.Analysis.Filename, scored.FinalScore,
			scored.Analysis.External.ATSScore, scored.Analysis.External.MatchPercentage,
			i == result.BestIndex)
		if verbose {
			printer.PrintAnalysis(&scored.Analysis)
		}
	}
	return nil
}

func printAnalysis(filename string, score, ats, match float64, best bool) {
	marker := ""
	if best {
		marker = "  <- best"
	}
	fmt.Fprintf(os.Stdout, "%s: score %.2f (ats %.1f, match %.1f)%s\n",
		filename, score, ats, match, marker)
}
