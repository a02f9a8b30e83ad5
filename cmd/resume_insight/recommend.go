package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/recommend"
	"github.com/jonathan/resume-insight/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend jobs for an uploaded resume",
	Long:  "Build the recommendation model from the job catalog and print the top matching jobs for a stored resume.",
	RunE:  runRecommend,
}

var (
	recommendResumeID string
	recommendTopN     int
)

func init() {
	recommendCmd.Flags().StringVar(&recommendResumeID, "resume", "", "ID of an uploaded resume (required)")
	recommendCmd.Flags().IntVar(&recommendTopN, "top", 5, "Number of recommendations to return (1-20)")

	_ = recommendCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(recommendCmd)
}

// catalogSource prefers the configured dataset file and falls back to the
// latest catalog document stored in the database.
func catalogSource(cfg config.Config, s *store.Store) (recommend.Source, error) {
	if cfg.DatasetPath != "" {
		return recommend.FileSource{Path: cfg.DatasetPath}, nil
	}
	if s != nil {
		return store.CatalogSource{Store: s}, nil
	}
	return nil, fmt.Errorf("no job catalog available (set JOB_DATASET_PATH or load one with 'jobs refresh')")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if recommendTopN < 1 || recommendTopN > 20 {
		return fmt.Errorf("--top must be between 1 and 20")
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

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	resume, err := s.GetResume(ctx, recommendResumeID)
	if err != nil {
		return err
	}
	if resume == nil {
		return fmt.Errorf("resume not found: %s", recommendResumeID)
	}

	source, err := catalogSource(cfg, s)
	if err != nil {
		return err
	}
	engine := recommend.NewEngine(source, log)
	engine.Refresh(ctx)
	if !engine.Built() {
		return fmt.Errorf("recommendation model could not be built from the job catalog")
	}

	recs := engine.Recommend(resume.ParsedText, recommendTopN)
	if len(recs) == 0 {
		fmt.Fprintln(os.Stdout, "No recommendations.")
		return nil
	}
	if verbose {
		observability.NewPrinter(os.Stdout).PrintRecommendations(recs)
		return nil
	}
	for i, rec := range recs {
		fmt.Fprintf(os.Stdout, "%d. %s at %s [%s] score %.4f (similarity %.4f, probability %.4f)\n",
			i+1, rec.Title, rec.Company, rec.Category, rec.FinalScore, rec.SimilarityScore, rec.ProbabilityScore)
	}
	return nil
}
