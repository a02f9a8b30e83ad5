package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/recommend"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage the job catalog",
}

var jobsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Load a job catalog document and store it",
	Long:  "Parse a job catalog JSON file, store it as the active catalog document and report how many entries the recommendation model will see.",
	RunE:  runJobsRefresh,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries of the active job catalog",
	RunE:  runJobsList,
}

var jobsDatasetPath string

func init() {
	jobsRefreshCmd.Flags().StringVarP(&jobsDatasetPath, "dataset", "d", "", "Path to the job catalog JSON file (required)")
	_ = jobsRefreshCmd.MarkFlagRequired("dataset")

	jobsCmd.AddCommand(jobsRefreshCmd)
	jobsCmd.AddCommand(jobsListCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsRefresh(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	document, err := os.ReadFile(jobsDatasetPath)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	entries := recommend.ParseCatalog(document)
	if len(entries) == 0 {
		return fmt.Errorf("dataset contains no usable job entries")
	}

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.SaveCatalogDocument(ctx, document)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Stored job catalog %s with %d entries\n", id, len(entries))
	return nil
}

func runJobsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	source, err := catalogSource(cfg, s)
	if err != nil {
		return err
	}
	engine := recommend.NewEngine(source, log)
	engine.Refresh(ctx)

	jobs := engine.Jobs()
	if len(jobs) == 0 {
		fmt.Fprintln(os.Stdout, "No job catalog loaded.")
		return nil
	}
	for _, job := range jobs {
		fmt.Fprintf(os.Stdout, "%s: %s at %s [%s]\n", job.ID, job.Title, job.Company, job.Category)
	}
	return nil
}
