package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/observability"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload resume documents",
	Long:  "Parse one or more resume documents (PDF, DOCX or TXT), extract structured facts, flag duplicates and store the records.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
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

	p, cleanup, err := buildPipeline(ctx, cfg, s, log)
	if err != nil {
		return err
	}
	defer cleanup()

	printer := observability.NewPrinter(os.Stdout)
	for _, path := range args {
		resume, err := p.Upload(ctx, path)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Uploaded %s (id: %s)\n", resume.Filename, resume.ID)
		if verbose {
			printer.PrintResumeFacts(resume)
			continue
		}
		fmt.Fprintf(os.Stdout, "  Skills: %d, Experience: %.1f years, Education entries: %d\n",
			len(resume.Facts.Skills), resume.Facts.ExperienceYears, len(resume.Facts.Education))
		if resume.Facts.IsDuplicate {
			fmt.Fprintf(os.Stdout, "  Warning: duplicate of resume %s\n", resume.Facts.DuplicateOf)
		}
	}
	return nil
}
