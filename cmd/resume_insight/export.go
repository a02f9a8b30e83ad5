package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export analysis records",
	Long:  "Export stored analysis records as JSON or CSV, optionally filtered to a single resume.",
	RunE:  runExport,
}

var (
	exportFormat   string
	exportResumeID string
	exportOutPath  string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json or csv")
	exportCmd.Flags().StringVar(&exportResumeID, "resume", "", "Only export analyses for this resume ID")
	exportCmd.Flags().StringVarP(&exportOutPath, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	format := export.Format(exportFormat)
	if format != export.FormatJSON && format != export.FormatCSV {
		return fmt.Errorf("unsupported export format: %s", exportFormat)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	analyses, err := s.ListAnalyses(ctx, exportResumeID)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if exportOutPath != "" {
		f, err := os.Create(exportOutPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := export.Write(out, format, analyses); err != nil {
		return err
	}
	if exportOutPath != "" {
		fmt.Fprintf(os.Stdout, "Exported %d analyses to %s\n", len(analyses), exportOutPath)
	}
	return nil
}
