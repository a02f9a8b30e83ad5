package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded resumes",
	RunE:  runList,
}

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of resumes to list (default 50)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	resumes, err := s.ListResumes(ctx, listLimit)
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		fmt.Fprintln(os.Stdout, "No resumes uploaded.")
		return nil
	}
	for _, r := range resumes {
		duplicate := ""
		if r.Facts.IsDuplicate {
			duplicate = fmt.Sprintf("  (duplicate of %s)", r.Facts.DuplicateOf)
		}
		fmt.Fprintf(os.Stdout, "%s  %s  %s  %d skills, %.1f years%s\n",
			r.ID, r.UploadDate.Format("2006-01-02 15:04"), r.Filename,
			len(r.Facts.Skills), r.Facts.ExperienceYears, duplicate)
	}
	return nil
}
