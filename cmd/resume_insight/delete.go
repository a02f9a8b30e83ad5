package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <resume-id>...",
	Short: "Delete uploaded resumes",
	Long:  "Delete one or more resumes and their analyses.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	for _, id := range args {
		if err := s.DeleteResume(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Deleted resume %s\n", id)
	}
	return nil
}
