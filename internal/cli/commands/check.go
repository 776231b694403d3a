package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schedtrace/tracesplit/pkg/output"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	flags := &ConfigFlags{}

	cmd := &cobra.Command{
		Use:   "check <stat>",
		Short: "Parse a trace without writing stat files",
		Long: `Parse a trace file with the configured mode and report what a split
would produce, without creating any files.

Fails on the first line whose process id (or level, in bucket mode) cannot
be parsed, naming the line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *ConfigFlags) error {
	tracePath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := flags.load(ctx, cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Checking %s...\n", tracePath)

	result, err := splitTrace(ctx, cfg, tracePath, nil)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	fmt.Fprintf(w, "\nTrace valid!\n")
	fmt.Fprintf(w, "  Mode:  %s\n", result.Mode)
	fmt.Fprintf(w, "  Lines: %d\n", result.Metadata.LinesProcessed)
	fmt.Fprintf(w, "  pids:  %s\n", output.JoinPIDs(result.PIDs()))

	fmt.Fprintf(w, "\nFiles:\n")
	for _, g := range result.Groups {
		fmt.Fprintf(w, "  %s%s: %d record(s)\n", cfg.FilePrefix, g.Suffix, len(g.Observations))
	}

	return nil
}
