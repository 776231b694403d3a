// Package cli provides the command-line interface for tracesplit.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/schedtrace/tracesplit/internal/cli/commands"
)

// Execute runs the root command with the process arguments and returns the
// exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line args and returns the exit code:
// 0 on success (including the usage message), 1 on any error.
func Run(args []string, stdout, stderr io.Writer) int {
	var rootCmd *cobra.Command
	if isTraceArg(args) {
		rootCmd = newSplitOnlyCommand()
	} else {
		rootCmd = NewRootCommand()
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// isTraceArg reports whether args is a single existing regular file. Such an
// argument is always split, even when it shares a subcommand's name.
func isTraceArg(args []string) bool {
	if len(args) != 1 {
		return false
	}
	info, err := os.Stat(args[0])
	return err == nil && info.Mode().IsRegular()
}

func newSplitOnlyCommand() *cobra.Command {
	cmd := commands.NewSplitCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// NewRootCommand creates the root cobra command. Run without a subcommand it
// splits the trace given as its only argument.
func NewRootCommand() *cobra.Command {
	rootCmd := newSplitOnlyCommand()

	// Add subcommands
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
