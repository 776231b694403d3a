package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

var versionColor = color.New(color.FgGreen, color.Bold)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the version of tracesplit.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tracesplit %s\n", versionColor.Sprint(Version))
		},
	}
}
