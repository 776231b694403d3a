package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/schedtrace/tracesplit/pkg/chart"
	"github.com/schedtrace/tracesplit/pkg/statfile"
)

// PlotOptions holds command-line options for the plot command.
type PlotOptions struct {
	Output string
	Title  string
	Width  float64
	Height float64
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot <stat-file>...",
		Short: "Render stat files as a level-over-time chart",
		Long: `Render one or more stat files as a line chart, one line per file.

Arguments may be glob patterns (quote them), e.g. 'stat_*'. Files from both
modes are accepted; for process mode files the level is read from the
embedded trace line.

The image format follows the output file extension (png, svg, pdf).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "levels.png", "Output image file")
	cmd.Flags().StringVar(&opts.Title, "title", chart.DefaultTitle, "Chart title")
	cmd.Flags().Float64Var(&opts.Width, "width", 8, "Image width in inches")
	cmd.Flags().Float64Var(&opts.Height, "height", 4, "Image height in inches")

	return cmd
}

func runPlot(cmd *cobra.Command, args []string, opts *PlotOptions) error {
	files, err := statfile.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding stat files: %w", err)
	}

	series := make([]*statfile.Series, 0, len(files))
	for _, f := range files {
		s, err := statfile.ReadFile(f)
		if err != nil {
			return err
		}
		series = append(series, s)
	}

	path, err := chart.Save(series, opts.Output, chart.Options{
		Title:  opts.Title,
		Width:  vg.Length(opts.Width) * vg.Inch,
		Height: vg.Length(opts.Height) * vg.Inch,
	})
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d series)\n", path, len(series))
	return nil
}
