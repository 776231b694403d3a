package commands

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedtrace/tracesplit/pkg/config"
	"github.com/schedtrace/tracesplit/pkg/output"
	"github.com/schedtrace/tracesplit/pkg/parser"
	"github.com/schedtrace/tracesplit/pkg/splitter"
	"github.com/schedtrace/tracesplit/pkg/statfile"
)

// SplitOptions holds command-line options for the split.
type SplitOptions struct {
	ConfigFlags

	OutputDir string
	Report    string
	Verbose   bool
}

// NewSplitCommand creates the command that splits a trace into stat files.
// It is used as the root command.
func NewSplitCommand() *cobra.Command {
	opts := &SplitOptions{}

	cmd := &cobra.Command{
		Use:   "tracesplit <stat>",
		Short: "Split a scheduler trace into per-process stat files",
		Long: `Split a scheduler simulation trace into per-process time series.

Each trace line is one timestep (0-based line number). Token 1 of a line is
the process id and token 3 the scheduling level; trailing commas are ignored.

Modes:
  bucket   stat_3 gets the lines of pid 3, stat_4 every other pid.
           Records are "<timestep> <level>".
  process  stat_<pid> per process id. Records are "<timestep> <line>".
           The process ids found are printed.

Output files are written to the current directory unless --output-dir is set.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, opts)
		},
	}

	opts.ConfigFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "d", "", "Directory for stat files (default: current directory)")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Report format (auto|text|json|none)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log progress and show per-file details")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string, opts *SplitOptions) error {
	if len(args) != 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "usage: %s <stat>\n", cmd.Root().Name())
		return nil
	}
	tracePath := args[0]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := opts.load(ctx, cmd, func(c *config.Config) {
		if opts.OutputDir != "" {
			c.OutputDir = opts.OutputDir
		}
		if opts.Report != "" {
			c.Report = config.ReportFormat(opts.Report)
		}
	})
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	result, err := splitTrace(ctx, cfg, tracePath, log)
	if err != nil {
		return err
	}

	// All lines are parsed before the first file is created.
	writer := statfile.NewWriter(cfg.OutputDir, cfg.FilePrefix, log)
	files, err := writer.WriteAll(ctx, result.Groups)
	if err != nil {
		return fmt.Errorf("writing stat files: %w", err)
	}

	log.WithFields(logrus.Fields{
		"source": tracePath,
		"lines":  result.Metadata.LinesProcessed,
		"files":  len(files),
	}).Info("split complete")

	report := output.NewReport(result, files, tracePath, opts.ConfigFile)

	formatter := createFormatter(cfg, opts)
	if formatter == nil {
		return nil
	}
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// splitTrace parses the whole trace at path with the configured mode.
func splitTrace(ctx context.Context, cfg *config.Config, path string, log logrus.FieldLogger) (*splitter.Result, error) {
	s, err := splitter.New(cfg, splitter.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("creating splitter: %w", err)
	}

	source := parser.NewFileSource(path)
	defer source.Close()

	result, err := s.Split(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("splitting trace: %w", err)
	}

	return result, nil
}

// createFormatter returns nil when nothing should be printed.
func createFormatter(cfg *config.Config, opts *SplitOptions) output.Formatter {
	formatOpts := output.FormatOptions{Verbose: opts.Verbose}

	switch cfg.Report {
	case config.ReportText:
		return output.NewTextFormatter(formatOpts)
	case config.ReportJSON:
		return output.NewJSONFormatter(formatOpts)
	case config.ReportNone:
		return nil
	default:
		// auto: the pid list is the only output, and only in process mode.
		if cfg.Mode != config.ModeProcess {
			return nil
		}
		formatOpts.Quiet = true
		return output.NewTextFormatter(formatOpts)
	}
}
