package output

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	labelColor = color.New(color.Bold)
	fileColor  = color.New(color.FgCyan)
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatPIDs(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatPIDs(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("pids:"), JoinPIDs(report.PIDs))
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "%s %s (%s mode)\n", labelColor.Sprint("trace:"), report.Metadata.Source, report.Metadata.Mode)

	for _, file := range report.Files {
		fmt.Fprintf(w, "  %s  %d record(s)", fileColor.Sprint(file.Name), file.Records)
		if f.opts.Verbose && len(file.PIDs) > 0 {
			fmt.Fprintf(w, "  pids: %s", JoinPIDs(file.PIDs))
		}
		fmt.Fprintln(w)
	}

	if err := f.formatPIDs(report, w); err != nil {
		return err
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Lines processed: %d\n", report.Summary.LinesProcessed)
		fmt.Fprintf(w, "Files written: %d\n", report.Summary.FilesWritten)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

// JoinPIDs renders process identifiers space-separated.
func JoinPIDs(pids []int) string {
	parts := make([]string, len(pids))
	for i, pid := range pids {
		parts[i] = strconv.Itoa(pid)
	}
	return strings.Join(parts, " ")
}
