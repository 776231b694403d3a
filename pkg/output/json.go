package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON. Verbose output is indented; quiet
// output is just the array of process identifiers.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.opts.Verbose {
		encoder.SetIndent("", "  ")
	}

	var v any = report
	if f.opts.Quiet {
		pids := report.PIDs
		if pids == nil {
			pids = []int{}
		}
		v = pids
	}

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
