package output

import (
	"context"
	"io"
)

// Formatter renders run reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds per-file details.
	Verbose bool

	// Quiet prints only the process identifiers.
	Quiet bool
}
