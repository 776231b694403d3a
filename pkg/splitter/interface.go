package splitter

import (
	"context"

	"github.com/schedtrace/tracesplit/pkg/config"
	"github.com/schedtrace/tracesplit/pkg/parser"
)

// Grouper routes trace lines to output groups.
// Each grouping mode (bucket, process) implements this interface.
type Grouper interface {
	// Mode returns the grouping mode.
	Mode() config.Mode

	// Process routes a single trace line, updating internal state.
	// Returns an error when a required field cannot be extracted.
	Process(ctx context.Context, line *parser.TraceLine) error

	// Finalize returns the groups built from all processed lines.
	Finalize(ctx context.Context) ([]*Group, error)

	// Reset clears internal state for reuse.
	Reset()
}
