// tracesplit - scheduler trace splitter
//
// tracesplit reads a scheduler simulation trace and writes one time-series
// file per process (or a two-way bucket split) for plotting.
package main

import (
	"os"

	"github.com/schedtrace/tracesplit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
