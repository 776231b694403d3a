// Package output provides formatting for split run reports.
package output

import (
	"path/filepath"
	"time"

	"github.com/schedtrace/tracesplit/pkg/config"
	"github.com/schedtrace/tracesplit/pkg/splitter"
	"github.com/schedtrace/tracesplit/pkg/statfile"
)

// Report is the complete run output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// PIDs lists the distinct process identifiers, ascending.
	PIDs []int `json:"pids"`

	// Files describes each stat file written.
	Files []FileEntry `json:"files"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// LinesProcessed is the number of trace lines read.
	LinesProcessed int `json:"lines_processed"`

	// Processes is the number of distinct process identifiers.
	Processes int `json:"processes"`

	// FilesWritten is the number of stat files written.
	FilesWritten int `json:"files_written"`
}

// FileEntry describes one stat file.
type FileEntry struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Records int    `json:"records"`
	PIDs    []int  `json:"pids"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Source is the trace file that was split.
	Source string `json:"source"`

	// Mode is the grouping mode used.
	Mode config.Mode `json:"mode"`

	// ConfigFile is the configuration file used, if any.
	ConfigFile string `json:"config_file,omitempty"`

	// AnalyzedAt is when the split completed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the split took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from a split result and the files written for it.
func NewReport(result *splitter.Result, files []statfile.File, source, configFile string) *Report {
	pids := result.PIDs()

	report := &Report{
		Summary: Summary{
			LinesProcessed: result.Metadata.LinesProcessed,
			Processes:      len(pids),
			FilesWritten:   len(files),
		},
		PIDs:  pids,
		Files: make([]FileEntry, 0, len(files)),
		Metadata: Metadata{
			Source:     source,
			Mode:       result.Mode,
			ConfigFile: configFile,
			AnalyzedAt: result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
	}

	for _, f := range files {
		report.Files = append(report.Files, FileEntry{
			Name:    filepath.Base(f.Path),
			Path:    f.Path,
			Records: f.Records,
			PIDs:    f.PIDs,
		})
	}

	return report
}
