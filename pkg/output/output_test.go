package output

import (
	"time"

	"github.com/fatih/color"

	"github.com/schedtrace/tracesplit/pkg/config"
	"github.com/schedtrace/tracesplit/pkg/splitter"
	"github.com/schedtrace/tracesplit/pkg/statfile"
)

func init() {
	color.NoColor = true
}

func createTestReport() *Report {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	result := &splitter.Result{
		Mode: config.ModeProcess,
		Groups: []*splitter.Group{
			{Suffix: "2", Mode: config.ModeProcess, PIDs: []int{2}, Observations: make([]splitter.Observation, 1)},
			{Suffix: "5", Mode: config.ModeProcess, PIDs: []int{5}, Observations: make([]splitter.Observation, 2)},
		},
		Metadata: splitter.Metadata{
			Source:         "trace.log",
			StartTime:      start,
			EndTime:        start.Add(250 * time.Millisecond),
			LinesProcessed: 3,
		},
	}
	files := []statfile.File{
		{Path: "out/stat_2", Suffix: "2", Records: 1, PIDs: []int{2}},
		{Path: "out/stat_5", Suffix: "5", Records: 2, PIDs: []int{5}},
	}

	return NewReport(result, files, "trace.log", "")
}
