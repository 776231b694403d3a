// Package splitter groups trace lines into per-process time series.
package splitter

import (
	"sort"
	"time"

	"github.com/schedtrace/tracesplit/pkg/config"
)

// Observation is one trace line routed to a group.
type Observation struct {
	// Timestep is the line's 0-based position in the trace.
	Timestep int

	// Level is the scheduling level (bucket mode only).
	Level int

	// Line is the original line text including its newline (process mode only).
	Line string
}

// Group is the set of observations written to one output file.
type Group struct {
	// Suffix completes the output file name after the configured prefix.
	Suffix string

	// Mode is the grouping mode that produced the group.
	Mode config.Mode

	// PIDs lists the process identifiers routed here, in first-seen order.
	PIDs []int

	// Observations are ordered by increasing timestep.
	Observations []Observation
}

func (g *Group) add(pid int, obs Observation) {
	if !containsPID(g.PIDs, pid) {
		g.PIDs = append(g.PIDs, pid)
	}
	g.Observations = append(g.Observations, obs)
}

func containsPID(pids []int, pid int) bool {
	for _, p := range pids {
		if p == pid {
			return true
		}
	}
	return false
}

// Result contains the complete output of a split.
type Result struct {
	// Mode is the grouping mode used.
	Mode config.Mode

	// Groups are the output groups, ordered by process identifier in process
	// mode and as (bucket pid, other) in bucket mode.
	Groups []*Group

	// Metadata provides context about the run.
	Metadata Metadata
}

// Metadata provides context about a split run.
type Metadata struct {
	// Source is the trace file that was split.
	Source string

	// StartTime is when the split began.
	StartTime time.Time

	// EndTime is when the split completed.
	EndTime time.Time

	// LinesProcessed is the number of trace lines read.
	LinesProcessed int
}

// Observations returns the total number of observations across all groups.
func (r *Result) Observations() int {
	total := 0
	for _, g := range r.Groups {
		total += len(g.Observations)
	}
	return total
}

// PIDs returns the distinct process identifiers seen, ascending.
func (r *Result) PIDs() []int {
	var pids []int
	for _, g := range r.Groups {
		for _, pid := range g.PIDs {
			if !containsPID(pids, pid) {
				pids = append(pids, pid)
			}
		}
	}
	sort.Ints(pids)
	return pids
}
