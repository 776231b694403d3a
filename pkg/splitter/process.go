package splitter

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/schedtrace/tracesplit/pkg/config"
	"github.com/schedtrace/tracesplit/pkg/parser"
)

// ProcessGrouper creates one group per distinct process identifier.
type ProcessGrouper struct {
	groups map[int]*Group
}

// NewProcessGrouper creates an empty per-process grouper.
func NewProcessGrouper() *ProcessGrouper {
	g := &ProcessGrouper{}
	g.Reset()
	return g
}

// Mode returns config.ModeProcess.
func (g *ProcessGrouper) Mode() config.Mode {
	return config.ModeProcess
}

// Process extracts the identifier and appends the raw line to its group,
// creating the group on first encounter.
func (g *ProcessGrouper) Process(ctx context.Context, line *parser.TraceLine) error {
	pid, err := line.PID()
	if err != nil {
		return fmt.Errorf("extracting pid: %w", err)
	}

	group, ok := g.groups[pid]
	if !ok {
		group = &Group{Suffix: strconv.Itoa(pid), Mode: config.ModeProcess}
		g.groups[pid] = group
	}
	group.add(pid, Observation{Timestep: line.Timestep, Line: line.Raw})

	return nil
}

// Finalize returns the groups ordered by process identifier.
func (g *ProcessGrouper) Finalize(ctx context.Context) ([]*Group, error) {
	pids := make([]int, 0, len(g.groups))
	for pid := range g.groups {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	groups := make([]*Group, 0, len(pids))
	for _, pid := range pids {
		groups = append(groups, g.groups[pid])
	}
	return groups, nil
}

// Reset drops all groups.
func (g *ProcessGrouper) Reset() {
	g.groups = make(map[int]*Group)
}
