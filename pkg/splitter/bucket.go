package splitter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/schedtrace/tracesplit/pkg/config"
	"github.com/schedtrace/tracesplit/pkg/parser"
)

// BucketGrouper splits a trace two ways: lines of one process identifier go
// to its own group, lines of every other identifier share a second group.
// Both groups are always returned, even when empty.
type BucketGrouper struct {
	pid   int
	other string

	own  *Group
	rest *Group
}

// NewBucketGrouper creates a grouper from the bucket configuration.
func NewBucketGrouper(b config.BucketConfig) *BucketGrouper {
	g := &BucketGrouper{
		pid:   b.PID,
		other: b.Other,
	}
	g.Reset()
	return g
}

// Mode returns config.ModeBucket.
func (g *BucketGrouper) Mode() config.Mode {
	return config.ModeBucket
}

// Process extracts the identifier and level and routes the line.
func (g *BucketGrouper) Process(ctx context.Context, line *parser.TraceLine) error {
	pid, err := line.PID()
	if err != nil {
		return fmt.Errorf("extracting pid: %w", err)
	}

	level, err := line.Level()
	if err != nil {
		return fmt.Errorf("extracting level: %w", err)
	}

	target := g.rest
	if pid == g.pid {
		target = g.own
	}
	target.add(pid, Observation{Timestep: line.Timestep, Level: level})

	return nil
}

// Finalize returns the own group followed by the shared group.
func (g *BucketGrouper) Finalize(ctx context.Context) ([]*Group, error) {
	return []*Group{g.own, g.rest}, nil
}

// Reset clears both groups.
func (g *BucketGrouper) Reset() {
	g.own = &Group{Suffix: strconv.Itoa(g.pid), Mode: config.ModeBucket}
	g.rest = &Group{Suffix: g.other, Mode: config.ModeBucket}
}
