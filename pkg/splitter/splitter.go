package splitter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/schedtrace/tracesplit/pkg/config"
	"github.com/schedtrace/tracesplit/pkg/parser"
)

// Splitter reads a trace and groups its lines with a Grouper.
type Splitter struct {
	grouper Grouper
	log     logrus.FieldLogger
}

// Option configures splitter behavior.
type Option func(*Splitter)

// WithLogger sets the logger used for progress messages.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Splitter) {
		if log != nil {
			s.log = log
		}
	}
}

// WithGrouper overrides the grouper chosen from the configuration.
func WithGrouper(g Grouper) Option {
	return func(s *Splitter) {
		s.grouper = g
	}
}

// New creates a splitter for the configured mode.
func New(cfg *config.Config, opts ...Option) (*Splitter, error) {
	s := &Splitter{log: discardLogger()}

	for _, opt := range opts {
		opt(s)
	}

	if s.grouper == nil {
		g, err := newGrouper(cfg)
		if err != nil {
			return nil, err
		}
		s.grouper = g
	}

	return s, nil
}

func newGrouper(cfg *config.Config) (Grouper, error) {
	switch cfg.Mode {
	case config.ModeBucket:
		return NewBucketGrouper(cfg.Bucket), nil
	case config.ModeProcess:
		return NewProcessGrouper(), nil
	default:
		return nil, fmt.Errorf("unknown mode: %s", cfg.Mode)
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Mode returns the grouping mode in use.
func (s *Splitter) Mode() config.Mode {
	return s.grouper.Mode()
}

// Split reads every line from source and groups it.
// The first line that cannot be parsed aborts the split.
func (s *Splitter) Split(ctx context.Context, source parser.TraceSource) (*Result, error) {
	result := &Result{
		Mode: s.grouper.Mode(),
		Metadata: Metadata{
			StartTime: time.Now(),
		},
	}

	s.grouper.Reset()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading trace: %w", err)
		}

		if result.Metadata.Source == "" {
			result.Metadata.Source = line.Source
		}
		result.Metadata.LinesProcessed++

		if err := s.grouper.Process(ctx, line); err != nil {
			return nil, fmt.Errorf("processing %s: %w", line.Source, err)
		}
	}

	groups, err := s.grouper.Finalize(ctx)
	if err != nil {
		return nil, fmt.Errorf("finalizing groups: %w", err)
	}
	result.Groups = groups
	result.Metadata.EndTime = time.Now()

	s.log.WithFields(logrus.Fields{
		"source": result.Metadata.Source,
		"lines":  result.Metadata.LinesProcessed,
		"groups": len(groups),
		"mode":   result.Mode,
	}).Debug("trace split")

	return result, nil
}
