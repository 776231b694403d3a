// Package statfile reads and writes per-process stat files.
//
// A stat file holds one record per observation. Bucket mode records are
// "<timestep> <level>\n"; process mode records are "<timestep> <line>" where
// line is the original trace line with its own newline.
package statfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/schedtrace/tracesplit/pkg/config"
	"github.com/schedtrace/tracesplit/pkg/splitter"
)

// File describes a stat file that was written.
type File struct {
	Path    string
	Suffix  string
	Records int
	PIDs    []int
}

// Writer writes groups to stat files in a directory.
type Writer struct {
	dir    string
	prefix string
	log    logrus.FieldLogger
}

// NewWriter creates a writer for dir. A nil logger discards messages.
func NewWriter(dir, prefix string, log logrus.FieldLogger) *Writer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Writer{dir: dir, prefix: prefix, log: log}
}

// Path returns the file path used for a group suffix.
func (w *Writer) Path(suffix string) string {
	return filepath.Join(w.dir, w.prefix+suffix)
}

// WriteAll writes every group in order. Files written before a failure are
// left in place.
func (w *Writer) WriteAll(ctx context.Context, groups []*splitter.Group) ([]File, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	files := make([]File, 0, len(groups))
	for _, g := range groups {
		select {
		case <-ctx.Done():
			return files, ctx.Err()
		default:
		}

		f, err := w.WriteGroup(g)
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}

	return files, nil
}

// WriteGroup creates (or truncates) the group's file and writes all records.
func (w *Writer) WriteGroup(g *splitter.Group) (File, error) {
	path := w.Path(g.Suffix)

	out, err := os.Create(path) // #nosec G304 -- output path is built from config and trace pids
	if err != nil {
		return File{}, fmt.Errorf("creating %s: %w", path, err)
	}

	buf := bufio.NewWriter(out)
	if err := Encode(buf, g); err != nil {
		_ = out.Close()
		return File{}, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := buf.Flush(); err != nil {
		_ = out.Close()
		return File{}, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return File{}, fmt.Errorf("closing %s: %w", path, err)
	}

	w.log.WithFields(logrus.Fields{
		"file":    path,
		"records": len(g.Observations),
	}).Debug("stat file written")

	return File{
		Path:    path,
		Suffix:  g.Suffix,
		Records: len(g.Observations),
		PIDs:    g.PIDs,
	}, nil
}

// Encode writes the group's records to w.
func Encode(w io.Writer, g *splitter.Group) error {
	for _, obs := range g.Observations {
		var err error
		switch g.Mode {
		case config.ModeProcess:
			_, err = fmt.Fprintf(w, "%d %s", obs.Timestep, obs.Line)
		default:
			_, err = fmt.Fprintf(w, "%d %d\n", obs.Timestep, obs.Level)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
