package parser

import (
	"context"
	"fmt"
	"io"
	"os"
)

// FileSource implements TraceSource for a single trace file.
// The whole file is read into memory on the first call to Next.
type FileSource struct {
	path string

	lines  []string
	loaded bool
	next   int
}

// NewFileSource creates a TraceSource that reads the given trace file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the trace file path.
func (s *FileSource) Path() string {
	return s.path
}

// Next returns the next trace line with its timestep.
// Returns io.EOF when the file has been exhausted.
func (s *FileSource) Next(ctx context.Context) (*TraceLine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.loaded {
		if err := s.load(); err != nil {
			return nil, err
		}
	}

	if s.next >= len(s.lines) {
		return nil, io.EOF
	}

	line := &TraceLine{
		Raw:      s.lines[s.next],
		Timestep: s.next,
		Source:   s.path,
	}
	s.next++

	return line, nil
}

// Close releases the buffered lines.
func (s *FileSource) Close() error {
	s.lines = nil
	return nil
}

func (s *FileSource) load() error {
	data, err := os.ReadFile(s.path) // #nosec G304 -- user-provided trace path is expected
	if err != nil {
		return fmt.Errorf("opening trace %s: %w", s.path, err)
	}

	s.lines = SplitLines(string(data))
	s.loaded = true

	return nil
}

// SplitLines splits content into lines. "\n", "\r\n" and a lone "\r" all
// end a line and are returned as a single trailing "\n". A final line without
// a terminator is still returned; empty content has no lines.
func SplitLines(content string) []string {
	var lines []string
	start := 0

	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i+1])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i]+"\n")
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}

	if start < len(content) {
		lines = append(lines, content[start:])
	}

	return lines
}
