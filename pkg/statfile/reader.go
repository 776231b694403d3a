package statfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/schedtrace/tracesplit/pkg/parser"
)

// Point is one (timestep, level) sample read back from a stat file.
type Point struct {
	Timestep int
	Level    int
}

// Series is the content of one stat file.
type Series struct {
	// Name is the file's base name.
	Name string

	// Path is the file path.
	Path string

	Points []Point
}

// ReadFile reads a stat file written in either mode.
func ReadFile(path string) (*Series, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening stat file %s: %w", path, err)
	}
	defer f.Close()

	points, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &Series{
		Name:   filepath.Base(path),
		Path:   path,
		Points: points,
	}, nil
}

// Decode parses stat records. A two-token record is "<timestep> <level>";
// a longer record embeds a trace line whose level is extracted from the
// trace's level field.
func Decode(r io.Reader) ([]Point, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	var points []Point
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected at least 2 fields, got %d", lineNum, len(fields))
		}

		t, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid timestep: %w", lineNum, err)
		}

		var level int
		if len(fields) == 2 {
			level, err = strconv.Atoi(fields[1])
		} else {
			level, err = parser.IntField(fields[1:], parser.LevelField)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid level: %w", lineNum, err)
		}

		points = append(points, Point{Timestep: t, Level: level})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return points, nil
}
