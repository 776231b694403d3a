package parser

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func readAll(t *testing.T, source TraceSource) []*TraceLine {
	t.Helper()

	ctx := context.Background()
	var lines []*TraceLine
	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		lines = append(lines, line)
	}
	return lines
}

func writeTrace(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileSource_Next(t *testing.T) {
	path := writeTrace(t, "pid: 3, lv: 0,\npid: 4, lv: 1,\npid: 3, lv: 2,\n")

	source := NewFileSource(path)
	defer source.Close()

	lines := readAll(t, source)
	if len(lines) != 3 {
		t.Fatalf("Got %d lines, want 3", len(lines))
	}

	for i, line := range lines {
		if line.Timestep != i {
			t.Errorf("lines[%d].Timestep = %d, want %d", i, line.Timestep, i)
		}
		if line.Source != path {
			t.Errorf("Source = %q, want %q", line.Source, path)
		}
	}

	if lines[1].Raw != "pid: 4, lv: 1,\n" {
		t.Errorf("Raw = %q, want trailing newline kept", lines[1].Raw)
	}
}

func TestFileSource_LastLineWithoutNewline(t *testing.T) {
	path := writeTrace(t, "pid: 3, lv: 0,\npid: 4, lv: 1,")

	lines := readAll(t, NewFileSource(path))
	if len(lines) != 2 {
		t.Fatalf("Got %d lines, want 2", len(lines))
	}
	if lines[1].Raw != "pid: 4, lv: 1," {
		t.Errorf("Raw = %q", lines[1].Raw)
	}
}

func TestFileSource_EmptyFile(t *testing.T) {
	path := writeTrace(t, "")

	lines := readAll(t, NewFileSource(path))
	if len(lines) != 0 {
		t.Errorf("Got %d lines, want 0", len(lines))
	}
}

func TestFileSource_FileNotFound(t *testing.T) {
	source := NewFileSource("/nonexistent/trace.log")
	defer source.Close()

	_, err := source.Next(context.Background())
	if err == nil {
		t.Fatal("Next() expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Next() error = %v, want os.ErrNotExist", err)
	}
}

func TestFileSource_ContextCancellation(t *testing.T) {
	path := writeTrace(t, "pid: 3, lv: 0,\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource(path).Next(ctx)
	if err != context.Canceled {
		t.Errorf("Next() error = %v, want context.Canceled", err)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", []string{"\n"}},
		{"terminated", "a\nb\n", []string{"a\n", "b\n"}},
		{"unterminated", "a\nb", []string{"a\n", "b"}},
		{"blank middle line", "a\n\nb\n", []string{"a\n", "\n", "b\n"}},
		{"crlf", "a\r\nb\r\n", []string{"a\n", "b\n"}},
		{"cr only", "a\rb\r", []string{"a\n", "b\n"}},
		{"cr unterminated", "a\rb", []string{"a\n", "b"}},
		{"mixed", "a\r\nb\rc\n", []string{"a\n", "b\n", "c\n"}},
		{"blank cr lines", "\r\r\n", []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitLines(%q) = %q, want %q", tt.content, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitLines(%q)[%d] = %q, want %q", tt.content, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTraceLine_PIDAndLevel(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantPID   int
		wantLevel int
	}{
		{"trace format", "pid: 3, lv: 2, ticks: 7\n", 3, 2},
		{"no separator", "pid 12 lv 0", 12, 0},
		{"tabs", "pid:\t5,\tlv:\t1,\n", 5, 1},
		{"negative", "X -1, Y -2,", -1, -2},
		{"leading separator", "X ,7, Y ,1,", 7, 1},
		{"digit grouping", "pid: 1_0, lv: 2,", 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := &TraceLine{Raw: tt.raw}

			pid, err := line.PID()
			if err != nil {
				t.Fatalf("PID() error = %v", err)
			}
			if pid != tt.wantPID {
				t.Errorf("PID() = %d, want %d", pid, tt.wantPID)
			}

			level, err := line.Level()
			if err != nil {
				t.Fatalf("Level() error = %v", err)
			}
			if level != tt.wantLevel {
				t.Errorf("Level() = %d, want %d", level, tt.wantLevel)
			}
		})
	}
}

func TestTraceLine_MissingField(t *testing.T) {
	line := &TraceLine{Raw: "pid: 3,\n", Timestep: 9}

	if _, err := line.PID(); err != nil {
		t.Fatalf("PID() error = %v", err)
	}

	_, err := line.Level()
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Level() error = %v, want ErrMissingField", err)
	}

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Level() error is not a *FieldError: %T", err)
	}
	if fe.Timestep != 9 {
		t.Errorf("FieldError.Timestep = %d, want 9", fe.Timestep)
	}
	if fe.Index != LevelField {
		t.Errorf("FieldError.Index = %d, want %d", fe.Index, LevelField)
	}
}

func TestTraceLine_NonNumericField(t *testing.T) {
	line := &TraceLine{Raw: "pid: abc, lv: 0,", Timestep: 4}

	_, err := line.PID()
	if err == nil {
		t.Fatal("PID() expected error for non-numeric token")
	}

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("PID() error = %v, want wrapped *strconv.NumError", err)
	}

	var fe *FieldError
	if !errors.As(err, &fe) || fe.Token != "abc," {
		t.Errorf("PID() error = %v, want FieldError for token \"abc,\"", err)
	}
}

func TestTraceLine_BlankLine(t *testing.T) {
	line := &TraceLine{Raw: "\n"}

	if _, err := line.PID(); !errors.Is(err, ErrMissingField) {
		t.Errorf("PID() error = %v, want ErrMissingField", err)
	}
}

func TestIntField_BadGrouping(t *testing.T) {
	for _, token := range []string{"_1", "1_", "1__0", "-_1"} {
		if _, err := IntField([]string{token}, 0); err == nil {
			t.Errorf("IntField(%q) expected error", token)
		}
	}
}

func TestIntField_OutOfRange(t *testing.T) {
	if _, err := IntField([]string{"a"}, -1); !errors.Is(err, ErrMissingField) {
		t.Errorf("IntField(-1) error = %v, want ErrMissingField", err)
	}
}
