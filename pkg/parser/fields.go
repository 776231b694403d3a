package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Token positions fixed by the scheduler's trace format:
//
//	pid: 3, lv: 0, ticks: 12, ...
const (
	PIDField   = 1
	LevelField = 3
)

// FieldSeparator is stripped from both ends of a token before parsing.
const FieldSeparator = ","

// ErrMissingField is returned when a line has too few tokens.
var ErrMissingField = errors.New("missing field")

// FieldError describes a token that could not be extracted from a trace line.
type FieldError struct {
	// Timestep is the 0-based line position in the trace.
	Timestep int

	// Index is the token position that was requested.
	Index int

	// Token is the offending token, empty when it was absent.
	Token string

	Err error
}

func (e *FieldError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: token %d: %v", e.Timestep, e.Index, e.Err)
	}
	return fmt.Sprintf("line %d: token %d %q: %v", e.Timestep, e.Index, e.Token, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// IntField extracts the integer at token position index, stripping the field
// separator first.
func IntField(fields []string, index int) (int, error) {
	if index < 0 || index >= len(fields) {
		return 0, &FieldError{Index: index, Err: ErrMissingField}
	}

	token := fields[index]
	n, err := strconv.Atoi(ungroupDigits(strings.Trim(token, FieldSeparator)))
	if err != nil {
		return 0, &FieldError{Index: index, Token: token, Err: err}
	}

	return n, nil
}

// ungroupDigits removes single underscores placed between two digits, as in
// "1_000". Any other underscore is left for strconv to reject.
func ungroupDigits(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return s
		}
	}

	return strings.ReplaceAll(s, "_", "")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// PID extracts the process identifier from a trace line.
func (l *TraceLine) PID() (int, error) {
	return l.intField(PIDField)
}

// Level extracts the scheduling level from a trace line.
func (l *TraceLine) Level() (int, error) {
	return l.intField(LevelField)
}

func (l *TraceLine) intField(index int) (int, error) {
	n, err := IntField(l.Fields(), index)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			fe.Timestep = l.Timestep
		}
		return 0, err
	}
	return n, nil
}
