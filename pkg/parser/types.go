// Package parser provides trace file reading and field extraction.
package parser

import "strings"

// TraceLine is a single line of a scheduler trace.
type TraceLine struct {
	// Raw is the original line content, including its trailing newline
	// when the file had one.
	Raw string

	// Timestep is the 0-based position of the line in its file.
	Timestep int

	// Source is the file path this line came from.
	Source string
}

// Fields splits the line on whitespace.
func (l *TraceLine) Fields() []string {
	return strings.Fields(l.Raw)
}
