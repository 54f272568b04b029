// Package sessionlog records every line shown to and read from the user
// during one run, so the transcript can be saved with the "log" command.
package sessionlog

import (
	"strings"

	"github.com/google/uuid"
)

// Sink receives transcript entries.
type Sink interface {
	Record(entry string)
}

// Ensure Log implements Sink
var _ Sink = (*Log)(nil)

// Log is an in-memory, append-only transcript.
type Log struct {
	id      string
	entries []string
}

func New() *Log {
	return &Log{id: uuid.New().String()}
}

// ID identifies the run this transcript belongs to.
func (l *Log) ID() string { return l.id }

func (l *Log) Record(entry string) {
	l.entries = append(l.entries, entry)
}

func (l *Log) Len() int { return len(l.entries) }

// Entries returns a copy of the transcript in chronological order.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// String joins the entries one per line.
func (l *Log) String() string {
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e)
		b.WriteString("\n")
	}
	return b.String()
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Record(string) {}
