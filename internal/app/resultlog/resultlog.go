// Package resultlog keeps the timestamped results of a calculator tab.
//
// A Log is append-only: entries are never edited or removed, and callers only
// ever receive copies. It belongs to presentation state, not to the formulas.
package resultlog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTimestampLayout = "2006-01-02 15:04:05"
	DefaultSeparator       = "----------------------------------------"
)

// Entry is one appended result.
type Entry struct {
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

type Log struct {
	entries   []Entry
	now       func() time.Time
	newID     func() string
	layout    string
	separator string
}

type Option func(*Log)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithIDs replaces uuid generation; useful for tests.
func WithIDs(newID func() string) Option {
	return func(l *Log) { l.newID = newID }
}

func WithTimestampLayout(layout string) Option {
	return func(l *Log) {
		if strings.TrimSpace(layout) != "" {
			l.layout = layout
		}
	}
}

func WithSeparator(sep string) Option {
	return func(l *Log) {
		if sep != "" {
			l.separator = sep
		}
	}
}

func New(opts ...Option) *Log {
	l := &Log{
		now:       time.Now,
		newID:     uuid.NewString,
		layout:    DefaultTimestampLayout,
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append stamps text with the current time and a fresh ID and adds it at the end.
func (l *Log) Append(text string) Entry {
	e := Entry{
		ID:   l.newID(),
		At:   l.now(),
		Text: text,
	}
	l.entries = append(l.entries, e)
	return e
}

// Entries returns a copy of the entries in insertion order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

// Render prints every entry as "[timestamp]", its text and a separator line.
func (l *Log) Render() string {
	if len(l.entries) == 0 {
		return ""
	}

	var b strings.Builder
	for i, e := range l.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		b.WriteString(e.At.Format(l.layout))
		b.WriteString("]\n")
		b.WriteString(e.Text)
		b.WriteByte('\n')
		b.WriteString(l.separator)
	}
	return b.String()
}
