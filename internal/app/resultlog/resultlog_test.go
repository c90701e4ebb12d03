package resultlog

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func fixedClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		t := start.Add(time.Duration(n) * time.Second)
		n++
		return t
	}
}

func TestAppendKeepsOrder(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	l := New(WithNow(fixedClock(start)))

	l.Append("Dilution Rate (D): 2.0000")
	l.Append("Productivity (P): 7.5000")
	l.Append("Error: Volume must be greater than zero.")

	got := l.Entries()
	if len(got) != 3 || l.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Text != "Dilution Rate (D): 2.0000" || got[2].Text != "Error: Volume must be greater than zero." {
		t.Fatalf("unexpected order: %+v", got)
	}
	for i := 1; i < len(got); i++ {
		if !got[i].At.After(got[i-1].At) {
			t.Fatalf("expected increasing timestamps at %d", i)
		}
	}
}

func TestAppendAssignsUUIDs(t *testing.T) {
	l := New()
	a := l.Append("a")
	b := l.Append("b")

	if _, err := uuid.Parse(a.ID); err != nil {
		t.Fatalf("expected uuid, got %q: %v", a.ID, err)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := New()
	l.Append("first")

	got := l.Entries()
	got[0].Text = "tampered"

	if l.Entries()[0].Text != "first" {
		t.Fatalf("expected log to be unaffected by callers")
	}
}

func TestRender(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	n := 0
	l := New(
		WithNow(fixedClock(start)),
		WithIDs(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		WithSeparator("---"),
	)

	if l.Render() != "" {
		t.Fatalf("expected empty render for empty log")
	}

	l.Append("one")
	l.Append("two")

	want := "[2026-10-19 09:30:00]\none\n---\n[2026-10-19 09:30:01]\ntwo\n---"
	if got := l.Render(); got != want {
		t.Fatalf("unexpected render:\n%s\nwant:\n%s", got, want)
	}
	if l.Entries()[1].ID != "id-2" {
		t.Fatalf("expected injected ids")
	}
}

func TestBlankOptionsKeepDefaults(t *testing.T) {
	l := New(WithTimestampLayout("  "), WithSeparator(""))
	if l.layout != DefaultTimestampLayout || l.separator != DefaultSeparator {
		t.Fatalf("expected defaults, got %q %q", l.layout, l.separator)
	}
}
