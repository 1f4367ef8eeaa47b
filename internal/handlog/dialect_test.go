package handlog

import (
	"testing"
	"time"
)

func TestDetectDialect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		want    Dialect
	}{
		{"csv header", "entry,at,order\n\"line\",2026-05-01T12:00:00.000Z,1\n", DialectTabular},
		{"quoted csv header", "\"entry\",\"at\",\"order\"\n", DialectTabular},
		{"bom csv header", "\ufeffentry,at,order\n", DialectTabular},
		{"legacy line", "2026-05-01T12:00:00.000Z -- \"P\" folds\n", DialectLegacy},
		{"blank leader", "\n\n2026-05-01T12:00:00.000Z -- \"P\" folds\n", DialectLegacy},
		{"empty", "", DialectLegacy},
	}
	for _, c := range cases {
		if got := DetectDialect(c.content); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestExtractLegacyReversesAndStripsTimestamps(t *testing.T) {
	t.Parallel()

	content := "2026-05-01T12:00:02.000Z -- third\n" +
		"2026-05-01T12:00:01.000Z -- second\n" +
		"2026-05-01T12:00:00.000Z -- first\n"
	lines := ExtractLines(content, DialectLegacy)
	if len(lines) != 3 {
		t.Fatalf("lines = %d", len(lines))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if lines[i].Text != w {
			t.Errorf("line %d = %q, want %q", i, lines[i].Text, w)
		}
	}
	if lines[0].At != time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) {
		t.Errorf("timestamp = %v", lines[0].At)
	}
}

func TestExtractLegacyKeepsUnstampedLines(t *testing.T) {
	t.Parallel()

	lines := ExtractLines("plain line without timestamp\n", DialectLegacy)
	if len(lines) != 1 || lines[0].Text != "plain line without timestamp" {
		t.Fatalf("lines = %+v", lines)
	}
	if !lines[0].At.IsZero() {
		t.Errorf("expected zero time, got %v", lines[0].At)
	}
}

func TestExtractTabularUsesOrderColumn(t *testing.T) {
	t.Parallel()

	content := "entry,at,order\n" +
		"\"third\",2026-05-01T12:00:02.000Z,3\n" +
		"\"second, with comma\",2026-05-01T12:00:01.000Z,2\n" +
		"\"first\",2026-05-01T12:00:00.000Z,1\n"
	lines := ExtractLines(content, DialectTabular)
	if len(lines) != 3 {
		t.Fatalf("lines = %d", len(lines))
	}
	if lines[0].Text != "first" || lines[1].Text != "second, with comma" || lines[2].Text != "third" {
		t.Errorf("order wrong: %+v", lines)
	}
	if lines[2].At != time.Date(2026, 5, 1, 12, 0, 2, 0, time.UTC) {
		t.Errorf("timestamp = %v", lines[2].At)
	}
}

func TestExtractTabularFallsBackToReversal(t *testing.T) {
	t.Parallel()

	content := "entry,at\n" +
		"\"second\",2026-05-01T12:00:01.000Z\n" +
		"\"first\",2026-05-01T12:00:00.000Z\n"
	lines := ExtractLines(content, DialectTabular)
	if len(lines) != 2 || lines[0].Text != "first" || lines[1].Text != "second" {
		t.Fatalf("lines = %+v", lines)
	}
}
