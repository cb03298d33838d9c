package main

import (
	"testing"

	"github.com/mnott/Scribe/client"
)

func TestClockTimestamp(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{999, "00:00"},
		{1000, "00:01"},
		{59999, "00:59"},
		{60000, "01:00"},
		{3723000, "62:03"},
		{-100, "00:00"},
	}
	for _, tc := range tests {
		if got := clockTimestamp(tc.ms); got != tc.want {
			t.Errorf("clockTimestamp(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestTimedText(t *testing.T) {
	segments := []client.Segment{
		{Text: "hello", StartMs: 0, DurationMs: 1000},
		{Text: "world", StartMs: 61000, DurationMs: 1500},
	}
	want := "[00:00] hello\n[01:01] world"
	if got := timedText(segments); got != want {
		t.Fatalf("timedText() = %q, want %q", got, want)
	}
}
