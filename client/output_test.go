package client

import "testing"

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		raw  string
		want Format
	}{
		{"text", FormatText},
		{"srt", FormatSRT},
		{"SRT", FormatSRT},
		{" json ", FormatJSON},
		{"", FormatText},
		{"xml", FormatText},
	}
	for _, tc := range tests {
		if got := ResolveFormat(tc.raw); got != tc.want {
			t.Errorf("ResolveFormat(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestFormatAsText(t *testing.T) {
	segments := []Segment{
		{Text: "Hello", StartMs: 0, DurationMs: 1000},
		{Text: "world  again", StartMs: 1000, DurationMs: 1000},
		{Text: " trailing ", StartMs: 2000, DurationMs: 1000},
	}
	if got, want := FormatAsText(segments), "Hello world again trailing"; got != want {
		t.Fatalf("FormatAsText() = %q, want %q", got, want)
	}
	if got := FormatAsText(nil); got != "" {
		t.Fatalf("FormatAsText(nil) = %q", got)
	}
}

func TestFormatAsSRT(t *testing.T) {
	segments := []Segment{
		{Text: "Hi", StartMs: 1000, DurationMs: 2000},
		{Text: "There", StartMs: 3500, DurationMs: 1000},
	}
	want := "1\n00:00:01,000 --> 00:00:03,000\nHi\n" +
		"\n2\n00:00:03,500 --> 00:00:04,500\nThere\n"
	if got := FormatAsSRT(segments); got != want {
		t.Fatalf("FormatAsSRT() = %q, want %q", got, want)
	}
	if got := FormatAsSRT(nil); got != "" {
		t.Fatalf("FormatAsSRT(nil) = %q", got)
	}
}

func TestFormatAsJSON(t *testing.T) {
	got, err := FormatAsJSON([]Segment{{Text: "Hi", StartMs: 0, DurationMs: 1500}})
	if err != nil {
		t.Fatalf("FormatAsJSON() error = %v", err)
	}
	want := `[{"text":"Hi","startMs":0,"durationMs":1500}]`
	if got != want {
		t.Fatalf("FormatAsJSON() = %s, want %s", got, want)
	}

	got, err = FormatAsJSON(nil)
	if err != nil {
		t.Fatalf("FormatAsJSON(nil) error = %v", err)
	}
	if got != "[]" {
		t.Fatalf("FormatAsJSON(nil) = %s, want []", got)
	}
}

func TestMsToSRTTimestamp(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00,000"},
		{999, "00:00:00,999"},
		{1000, "00:00:01,000"},
		{61500, "00:01:01,500"},
		{3661001, "01:01:01,001"},
		{-5, "00:00:00,000"},
	}
	for _, tc := range tests {
		if got := msToSRTTimestamp(tc.ms); got != tc.want {
			t.Errorf("msToSRTTimestamp(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}
