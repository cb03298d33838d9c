package client

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Format is a transcript rendering target.
type Format string

const (
	FormatText Format = "text"
	FormatSRT  Format = "srt"
	FormatJSON Format = "json"
)

// ResolveFormat selects a rendering from a raw preference string. Unknown
// values fall back to plain text.
func ResolveFormat(raw string) Format {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "srt":
		return FormatSRT
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

var whitespaceRunPattern = regexp.MustCompile(`\s{2,}`)

// FormatAsText joins segment texts into continuous prose: single spaces
// between segments, interior whitespace runs collapsed, result trimmed.
func FormatAsText(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, s.Text)
	}
	joined := strings.Join(parts, " ")
	return strings.TrimSpace(whitespaceRunPattern.ReplaceAllString(joined, " "))
}

// FormatAsSRT renders segments as standard subtitle cues: 1-based index,
// start --> end timestamps, text, cues separated by a blank line.
func FormatAsSRT(segments []Segment) string {
	var b strings.Builder
	for i, s := range segments {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n",
			i+1,
			msToSRTTimestamp(s.StartMs),
			msToSRTTimestamp(s.StartMs+s.DurationMs),
			s.Text,
		)
	}
	return b.String()
}

// FormatAsJSON renders the raw segment sequence.
func FormatAsJSON(segments []Segment) (string, error) {
	if segments == nil {
		segments = []Segment{}
	}
	out, err := json.Marshal(segments)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func msToSRTTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
