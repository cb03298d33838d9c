package client

// Segment is one timed line of transcript text.
type Segment struct {
	Text       string `json:"text"`
	StartMs    int64  `json:"startMs"`
	DurationMs int64  `json:"durationMs"`
}

// TranscriptResult is the outcome of one transcription request.
type TranscriptResult struct {
	// VideoID is the resolved canonical identifier.
	VideoID string `json:"videoId"`

	// Language is the caller's requested code, not necessarily the code
	// embedded in the request token that was used.
	Language string `json:"language"`

	// IsAutoGenerated is best effort, derived by prefix-matching the
	// requested language against the available track list.
	IsAutoGenerated bool `json:"isAutoGenerated"`

	// Format names the rendering carried in Transcript.
	Format Format `json:"format"`

	// Transcript is the rendered payload for Format.
	Transcript string `json:"transcript"`

	// Segments is the parsed sequence the payload was rendered from.
	Segments []Segment `json:"segments"`
}

// LanguageInfo describes one available caption track.
type LanguageInfo struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	IsAutoGenerated bool   `json:"isAutoGenerated"`
}
