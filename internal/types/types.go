package types

// Segment is one timed line of transcript text. Order follows the source
// response; start offsets are not guaranteed monotonic.
type Segment struct {
	Text       string
	StartMs    int64
	DurationMs int64
}

// CaptionTrack describes one available caption stream for a video.
type CaptionTrack struct {
	LanguageCode    string
	Name            string
	IsAutoGenerated bool
}
