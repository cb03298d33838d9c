package innertube

// PlayerResponse is the subset of the embedded player document this pipeline
// reads: playability gating and the authoritative caption track list.
type PlayerResponse struct {
	PlayabilityStatus PlayabilityStatus `json:"playabilityStatus"`
	Captions          Captions          `json:"captions"`
}

type PlayabilityStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (p *PlayabilityStatus) IsOK() bool {
	return p.Status == "OK"
}

// IsOfflineLiveStream reports a scheduled/offline livestream, which still
// exposes caption metadata and is not treated as unavailable.
func (p *PlayabilityStatus) IsOfflineLiveStream() bool {
	return p.Status == "LIVE_STREAM_OFFLINE"
}

type Captions struct {
	PlayerCaptionsTracklistRenderer PlayerCaptionsTracklistRenderer `json:"playerCaptionsTracklistRenderer"`
}

type PlayerCaptionsTracklistRenderer struct {
	CaptionTracks []CaptionTrack `json:"captionTracks"`
}

type CaptionTrack struct {
	BaseURL      string   `json:"baseUrl"`
	Name         LangText `json:"name"`
	VssID        string   `json:"vssId"`
	LanguageCode string   `json:"languageCode"`
	Kind         string   `json:"kind,omitempty"`
}

// IsAutoGenerated reports whether the track is speech-recognition generated
// rather than manually authored.
func (t CaptionTrack) IsAutoGenerated() bool {
	return t.Kind == "asr"
}

type LangText struct {
	SimpleText string    `json:"simpleText"`
	Runs       []TextRun `json:"runs"`
}

type TextRun struct {
	Text string `json:"text"`
}

// Text prefers the pre-joined string and falls back to concatenating runs.
func (t LangText) Text() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	var b []byte
	for _, run := range t.Runs {
		b = append(b, run.Text...)
	}
	return string(b)
}
