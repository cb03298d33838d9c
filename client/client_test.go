package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func stubResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func stubClient(t *testing.T, playerJSON, transcriptJSON string) *Client {
	t.Helper()
	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		switch r.URL.Host {
		case "www.youtube.com":
			page := "<html><head><script>var ytInitialPlayerResponse = " + playerJSON + ";</script></head></html>"
			return stubResponse(200, page), nil
		case "youtubei.googleapis.com":
			return stubResponse(200, transcriptJSON), nil
		default:
			t.Errorf("unexpected request host %q", r.URL.Host)
			return stubResponse(500, ""), nil
		}
	})
	return New(Config{HTTPClient: &http.Client{Transport: transport}})
}

const (
	playerTwoTracks = `{"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"languageCode":"en","name":{"simpleText":"English"}},{"languageCode":"de","name":{"simpleText":"German"},"kind":"asr"}]}}}`
	playerRegional  = `{"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"languageCode":"en-US","name":{"simpleText":"English (US)"},"kind":"asr"}]}}}`
	playerNoTracks  = `{"playabilityStatus":{"status":"OK"}}`
	playerBlocked   = `{"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}}`

	transcriptTwoSegments = `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"content":{"transcriptSearchPanelRenderer":{"body":{"transcriptSegmentListRenderer":{"initialSegments":[
		{"transcriptSegmentRenderer":{"startMs":"0","endMs":"1000","snippet":{"simpleText":"hello"}}},
		{"transcriptSegmentRenderer":{"startMs":"1000","endMs":"2500","snippet":{"simpleText":"world"}}}
	]}}}}}}}}]}`

	apiCaptionsDisabled = `{"error":{"code":400,"message":"The caller does not have permission","status":"FAILED_PRECONDITION"}}`
)

func TestTranscribeTextFormat(t *testing.T) {
	c := stubClient(t, playerTwoTracks, transcriptTwoSegments)

	res, err := c.Transcribe(context.Background(), "https://youtu.be/jNQXAC9IVRw", TranscribeOptions{Language: "de"})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if res.VideoID != "jNQXAC9IVRw" {
		t.Fatalf("VideoID = %q", res.VideoID)
	}
	if res.Language != "de" {
		t.Fatalf("Language = %q", res.Language)
	}
	if res.Format != FormatText {
		t.Fatalf("Format = %q", res.Format)
	}
	if res.Transcript != "hello world" {
		t.Fatalf("Transcript = %q", res.Transcript)
	}
	if !res.IsAutoGenerated {
		t.Fatal("IsAutoGenerated = false, the de track is asr")
	}
	if len(res.Segments) != 2 || res.Segments[1].StartMs != 1000 || res.Segments[1].DurationMs != 1500 {
		t.Fatalf("Segments = %+v", res.Segments)
	}
}

func TestTranscribeJSONFormat(t *testing.T) {
	c := stubClient(t, playerTwoTracks, transcriptTwoSegments)

	res, err := c.Transcribe(context.Background(), "jNQXAC9IVRw", TranscribeOptions{Language: "en", Format: FormatJSON})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	var decoded []Segment
	if err := json.Unmarshal([]byte(res.Transcript), &decoded); err != nil {
		t.Fatalf("transcript payload is not JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded[0] != (Segment{Text: "hello", StartMs: 0, DurationMs: 1000}) {
		t.Fatalf("decoded[0] = %+v", decoded[0])
	}
	if res.IsAutoGenerated {
		t.Fatal("IsAutoGenerated = true, the en track is manual")
	}
}

func TestTranscribeSRTFormat(t *testing.T) {
	c := stubClient(t, playerTwoTracks, transcriptTwoSegments)

	res, err := c.Transcribe(context.Background(), "jNQXAC9IVRw", TranscribeOptions{Format: FormatSRT})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if !strings.HasPrefix(res.Transcript, "1\n00:00:00,000 --> 00:00:01,000\nhello\n") {
		t.Fatalf("Transcript = %q", res.Transcript)
	}
}

func TestTranscribeDefaults(t *testing.T) {
	c := stubClient(t, playerTwoTracks, transcriptTwoSegments)

	res, err := c.Transcribe(context.Background(), "jNQXAC9IVRw", TranscribeOptions{})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if res.Language != "en" || res.Format != FormatText {
		t.Fatalf("defaults = (%q, %q), want (en, text)", res.Language, res.Format)
	}
}

func TestTranscribeAutoGeneratedPrefixMatch(t *testing.T) {
	c := stubClient(t, playerRegional, transcriptTwoSegments)

	res, err := c.Transcribe(context.Background(), "jNQXAC9IVRw", TranscribeOptions{Language: "en"})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if !res.IsAutoGenerated {
		t.Fatal("IsAutoGenerated = false, want prefix match against en-US asr track")
	}
}

func TestTranscribeLanguageUnavailable(t *testing.T) {
	c := stubClient(t, playerTwoTracks, apiCaptionsDisabled)

	_, err := c.Transcribe(context.Background(), "jNQXAC9IVRw", TranscribeOptions{Language: "fr"})
	if !errors.Is(err, ErrLanguageUnavailable) {
		t.Fatalf("Transcribe() error = %v, want ErrLanguageUnavailable", err)
	}

	var detail *LanguageUnavailableDetailError
	if !errors.As(err, &detail) {
		t.Fatalf("Transcribe() error = %T, want LanguageUnavailableDetailError", err)
	}
	if detail.Requested != "fr" {
		t.Fatalf("Requested = %q", detail.Requested)
	}
	if len(detail.Available) != 2 || detail.Available[0] != "en" || detail.Available[1] != "de" {
		t.Fatalf("Available = %v, want [en de]", detail.Available)
	}
}

func TestTranscribeCaptionsDisabled(t *testing.T) {
	c := stubClient(t, playerNoTracks, apiCaptionsDisabled)

	_, err := c.Transcribe(context.Background(), "jNQXAC9IVRw", TranscribeOptions{})
	if !errors.Is(err, ErrCaptionsDisabled) {
		t.Fatalf("Transcribe() error = %v, want ErrCaptionsDisabled", err)
	}
}

func TestTranscribeUnavailableVideo(t *testing.T) {
	c := stubClient(t, playerBlocked, "")

	_, err := c.Transcribe(context.Background(), "jNQXAC9IVRw", TranscribeOptions{})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Transcribe() error = %v, want ErrUnavailable", err)
	}
	var detail *UnavailableDetailError
	if !errors.As(err, &detail) || detail.Reason != "Video unavailable" {
		t.Fatalf("Transcribe() error = %v, want UnavailableDetailError", err)
	}
}

func TestTranscribeEndpointFailure(t *testing.T) {
	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Host == "www.youtube.com" {
			page := "<html><head><script>var ytInitialPlayerResponse = " + playerTwoTracks + ";</script></head></html>"
			return stubResponse(200, page), nil
		}
		return stubResponse(403, "forbidden"), nil
	})
	c := New(Config{HTTPClient: &http.Client{Transport: transport}})

	_, err := c.Transcribe(context.Background(), "jNQXAC9IVRw", TranscribeOptions{})
	if !errors.Is(err, ErrTranscription) {
		t.Fatalf("Transcribe() error = %v, want ErrTranscription", err)
	}
	var detail *TranscriptionDetailError
	if !errors.As(err, &detail) {
		t.Fatalf("Transcribe() error = %T, want TranscriptionDetailError", err)
	}
	if detail.Stage != "transcript_api" || detail.StatusCode != 403 {
		t.Fatalf("detail = %+v", detail)
	}
}

func TestTranscribeInvalidInputSkipsNetwork(t *testing.T) {
	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		t.Error("no request should be made for invalid input")
		return stubResponse(500, ""), nil
	})
	c := New(Config{HTTPClient: &http.Client{Transport: transport}})

	if _, err := c.Transcribe(context.Background(), "not a video", TranscribeOptions{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Transcribe() error = %v, want ErrInvalidInput", err)
	}
}

func TestListLanguages(t *testing.T) {
	c := stubClient(t, playerTwoTracks, "")

	languages, err := c.ListLanguages(context.Background(), "https://www.youtube.com/watch?v=jNQXAC9IVRw")
	if err != nil {
		t.Fatalf("ListLanguages() error = %v", err)
	}
	want := []LanguageInfo{
		{Code: "en", Name: "English", IsAutoGenerated: false},
		{Code: "de", Name: "German", IsAutoGenerated: true},
	}
	if len(languages) != len(want) {
		t.Fatalf("languages = %+v", languages)
	}
	for i := range want {
		if languages[i] != want[i] {
			t.Fatalf("languages[%d] = %+v, want %+v", i, languages[i], want[i])
		}
	}
}

func TestListLanguagesCaptionsDisabled(t *testing.T) {
	c := stubClient(t, playerNoTracks, "")

	_, err := c.ListLanguages(context.Background(), "jNQXAC9IVRw")
	if !errors.Is(err, ErrCaptionsDisabled) {
		t.Fatalf("ListLanguages() error = %v, want ErrCaptionsDisabled", err)
	}
}
