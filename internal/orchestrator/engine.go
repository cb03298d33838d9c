package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mnott/Scribe/internal/innertube"
	"github.com/mnott/Scribe/internal/types"
	"github.com/mnott/Scribe/internal/watchpage"
)

// maxErrorBodyBytes bounds the response excerpt attached to status errors.
const maxErrorBodyBytes = 200

// Engine runs the transcript pipeline for one video: watch-page state,
// playability gate, token resolution, the endpoint call, and the
// captions-disabled vs language-unavailable disambiguation. Engines hold no
// per-request state; concurrent requests need no coordination.
type Engine struct {
	httpClient *http.Client
	fetcher    *watchpage.Fetcher
}

func NewEngine(httpClient *http.Client, pageUserAgent string) *Engine {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Engine{
		httpClient: httpClient,
		fetcher:    watchpage.NewFetcher(httpClient, pageUserAgent),
	}
}

// TranscriptResult carries the parsed segments plus the track list the
// caller needs to derive the auto-generated flag.
type TranscriptResult struct {
	VideoID  string
	Language string
	Segments []types.Segment
	Tracks   []types.CaptionTrack
}

// Transcribe fetches and parses the transcript for videoID in the requested
// language. No retries are performed on any failure, including throttling;
// the caller's context is the only cancellation mechanism.
func (e *Engine) Transcribe(ctx context.Context, videoID, language string) (*TranscriptResult, error) {
	state, err := e.fetcher.Fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := checkPlayability(state.PlayerResponse); err != nil {
		return nil, err
	}
	tracks := captionTracks(state.PlayerResponse)

	params, err := resolveParams(state, videoID, language)
	if err != nil {
		return nil, err
	}

	segments, err := e.fetchTranscript(ctx, params, state)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsCaptionsDisabled() {
			return nil, disambiguate(language, tracks, types.ErrCaptionsDisabled)
		}
		return nil, err
	}
	if len(segments) == 0 {
		// An empty panel and a disabled-captions rejection mean the same
		// thing once the track list is consulted.
		return nil, disambiguate(language, tracks, types.ErrCaptionsDisabled)
	}

	return &TranscriptResult{
		VideoID:  videoID,
		Language: language,
		Segments: segments,
		Tracks:   tracks,
	}, nil
}

// ListCaptionTracks lists available caption tracks from page state alone,
// independent of any transcript fetch.
func (e *Engine) ListCaptionTracks(ctx context.Context, videoID string) ([]types.CaptionTrack, error) {
	state, err := e.fetcher.Fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := checkPlayability(state.PlayerResponse); err != nil {
		return nil, err
	}
	tracks := captionTracks(state.PlayerResponse)
	if len(tracks) == 0 {
		return nil, types.ErrCaptionsDisabled
	}
	return tracks, nil
}

// checkPlayability gates on the player document when one was extracted. A
// missing document is not a failure here; whatever data it would have
// provided fails later at its point of use.
func checkPlayability(player *innertube.PlayerResponse) error {
	if player == nil {
		return nil
	}
	status := &player.PlayabilityStatus
	if status.Status == "" || status.IsOK() || status.IsOfflineLiveStream() {
		return nil
	}
	return &PlayabilityError{Status: status.Status, Reason: status.Reason}
}

func captionTracks(player *innertube.PlayerResponse) []types.CaptionTrack {
	if player == nil {
		return nil
	}
	raw := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	tracks := make([]types.CaptionTrack, 0, len(raw))
	for _, t := range raw {
		name := t.Name.Text()
		if name == "" {
			name = t.LanguageCode
		}
		tracks = append(tracks, types.CaptionTrack{
			LanguageCode:    t.LanguageCode,
			Name:            name,
			IsAutoGenerated: t.IsAutoGenerated(),
		})
	}
	return tracks
}

// resolveParams reuses the page-rendered token when it already addresses
// the requested language, saving nothing but the rebuild; any mismatch
// synthesizes a fresh token.
func resolveParams(state *watchpage.PageState, videoID, language string) (string, error) {
	if existing := innertube.ExtractPanelParams(state.UIDocument); existing != "" {
		if strings.EqualFold(innertube.DecodeParamsLanguage(existing), language) {
			return existing, nil
		}
	}
	params, err := innertube.EncodeTranscriptParams(videoID, language)
	if err != nil {
		return "", fmt.Errorf("encode transcript params: %w", err)
	}
	return params, nil
}

func (e *Engine) fetchTranscript(ctx context.Context, params string, state *watchpage.PageState) ([]types.Segment, error) {
	body, err := json.Marshal(innertube.NewTranscriptRequest(params, state.VisitorData))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, innertube.TranscriptEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", innertube.AndroidUserAgent)
	req.Header.Set("X-YouTube-Client-Name", innertube.AndroidClientNameID)
	req.Header.Set("X-YouTube-Client-Version", innertube.AndroidClientVersion)
	if state.CookieHeader != "" {
		req.Header.Set("Cookie", state.CookieHeader)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("transcript read: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Body:       truncate(respBody, maxErrorBodyBytes),
		}
	}

	var envelope innertube.APIErrorEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &ResponseParseError{Cause: err}
	}
	if envelope.Error != nil {
		return nil, &APIError{Status: envelope.Error.Status, Message: envelope.Error.Message}
	}

	var transcript innertube.TranscriptResponse
	if err := json.Unmarshal(respBody, &transcript); err != nil {
		return nil, &ResponseParseError{Cause: err}
	}
	return innertube.ParseSegments(&transcript), nil
}

// disambiguate reinterprets a disabled-captions signal: when tracks exist
// the real failure is that the requested language has none.
func disambiguate(language string, tracks []types.CaptionTrack, disabled error) error {
	if len(tracks) == 0 {
		return disabled
	}
	codes := make([]string, 0, len(tracks))
	for _, t := range tracks {
		codes = append(codes, t.LanguageCode)
	}
	return &LanguageUnavailableError{Requested: language, Available: codes}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
