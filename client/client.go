package client

import (
	"context"
	"errors"
	"strings"

	"github.com/mnott/Scribe/internal/innertube"
	"github.com/mnott/Scribe/internal/orchestrator"
	"github.com/mnott/Scribe/internal/types"
	"github.com/mnott/Scribe/internal/watchpage"
)

// Client is the high-level transcript client. It holds no per-request
// state; concurrent calls are independent.
type Client struct {
	config Config
	engine *orchestrator.Engine
	logger Logger
}

// New creates a new transcript client.
func New(config Config) *Client {
	return NewClient(config)
}

// NewClient creates a new transcript client.
func NewClient(config Config) *Client {
	if config.HTTPClient == nil {
		config.HTTPClient = defaultHTTPClient(config.ProxyURL)
	}
	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	return &Client{
		config: config,
		engine: orchestrator.NewEngine(config.HTTPClient, config.PageUserAgent),
		logger: logger,
	}
}

// TranscribeOptions selects the transcript language and rendering.
type TranscribeOptions struct {
	// Language is the requested caption language code. Default "en".
	Language string
	// Format selects the rendering. Default FormatText.
	Format Format
}

// Transcribe resolves the input to a video identifier, fetches the
// transcript in the requested language, and renders it in the requested
// format. No timeout is applied internally; wrap ctx to bound the call.
func (c *Client) Transcribe(ctx context.Context, input string, opts TranscribeOptions) (*TranscriptResult, error) {
	videoID, err := ExtractVideoID(input)
	if err != nil {
		return nil, err
	}

	language := strings.TrimSpace(opts.Language)
	if language == "" {
		language = innertube.DefaultLanguage
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	res, err := c.engine.Transcribe(ctx, videoID, language)
	if err != nil {
		return nil, mapError(err)
	}

	if len(res.Tracks) == 0 {
		c.warnf("caption track list missing from page state for video=%s; auto-generated flag defaulted", videoID)
	}

	segments := toPublicSegments(res.Segments)
	payload, err := renderPayload(segments, format)
	if err != nil {
		return nil, mapError(err)
	}

	return &TranscriptResult{
		VideoID:         videoID,
		Language:        language,
		IsAutoGenerated: autoGeneratedForLanguage(res.Tracks, language),
		Format:          format,
		Transcript:      payload,
		Segments:        segments,
	}, nil
}

// ListLanguages lists the caption tracks available for the input video,
// independent of any transcript fetch.
func (c *Client) ListLanguages(ctx context.Context, input string) ([]LanguageInfo, error) {
	videoID, err := ExtractVideoID(input)
	if err != nil {
		return nil, err
	}
	tracks, err := c.engine.ListCaptionTracks(ctx, videoID)
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]LanguageInfo, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, LanguageInfo{
			Code:            t.LanguageCode,
			Name:            t.Name,
			IsAutoGenerated: t.IsAutoGenerated,
		})
	}
	return out, nil
}

func renderPayload(segments []Segment, format Format) (string, error) {
	switch format {
	case FormatSRT:
		return FormatAsSRT(segments), nil
	case FormatJSON:
		return FormatAsJSON(segments)
	default:
		return FormatAsText(segments), nil
	}
}

// autoGeneratedForLanguage prefix-matches the requested code against the
// track list, so "en" picks up "en-US" and similar regional variants.
func autoGeneratedForLanguage(tracks []types.CaptionTrack, language string) bool {
	lower := strings.ToLower(language)
	for _, t := range tracks {
		if strings.HasPrefix(strings.ToLower(t.LanguageCode), lower) {
			return t.IsAutoGenerated
		}
	}
	return false
}

func toPublicSegments(in []types.Segment) []Segment {
	out := make([]Segment, 0, len(in))
	for _, s := range in {
		out = append(out, Segment{Text: s.Text, StartMs: s.StartMs, DurationMs: s.DurationMs})
	}
	return out
}

// mapError wraps protocol-level failures into the public taxonomy before
// they reach the caller; raw transport errors never cross this boundary.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, types.ErrCaptionsDisabled) {
		return ErrCaptionsDisabled
	}
	if errors.Is(err, types.ErrVideoUnavailable) {
		return ErrUnavailable
	}

	var playabilityErr *orchestrator.PlayabilityError
	if errors.As(err, &playabilityErr) {
		return &UnavailableDetailError{Status: playabilityErr.Status, Reason: playabilityErr.Reason}
	}

	var langErr *orchestrator.LanguageUnavailableError
	if errors.As(err, &langErr) {
		return &LanguageUnavailableDetailError{
			Requested: langErr.Requested,
			Available: append([]string(nil), langErr.Available...),
		}
	}

	var statusErr *orchestrator.HTTPStatusError
	if errors.As(err, &statusErr) {
		return &TranscriptionDetailError{
			Stage:      "transcript_api",
			StatusCode: statusErr.StatusCode,
			Detail:     statusErr.Body,
		}
	}

	var pageErr *watchpage.StatusError
	if errors.As(err, &pageErr) {
		return &TranscriptionDetailError{Stage: "watch_page", StatusCode: pageErr.StatusCode}
	}

	var apiErr *orchestrator.APIError
	if errors.As(err, &apiErr) {
		return &TranscriptionDetailError{Stage: "transcript_api", Detail: apiErr.Message}
	}

	var parseErr *orchestrator.ResponseParseError
	if errors.As(err, &parseErr) {
		return &TranscriptionDetailError{Stage: "parse", Cause: parseErr.Cause}
	}

	return &TranscriptionDetailError{Cause: err}
}

func (c *Client) warnf(format string, args ...any) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.Warnf(format, args...)
}
