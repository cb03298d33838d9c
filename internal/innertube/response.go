package innertube

import (
	"strconv"
	"strings"

	"github.com/mnott/Scribe/internal/types"
)

// TranscriptResponse is the loosely-typed action document returned by the
// get_transcript endpoint. Only the path down to the segment list is
// modeled; everything else is ignored.
type TranscriptResponse struct {
	Actions []TranscriptAction `json:"actions"`
}

type TranscriptAction struct {
	UpdateEngagementPanelAction *UpdateEngagementPanelAction `json:"updateEngagementPanelAction"`
}

type UpdateEngagementPanelAction struct {
	Content PanelContent `json:"content"`
}

type PanelContent struct {
	TranscriptRenderer *TranscriptRenderer `json:"transcriptRenderer"`
}

type TranscriptRenderer struct {
	Content TranscriptRendererContent `json:"content"`
}

type TranscriptRendererContent struct {
	TranscriptSearchPanelRenderer *TranscriptSearchPanelRenderer `json:"transcriptSearchPanelRenderer"`
}

type TranscriptSearchPanelRenderer struct {
	Body TranscriptPanelBody `json:"body"`
}

type TranscriptPanelBody struct {
	TranscriptSegmentListRenderer *TranscriptSegmentListRenderer `json:"transcriptSegmentListRenderer"`
}

type TranscriptSegmentListRenderer struct {
	InitialSegments []TranscriptSegmentItem `json:"initialSegments"`
}

type TranscriptSegmentItem struct {
	TranscriptSegmentRenderer *TranscriptSegmentRenderer `json:"transcriptSegmentRenderer"`
}

type TranscriptSegmentRenderer struct {
	StartMs string   `json:"startMs"`
	EndMs   string   `json:"endMs"`
	Snippet LangText `json:"snippet"`
}

// APIErrorEnvelope is the JSON error body the endpoint returns instead of
// actions when a request is rejected at the API level.
type APIErrorEnvelope struct {
	Error *APIErrorBody `json:"error"`
}

type APIErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// ParseSegments walks the response to the first action carrying a non-empty
// initial segment list and flattens it into ordered timed segments. Source
// ordering is trusted; start offsets are not required to be monotonic.
// Entries whose text is empty after newline flattening and trimming are
// dropped.
func ParseSegments(resp *TranscriptResponse) []types.Segment {
	if resp == nil {
		return nil
	}
	for _, action := range resp.Actions {
		items := initialSegments(action)
		if len(items) == 0 {
			continue
		}
		segments := make([]types.Segment, 0, len(items))
		for _, item := range items {
			r := item.TranscriptSegmentRenderer
			if r == nil {
				continue
			}
			text := strings.TrimSpace(newlineFlattener.Replace(r.Snippet.Text()))
			if text == "" {
				continue
			}
			start := parseMs(r.StartMs)
			end := parseMs(r.EndMs)
			segments = append(segments, types.Segment{
				Text:    text,
				StartMs: start,
				// May legitimately be <= 0 for malformed entries.
				DurationMs: end - start,
			})
		}
		if len(segments) > 0 {
			return segments
		}
	}
	return nil
}

func initialSegments(action TranscriptAction) []TranscriptSegmentItem {
	if action.UpdateEngagementPanelAction == nil {
		return nil
	}
	tr := action.UpdateEngagementPanelAction.Content.TranscriptRenderer
	if tr == nil {
		return nil
	}
	panel := tr.Content.TranscriptSearchPanelRenderer
	if panel == nil {
		return nil
	}
	list := panel.Body.TranscriptSegmentListRenderer
	if list == nil {
		return nil
	}
	return list.InitialSegments
}

func parseMs(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
