package watchpage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mnott/Scribe/internal/innertube"
)

// PageState holds the session artifacts harvested from one watch-page fetch.
// It is rebuilt for every transcription request and never persisted; the
// cookie header in particular is only valid for the API call that follows
// the fetch it came from.
type PageState struct {
	// PlayerResponse is nil when the page carried no parseable player
	// document. Callers decide failure at the point the data is needed.
	PlayerResponse *innertube.PlayerResponse

	// UIDocument is the raw initial UI data, kept serialized because it is
	// only ever substring-searched for the transcript panel token.
	UIDocument []byte

	// ConfigDocument is the raw page config (ytcfg) blob.
	ConfigDocument []byte

	VisitorData   string
	ClientVersion string
	CookieHeader  string
}

// StatusError reports a non-success HTTP status from the watch page.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("watch page http status=%d", e.StatusCode)
}

// Fetcher retrieves watch pages and extracts embedded session state.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
}

func NewFetcher(httpClient *http.Client, userAgent string) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = innertube.DesktopUserAgent
	}
	return &Fetcher{httpClient: httpClient, userAgent: userAgent}
}

// Fetch performs a single GET against the watch page and harvests page
// state. Absent or malformed embedded documents degrade to nil values;
// only transport-level failures and non-success statuses are errors.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) (*PageState, error) {
	watchURL := innertube.WatchPageHost + "/watch?v=" + url.QueryEscape(videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cookie", innertube.ConsentCookie)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("watch page request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("watch page read: %w", err)
	}

	state := &PageState{
		CookieHeader: buildCookieHeader(resp.Header.Values("Set-Cookie")),
	}

	scripts := collectScripts(body)
	state.PlayerResponse = extractPlayerResponse(scripts)
	state.UIDocument = extractDocument(scripts, initialDataPattern)
	state.ConfigDocument = extractDocument(scripts, pageConfigPattern)
	state.VisitorData = extractFirst(visitorDataPatterns, state.ConfigDocument, body)
	state.ClientVersion = extractFirst(clientVersionPatterns, state.ConfigDocument, body)
	if state.ClientVersion == "" {
		state.ClientVersion = innertube.FallbackClientVersion
	}
	return state, nil
}

// buildCookieHeader concatenates the fixed consent cookie with the first
// segment of every cookie the platform set on this response.
func buildCookieHeader(setCookies []string) string {
	parts := []string{innertube.ConsentCookie}
	for _, c := range setCookies {
		head := c
		if i := strings.IndexByte(c, ';'); i >= 0 {
			head = c[:i]
		}
		head = strings.TrimSpace(head)
		if head != "" {
			parts = append(parts, head)
		}
	}
	return strings.Join(parts, "; ")
}
