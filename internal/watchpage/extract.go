package watchpage

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/mnott/Scribe/internal/innertube"
)

// Embedded documents are carved out of script bodies with bounded-greedy
// matches that stop at the next script-scope boundary rather than balancing
// braces: the documents end with "};" followed by another declaration or
// the end of the script.
var (
	playerResponsePattern = regexp.MustCompile(`(?s)ytInitialPlayerResponse\s*=\s*(\{.+?\})\s*;?\s*(?:var\s|const\s|let\s|</script|$)`)
	initialDataPattern    = regexp.MustCompile(`(?s)ytInitialData\s*=\s*(\{.+?\})\s*;?\s*(?:var\s|const\s|let\s|</script|$)`)
	pageConfigPattern     = regexp.MustCompile(`(?s)ytcfg\.set\s*\(\s*(\{.+?\})\s*\)\s*;`)

	visitorDataPatterns = []*regexp.Regexp{
		regexp.MustCompile(`"VISITOR_DATA"\s*:\s*"([^"]+)"`),
		regexp.MustCompile(`"visitorData"\s*:\s*"([^"]+)"`),
	}
	clientVersionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`"INNERTUBE_CONTEXT_CLIENT_VERSION"\s*:\s*"([^"]+)"`),
		regexp.MustCompile(`"clientVersion"\s*:\s*"([^"]+)"`),
	}
)

// collectScripts returns the text of every script element on the page,
// scoping the carve patterns to one script at a time. An unparseable page
// degrades to treating the whole body as a single script.
func collectScripts(body []byte) [][]byte {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return [][]byte{body}
	}
	var scripts [][]byte
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if text := s.Text(); text != "" {
			scripts = append(scripts, []byte(text))
		}
	})
	if len(scripts) == 0 {
		return [][]byte{body}
	}
	return scripts
}

// extractDocument carves the first matching embedded document and returns
// it as canonical JSON, or nil when absent or unsalvageable.
func extractDocument(scripts [][]byte, pattern *regexp.Regexp) []byte {
	for _, script := range scripts {
		m := pattern.FindSubmatch(script)
		if m == nil {
			continue
		}
		if doc, ok := canonicalJSON(m[1]); ok {
			return doc
		}
	}
	return nil
}

func extractPlayerResponse(scripts [][]byte) *innertube.PlayerResponse {
	doc := extractDocument(scripts, playerResponsePattern)
	if doc == nil {
		return nil
	}
	var player innertube.PlayerResponse
	if err := json.Unmarshal(doc, &player); err != nil {
		return nil
	}
	return &player
}

// canonicalJSON accepts the carved blob as-is when it is strict JSON and
// otherwise makes one tolerant attempt to evaluate it as a JS object
// literal before giving up.
func canonicalJSON(raw []byte) ([]byte, bool) {
	if json.Valid(raw) {
		return raw, true
	}
	return decodeLooseJSON(raw)
}

func extractFirst(patterns []*regexp.Regexp, sources ...[]byte) string {
	for _, src := range sources {
		if len(src) == 0 {
			continue
		}
		for _, p := range patterns {
			if m := p.FindSubmatch(src); m != nil {
				return string(m[1])
			}
		}
	}
	return ""
}
