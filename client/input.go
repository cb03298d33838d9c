package client

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	// looseIDPattern is the last resort for inputs that fail strict URL
	// parsing but still carry a recognizable fragment.
	looseIDPattern = regexp.MustCompile(`(?:v=|/(?:embed|v|shorts)/)([A-Za-z0-9_-]{11})`)
)

// ExtractVideoID normalizes a raw id or common YouTube URL shapes into the
// canonical 11-character video identifier. Failure is terminal input
// validation, never retryable.
func ExtractVideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidInput
	}
	if videoIDPattern.MatchString(s) {
		return s, nil
	}
	id, parsed := idFromURL(s)
	if id != "" {
		return id, nil
	}
	// The permissive fragment match only serves inputs that defeated
	// strict URL parsing; a cleanly parsed foreign host stays invalid.
	if !parsed {
		if m := looseIDPattern.FindStringSubmatch(s); len(m) == 2 {
			return m[1], nil
		}
	}
	return "", ErrInvalidInput
}

func idFromURL(s string) (id string, parsed bool) {
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	if u.Host == "" && !strings.Contains(s, "://") {
		u, err = url.Parse("https://" + s)
		if err != nil {
			return "", false
		}
	}
	if u.Host == "" {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtu.be":
		return validID(firstPathSegment(u.Path)), true
	case "youtube.com", "m.youtube.com":
		if id := validID(u.Query().Get("v")); id != "" {
			return id, true
		}
		for _, prefix := range []string{"/shorts/", "/embed/", "/v/"} {
			if strings.HasPrefix(u.Path, prefix) {
				if id := validID(firstPathSegment(u.Path[len(prefix):])); id != "" {
					return id, true
				}
			}
		}
	}
	return "", true
}

func firstPathSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}

func validID(candidate string) string {
	if videoIDPattern.MatchString(candidate) {
		return candidate
	}
	return ""
}
