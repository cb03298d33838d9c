package client

import "net/http"

// Config holds configuration for the transcript client.
type Config struct {
	// HTTPClient is the client used for both network round trips.
	// If nil, a default client honoring ProxyURL is used.
	HTTPClient *http.Client

	// ProxyURL is the optional proxy URL to use for requests.
	// If HTTPClient is provided, this field is ignored.
	ProxyURL string

	// PageUserAgent overrides the desktop user agent presented on the
	// watch-page fetch. If empty, the package default is used.
	PageUserAgent string

	// Logger receives non-fatal warnings. If nil, warnings are dropped.
	Logger Logger
}
