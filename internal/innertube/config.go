package innertube

// Protocol constants for the transcript pipeline. The Android client context
// is used for the get_transcript call because it exposes the endpoint without
// the consent and auth gates the web context enforces.
const (
	WatchPageHost      = "https://www.youtube.com"
	TranscriptEndpoint = "https://youtubei.googleapis.com/youtubei/v1/get_transcript"

	AndroidClientName    = "ANDROID"
	AndroidClientNameID  = "3"
	AndroidClientVersion = "20.10.38"
	AndroidSDKVersion    = 30
	AndroidUserAgent     = "com.google.android.youtube/" + AndroidClientVersion + " (Linux; U; Android 11) gzip"

	DesktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// ConsentCookie bypasses regional consent interstitials on the watch page.
	ConsentCookie = "CONSENT=YES+cb.20210328-17-p0.en+FX+888"

	// FallbackClientVersion is used when the watch page carries no version.
	FallbackClientVersion = "2.20240726.00.00"

	DefaultLanguage = "en"
)
