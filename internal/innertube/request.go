package innertube

// TranscriptRequest is the POST body for the get_transcript endpoint.
type TranscriptRequest struct {
	Context Context `json:"context"`
	Params  string  `json:"params"`
}

type Context struct {
	Client ClientInfo `json:"client"`
}

type ClientInfo struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSDKVersion int    `json:"androidSdkVersion,omitempty"`
	AcceptLanguage    string `json:"hl"`
	GeoLocation       string `json:"gl"`
	VisitorData       string `json:"visitorData,omitempty"`
	TimeZone          string `json:"timeZone"`
	UTCOffsetMinutes  int    `json:"utcOffsetMinutes"`
}

// NewTranscriptRequest builds an Android-context request for the given
// params token. The endpoint rejects requests without a plausible client
// fingerprint; the visitor token ties the call to the page fetch when the
// page issued one.
func NewTranscriptRequest(params, visitorData string) *TranscriptRequest {
	return &TranscriptRequest{
		Params: params,
		Context: Context{
			Client: ClientInfo{
				ClientName:        AndroidClientName,
				ClientVersion:     AndroidClientVersion,
				AndroidSDKVersion: AndroidSDKVersion,
				AcceptLanguage:    "en",
				GeoLocation:       "US",
				VisitorData:       visitorData,
				TimeZone:          "UTC",
				UTCOffsetMinutes:  0,
			},
		},
	}
}
