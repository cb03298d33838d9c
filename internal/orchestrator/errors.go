package orchestrator

import (
	"fmt"
	"strings"
)

// HTTPStatusError indicates a non-success transcript endpoint response.
// Body carries a truncated response excerpt for diagnosis.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("transcript api http status=%d", e.StatusCode)
	}
	return fmt.Sprintf("transcript api http status=%d body=%s", e.StatusCode, e.Body)
}

// PlayabilityError indicates the page's player document gates the video:
// removed, private, or region/policy restricted.
type PlayabilityError struct {
	Status string
	Reason string
}

func (e *PlayabilityError) Error() string {
	return fmt.Sprintf("video not playable status=%s reason=%s", e.Status, e.Reason)
}

// APIError is an error object reported inside the endpoint's JSON body.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("transcript api error status=%s message=%s", e.Status, e.Message)
}

// IsCaptionsDisabled reports the endpoint's signature for a video whose
// captions are switched off entirely.
func (e *APIError) IsCaptionsDisabled() bool {
	return strings.EqualFold(e.Status, "FAILED_PRECONDITION")
}

// LanguageUnavailableError indicates caption tracks exist but none match
// the requested code. Available carries the codes that do exist.
type LanguageUnavailableError struct {
	Requested string
	Available []string
}

func (e *LanguageUnavailableError) Error() string {
	return fmt.Sprintf("no %q transcript; available languages: %s", e.Requested, strings.Join(e.Available, ", "))
}

// ResponseParseError indicates the endpoint body could not be decoded.
type ResponseParseError struct {
	Cause error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("transcript response parse: %v", e.Cause)
}

func (e *ResponseParseError) Unwrap() error { return e.Cause }
