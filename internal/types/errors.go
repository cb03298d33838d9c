package types

import "errors"

var (
	// ErrVideoUnavailable indicates that the video is unavailable (deleted, private, region-blocked).
	ErrVideoUnavailable = errors.New("video unavailable")

	// ErrCaptionsDisabled indicates that the video has no caption tracks at all.
	ErrCaptionsDisabled = errors.New("captions disabled")
)
