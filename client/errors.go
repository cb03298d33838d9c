package client

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput indicates no video identifier could be parsed from input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable indicates the video is unavailable (removed, private, restricted).
	ErrUnavailable = errors.New("video unavailable")
	// ErrCaptionsDisabled indicates the video has no caption tracks at all.
	ErrCaptionsDisabled = errors.New("captions disabled")
	// ErrLanguageUnavailable indicates tracks exist but none match the requested language.
	ErrLanguageUnavailable = errors.New("language unavailable")
	// ErrTranscription is the generic failure: network, HTTP status, or malformed response.
	ErrTranscription = errors.New("transcription failed")
)

// UnavailableDetailError carries the playability status behind ErrUnavailable.
type UnavailableDetailError struct {
	Status string
	Reason string
}

func (e *UnavailableDetailError) Error() string {
	return fmt.Sprintf("video unavailable: %s: %s", e.Status, e.Reason)
}

func (e *UnavailableDetailError) Unwrap() error { return ErrUnavailable }

// LanguageUnavailableDetailError carries the caption language codes that do exist.
type LanguageUnavailableDetailError struct {
	Requested string
	Available []string
}

func (e *LanguageUnavailableDetailError) Error() string {
	return fmt.Sprintf("no %q transcript; available languages: %s", e.Requested, strings.Join(e.Available, ", "))
}

func (e *LanguageUnavailableDetailError) Unwrap() error { return ErrLanguageUnavailable }

// TranscriptionDetailError carries the failing stage and, where known, the
// HTTP status and a truncated response excerpt.
type TranscriptionDetailError struct {
	Stage      string
	StatusCode int
	Detail     string
	Cause      error
}

func (e *TranscriptionDetailError) Error() string {
	msg := "transcription failed"
	if e.Stage != "" {
		msg += " stage=" + e.Stage
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Detail != "" {
		msg += " detail=" + e.Detail
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TranscriptionDetailError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrTranscription, e.Cause}
	}
	return []error{ErrTranscription}
}

// ErrorCategory is a stable string classification of public errors, for
// callers that route failures without unwrapping.
type ErrorCategory string

const (
	ErrorCategoryInvalidInput        ErrorCategory = "invalid_input"
	ErrorCategoryUnavailable         ErrorCategory = "unavailable"
	ErrorCategoryCaptionsDisabled    ErrorCategory = "captions_disabled"
	ErrorCategoryLanguageUnavailable ErrorCategory = "language_unavailable"
	ErrorCategoryTranscription       ErrorCategory = "transcription_failed"
	ErrorCategoryUnknown             ErrorCategory = "unknown"
)

// ClassifyError maps any error returned by this package to its category.
func ClassifyError(err error) ErrorCategory {
	switch {
	case err == nil:
		return ErrorCategoryUnknown
	case errors.Is(err, ErrInvalidInput):
		return ErrorCategoryInvalidInput
	case errors.Is(err, ErrUnavailable):
		return ErrorCategoryUnavailable
	case errors.Is(err, ErrCaptionsDisabled):
		return ErrorCategoryCaptionsDisabled
	case errors.Is(err, ErrLanguageUnavailable):
		return ErrorCategoryLanguageUnavailable
	case errors.Is(err, ErrTranscription):
		return ErrorCategoryTranscription
	default:
		return ErrorCategoryUnknown
	}
}
