package innertube

import (
	"strings"
	"testing"
)

func TestEncodeDecodeParamsLanguageRoundTrip(t *testing.T) {
	tests := []string{"de", "en", "fr", "pt-BR", "zh-Hans"}
	for _, lang := range tests {
		params, err := EncodeTranscriptParams("jNQXAC9IVRw", lang)
		if err != nil {
			t.Fatalf("EncodeTranscriptParams(%q) error = %v", lang, err)
		}
		if got := DecodeParamsLanguage(params); got != lang {
			t.Fatalf("DecodeParamsLanguage() = %q, want %q", got, lang)
		}
	}
}

func TestDecodeParamsLanguageDefaultsOnGarbage(t *testing.T) {
	tests := []string{"", "not base64 at all!!", "aGVsbG8=", "%%%"}
	for _, in := range tests {
		if got := DecodeParamsLanguage(in); got != DefaultLanguage {
			t.Fatalf("DecodeParamsLanguage(%q) = %q, want %q", in, got, DefaultLanguage)
		}
	}
}

func TestEncodeTranscriptParamsRejectsOversizedField(t *testing.T) {
	lang := strings.Repeat("x", 128)
	if _, err := EncodeTranscriptParams("jNQXAC9IVRw", lang); err == nil {
		t.Fatalf("expected error for field exceeding single-byte length")
	}
}

func TestExtractPanelParams(t *testing.T) {
	ui := []byte(`{"engagementPanels":[{"engagementPanelSectionListRenderer":` +
		`{"panelIdentifier":"engagement-panel-searchable-transcript",` +
		`"content":{"continuationItemRenderer":{"continuationEndpoint":` +
		`{"getTranscriptEndpoint":{"params":"CgtqTlFYQUM5SVZSdw%3D%3D"}}}}}}]}`)
	if got := ExtractPanelParams(ui); got != "CgtqTlFYQUM5SVZSdw%3D%3D" {
		t.Fatalf("ExtractPanelParams() = %q", got)
	}
}

func TestExtractPanelParamsEndpointBeforeIdentifier(t *testing.T) {
	// Key order drifts across page renders; the endpoint may serialize
	// ahead of the panel identifier.
	ui := []byte(`{"a":{"getTranscriptEndpoint":{"params":"QUJD"}},` +
		`"panelIdentifier":"engagement-panel-searchable-transcript"}`)
	if got := ExtractPanelParams(ui); got != "QUJD" {
		t.Fatalf("ExtractPanelParams() = %q", got)
	}
}

func TestExtractPanelParamsAbsent(t *testing.T) {
	tests := [][]byte{
		nil,
		[]byte(`{}`),
		[]byte(`{"panelIdentifier":"engagement-panel-comments"}`),
		[]byte(`{"panelIdentifier":"engagement-panel-searchable-transcript"}`),
	}
	for _, ui := range tests {
		if got := ExtractPanelParams(ui); got != "" {
			t.Fatalf("ExtractPanelParams(%q) = %q, want empty", ui, got)
		}
	}
}

func TestDecodeParamsLanguageFromPageStyleToken(t *testing.T) {
	// Tokens recovered from page state arrive with URL-escaped padding.
	params, err := EncodeTranscriptParams("jNQXAC9IVRw", "de")
	if err != nil {
		t.Fatalf("EncodeTranscriptParams() error = %v", err)
	}
	if !strings.Contains(params, "=") && !strings.Contains(params, "%") {
		t.Logf("token carries no padding; escape path not exercised")
	}
	if got := DecodeParamsLanguage(params); got != "de" {
		t.Fatalf("DecodeParamsLanguage() = %q, want %q", got, "de")
	}
}
