package innertube

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// The get_transcript params blob is a hand-assembled length-delimited byte
// layout discovered by reverse engineering, not a general protobuf message.
// Every length is encoded in a single byte; inputs are short enough that
// multi-byte varint continuation never occurs, and appendBytesField rejects
// anything that would need it.

const (
	// searchableTranscriptPanel marks the UI panel carrying a ready-made
	// transcript request token in the page's initial data.
	searchableTranscriptPanel = "engagement-panel-searchable-transcript"

	// transcriptPanelIdentifier is the fixed panel field embedded in every
	// synthesized params blob.
	transcriptPanelIdentifier = "engagement-panel-searchable-transcript-search-panel"
)

const (
	tagField1 = 0x0a // length-delimited, field 1
	tagField2 = 0x12 // length-delimited, field 2
	tagField3 = 0x1a // length-delimited, field 3
	tagFlag3  = 0x18 // varint, field 3
	tagPanel  = 0x2a // length-delimited, field 5
	tagFlag6  = 0x30 // varint, field 6
	tagFlag7  = 0x38 // varint, field 7
	tagFlag8  = 0x40 // varint, field 8
)

// EncodeTranscriptParams synthesizes the base64 request token addressing
// {video, language, transcript panel}. The language travels in a nested
// token of its own, rendered as URL-escaped base64 between two empty
// sibling fields.
func EncodeTranscriptParams(videoID, languageCode string) (string, error) {
	inner, err := appendBytesField(nil, tagField1, nil)
	if err != nil {
		return "", err
	}
	inner, err = appendBytesField(inner, tagField2, []byte(languageCode))
	if err != nil {
		return "", err
	}
	inner, err = appendBytesField(inner, tagField3, nil)
	if err != nil {
		return "", err
	}
	nested := url.QueryEscape(base64.StdEncoding.EncodeToString(inner))

	outer, err := appendBytesField(nil, tagField1, []byte(videoID))
	if err != nil {
		return "", err
	}
	outer, err = appendBytesField(outer, tagField2, []byte(nested))
	if err != nil {
		return "", err
	}
	outer = append(outer, tagFlag3, 0x01)
	outer, err = appendBytesField(outer, tagPanel, []byte(transcriptPanelIdentifier))
	if err != nil {
		return "", err
	}
	outer = append(outer, tagFlag6, 0x01, tagFlag7, 0x01, tagFlag8, 0x01)

	return base64.StdEncoding.EncodeToString(outer), nil
}

// DecodeParamsLanguage reverse-extracts the language code embedded in a
// params blob recovered from page state. Any decode failure defaults to
// DefaultLanguage rather than failing the request.
func DecodeParamsLanguage(params string) string {
	raw, ok := decodeBase64Loose(params)
	if !ok {
		return DefaultLanguage
	}
	nested, ok := findLengthDelimited(raw, tagField2)
	if !ok {
		return DefaultLanguage
	}
	inner, ok := decodeBase64Loose(string(nested))
	if !ok {
		return DefaultLanguage
	}
	lang, ok := findLengthDelimited(inner, tagField2)
	if !ok || len(lang) == 0 {
		return DefaultLanguage
	}
	return string(lang)
}

// ExtractPanelParams scans the serialized UI document for the searchable
// transcript panel and pulls the endpoint's params value by substring
// search. Full structural traversal is deliberately avoided: the key names
// are stable across schema drift, the renderer nesting is not.
func ExtractPanelParams(uiDocument []byte) string {
	if len(uiDocument) == 0 {
		return ""
	}
	panel := bytes.Index(uiDocument, []byte(searchableTranscriptPanel))
	if panel < 0 {
		return ""
	}
	window := uiDocument[panel:]
	ep := bytes.Index(window, []byte(`"getTranscriptEndpoint"`))
	if ep < 0 {
		// Key order is not stable across page renders; fall back to the
		// first endpoint anywhere in the document.
		window = uiDocument
		ep = bytes.Index(window, []byte(`"getTranscriptEndpoint"`))
		if ep < 0 {
			return ""
		}
	}
	rest := window[ep:]
	const paramsKey = `"params":"`
	p := bytes.Index(rest, []byte(paramsKey))
	if p < 0 {
		return ""
	}
	rest = rest[p+len(paramsKey):]
	end := bytes.IndexByte(rest, '"')
	if end <= 0 {
		return ""
	}
	return string(rest[:end])
}

func appendBytesField(buf []byte, tag byte, payload []byte) ([]byte, error) {
	if len(payload) > 0x7f {
		return nil, fmt.Errorf("params field 0x%02x exceeds single-byte length: %d bytes", tag, len(payload))
	}
	buf = append(buf, tag, byte(len(payload)))
	return append(buf, payload...), nil
}

// findLengthDelimited walks top-level fields until it hits the wanted tag.
// Only single-byte lengths are honored; a length with the continuation bit
// set aborts the scan.
func findLengthDelimited(raw []byte, want byte) ([]byte, bool) {
	i := 0
	for i < len(raw) {
		tag := raw[i]
		i++
		switch tag & 0x07 {
		case 0: // varint
			for i < len(raw) && raw[i]&0x80 != 0 {
				i++
			}
			if i >= len(raw) {
				return nil, false
			}
			i++
		case 2: // length-delimited
			if i >= len(raw) || raw[i]&0x80 != 0 {
				return nil, false
			}
			n := int(raw[i])
			i++
			if i+n > len(raw) {
				return nil, false
			}
			if tag == want {
				return raw[i : i+n], true
			}
			i += n
		default:
			return nil, false
		}
	}
	return nil, false
}

func decodeBase64Loose(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	// Page-recovered tokens carry URL escapes (%3D padding); synthesized
	// ones do not. Unescaping unconditionally would turn a bare '+' of the
	// base64 alphabet into a space.
	if strings.Contains(s, "%") {
		if unescaped, err := url.QueryUnescape(s); err == nil {
			s = unescaped
		}
	}
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	} {
		if raw, err := enc.DecodeString(s); err == nil {
			return raw, true
		}
	}
	return nil, false
}
