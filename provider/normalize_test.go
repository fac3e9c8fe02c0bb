package provider

import "testing"

func TestNormalizeReply(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean text unchanged", "Hello", "Hello"},
		{"leading whitespace stripped", "  \n\tHello", "Hello"},
		{"leading dot stripped", ".Hello", "Hello"},
		{"dot then whitespace", ".  Hello", "Hello"},
		{"whitespace then dot", "  .Hello", "Hello"},
		{"only first dot stripped", "..Hello", ".Hello"},
		{"interior dots kept", "Version 1.2.3", "Version 1.2.3"},
		{"interior whitespace kept", "a  b", "a  b"},
		{"empty input", "", ""},
		{"lone dot", ".", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeReply(tt.input); got != tt.expected {
				t.Errorf("normalizeReply(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDataURL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		mediaType string
		data      string
		ok        bool
	}{
		{"png data url", "data:image/png;base64,aGVsbG8=", "image/png", "aGVsbG8=", true},
		{"jpeg data url", "data:image/jpeg;base64,eA==", "image/jpeg", "eA==", true},
		{"http url", "https://example.com/cat.png", "", "", false},
		{"missing base64 marker", "data:image/png,rawdata", "", "", false},
		{"missing comma", "data:image/png;base64", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mediaType, data, ok := parseDataURL(tt.input)
			if ok != tt.ok || mediaType != tt.mediaType || data != tt.data {
				t.Errorf("parseDataURL(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.input, mediaType, data, ok, tt.mediaType, tt.data, tt.ok)
			}
		})
	}
}
