package utils

import (
	"testing"
	"time"
)

func TestIso8601Now(t *testing.T) {
	before := time.Now().UTC().Add(-1 * time.Second)
	result := Iso8601Now()
	after := time.Now().UTC().Add(1 * time.Second)

	parsed, err := time.Parse(time.RFC3339, result)
	if err != nil {
		t.Fatalf("Failed to parse result: %v", err)
	}

	if parsed.Before(before) || parsed.After(after) {
		t.Errorf("timestamp should be between %v and %v, got %v", before, after, parsed)
	}
}

func TestIso8601FromUnixSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "epoch",
			input:    0,
			expected: "1970-01-01T00:00:00Z",
		},
		{
			name:     "bulletin timestamp",
			input:    1764141300, // 2025-11-26 07:15:00 UTC
			expected: "2025-11-26T07:15:00Z",
		},
		{
			name:     "negative timestamp",
			input:    -86400,
			expected: "1969-12-31T00:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Iso8601FromUnixSeconds(tt.input)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestValidUntilFrom(t *testing.T) {
	tests := []struct {
		name     string
		epoch    int64
		interval int
		expected string
	}{
		{"one minute", 1764144000, 60000, "2025-11-26T08:01:00Z"},
		{"sub-second interval rounds down", 1764144000, 500, "2025-11-26T08:00:00Z"},
		{"zero epoch", 0, 60000, ""},
		{"zero interval", 1764144000, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidUntilFrom(tt.epoch, tt.interval); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
