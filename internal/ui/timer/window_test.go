package timer

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		expected  string
	}{
		{name: "full work session", remaining: 25 * time.Minute, expected: "25:00"},
		{name: "under a minute", remaining: 42 * time.Second, expected: "00:42"},
		{name: "zero", remaining: 0, expected: "00:00"},
		{name: "negative clamps to zero", remaining: -3 * time.Second, expected: "00:00"},
		{name: "over an hour", remaining: 90 * time.Minute, expected: "90:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatClock(tt.remaining); got != tt.expected {
				t.Fatalf("FormatClock(%v) = %q want %q", tt.remaining, got, tt.expected)
			}
		})
	}
}
