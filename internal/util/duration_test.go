package util

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"5m", 5 * time.Minute},
		{"1h", time.Hour},
		{"1d", 24 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"1h30m", 90 * time.Minute},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDuration(tc.input)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}

	t.Run("rejects junk", func(t *testing.T) {
		if _, err := ParseDuration("x"); err == nil {
			t.Error("expected error for single-character input")
		}
		if _, err := ParseDuration("10 bananas"); err == nil {
			t.Error("expected error for unparseable input")
		}
	})
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "now"},
		{42 * time.Second, "42s"},
		{5 * time.Minute, "5m"},
		{3 * time.Hour, "3h"},
		{49 * time.Hour, "2d"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.d); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFormatAgo(t *testing.T) {
	now := time.Now()

	if got := FormatAgo(time.Time{}, now); got != "never" {
		t.Errorf("zero time = %q, want %q", got, "never")
	}
	if got := FormatAgo(now.Add(-5*time.Minute), now); got != "5m ago" {
		t.Errorf("got %q, want %q", got, "5m ago")
	}
	if got := FormatAgo(now, now); got != "just now" {
		t.Errorf("got %q, want %q", got, "just now")
	}
	// Clock skew: a slightly-future timestamp must not render negative.
	if got := FormatAgo(now.Add(2*time.Second), now); got != "just now" {
		t.Errorf("future time = %q, want %q", got, "just now")
	}
}
