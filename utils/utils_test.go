package utils

import (
	"testing"
	"time"
)

func TestParseStayDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"bare date", "2026-03-10", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"datetime", "2026-03-10T14:30:00", time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)},
		{"padded", "  2026-03-10 ", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"rfc3339 with zone", "2026-03-10T14:30:00Z", time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStayDate(tc.raw)
			if err != nil {
				t.Fatalf("ParseStayDate(%q) error = %v", tc.raw, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseStayDate(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}

	if _, err := ParseStayDate("10-03-2026"); err == nil {
		t.Error("ParseStayDate accepted a day-first date")
	}
	if _, err := ParseStayDate(""); err == nil {
		t.Error("ParseStayDate accepted an empty string")
	}
}

func TestFormatStayDate(t *testing.T) {
	in := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if got := FormatStayDate(in); got != "2026-03-10T00:00:00" {
		t.Errorf("FormatStayDate() = %q", got)
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{13400, "₹13,400"},
		{19500, "₹19,500"},
		{1234567, "₹12,34,567"},
		{950, "₹950"},
		{4000.50, "₹4,000.5"},
	}
	for _, tc := range tests {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
