package overlay

import (
	"testing"
	"time"
)

var fmtInstant = time.Date(2025, time.July, 20, 14, 7, 9, 0, time.UTC) // a Sunday

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"YYYY-MM-DD", "2025-07-20"},
		{"YY/MM/DD", "25/07/20"},
		{"MMMM D, YYYY", "July 20, 2025"},
		{"MMM DD", "Jul 20"},
		{"dddd", "Sunday"},
		{"ddd HH:mm:ss", "Sun 14:07:09"},
		{"hh:mm A", "02:07 PM"},
		{"h:mm a", "2:07 pm"},
		{"D", "20"},
		{"", ""},
		{"no tokens here!", "no tokens here!"}, // bare chars pass through
	}
	for _, tt := range tests {
		if got := FormatDateTime(fmtInstant, tt.format); got != tt.want {
			t.Errorf("FormatDateTime(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

// MMMM must resolve as one token, never as two MM substitutions.
func TestFormatDateTimeLongestTokenFirst(t *testing.T) {
	if got := FormatDateTime(fmtInstant, "MMMM"); got != "July" {
		t.Errorf("MMMM = %q, want July", got)
	}
	if got := FormatDateTime(fmtInstant, "MM"); got != "07" {
		t.Errorf("MM = %q, want 07", got)
	}
	if FormatDateTime(fmtInstant, "MMMM") == FormatDateTime(fmtInstant, "MM")+FormatDateTime(fmtInstant, "MM") {
		t.Error("MMMM collapsed into two MM substitutions")
	}
}

func TestFormatDateTimeMidnightNoon(t *testing.T) {
	midnight := time.Date(2025, time.January, 1, 0, 30, 0, 0, time.UTC)
	if got := FormatDateTime(midnight, "h A"); got != "12 AM" {
		t.Errorf("midnight h A = %q, want 12 AM", got)
	}
	noon := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	if got := FormatDateTime(noon, "h A"); got != "12 PM" {
		t.Errorf("noon h A = %q, want 12 PM", got)
	}
}
