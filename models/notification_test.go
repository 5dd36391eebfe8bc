package models

import (
	"strings"
	"testing"
)

func TestNewReportMessage(t *testing.T) {
	t.Run("short description kept whole", func(t *testing.T) {
		got := NewReportMessage("Garbage Pile", "Near the temple")
		want := "New Garbage Pile report in your ward: Near the temple..."
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("long description truncated to 50 runes", func(t *testing.T) {
		long := strings.Repeat("x", 120)
		got := NewReportMessage("Clogged Drain", long)
		if !strings.Contains(got, strings.Repeat("x", 50)+"...") {
			t.Errorf("expected 50-rune truncation, got %q", got)
		}
		if strings.Contains(got, strings.Repeat("x", 51)) {
			t.Errorf("description not truncated: %q", got)
		}
	})
}

func TestValidRating(t *testing.T) {
	for _, r := range []int{1, 2, 3, 4, 5} {
		if !ValidRating(r) {
			t.Errorf("ValidRating(%d) = false, want true", r)
		}
	}
	for _, r := range []int{0, 6, -1, 100} {
		if ValidRating(r) {
			t.Errorf("ValidRating(%d) = true, want false", r)
		}
	}
}
