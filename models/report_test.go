package models

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ReportStatus
		to   ReportStatus
		want bool
	}{
		{"pending to verified", StatusPending, StatusVerified, true},
		{"verified to in_progress", StatusVerified, StatusInProgress, true},
		{"in_progress to resolved", StatusInProgress, StatusResolved, true},
		{"resolved to closed", StatusResolved, StatusClosed, true},
		{"pending to resolved skips steps", StatusPending, StatusResolved, false},
		{"pending to closed skips steps", StatusPending, StatusClosed, false},
		{"backward move", StatusResolved, StatusPending, false},
		{"self transition", StatusVerified, StatusVerified, false},
		{"closed is terminal", StatusClosed, StatusPending, false},
		{"closed to resolved", StatusClosed, StatusResolved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "verified", "in_progress", "resolved", "closed"} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Pending", "done", "in progress"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestValidUrgency(t *testing.T) {
	for _, s := range []string{"low", "medium", "high", "critical"} {
		if !ValidUrgency(s) {
			t.Errorf("ValidUrgency(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "urgent", "HIGH"} {
		if ValidUrgency(s) {
			t.Errorf("ValidUrgency(%q) = true, want false", s)
		}
	}
}
