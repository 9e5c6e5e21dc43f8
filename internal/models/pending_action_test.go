package models

import "testing"

func TestIsValidPendingTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{PendingStatusPending, PendingStatusApproved, true},
		{PendingStatusPending, PendingStatusRejected, true},

		// terminal states never move again
		{PendingStatusApproved, PendingStatusRejected, false},
		{PendingStatusApproved, PendingStatusPending, false},
		{PendingStatusRejected, PendingStatusApproved, false},
		{PendingStatusRejected, PendingStatusPending, false},

		{PendingStatusPending, PendingStatusPending, false},
		{"nonexistent", PendingStatusApproved, false},
		{PendingStatusPending, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidPendingTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidPendingTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestTerminalPendingStatusesHaveNoTransitions(t *testing.T) {
	for _, status := range []string{PendingStatusApproved, PendingStatusRejected} {
		if transitions := ValidPendingTransitions[status]; len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
}
