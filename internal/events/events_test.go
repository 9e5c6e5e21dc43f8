package events

import "testing"

func TestTypedEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		wantType string
		wantKeys []string
	}{
		{
			name:     "run completed",
			event:    RunCompleted("all", 5, 1, 2, 1, 0),
			wantType: EventRunCompleted,
			wantKeys: []string{"platform", "evaluated", "paused", "boosted", "pending_approval", "errors"},
		},
		{
			name:     "action queued",
			event:    ActionQueued("a1", "c1", "pause", "meta"),
			wantType: EventActionQueued,
			wantKeys: []string{"action_id", "campaign_id", "action_type", "platform"},
		},
		{
			name:     "action executed",
			event:    ActionExecuted("c1", "boost", "google"),
			wantType: EventActionExecuted,
			wantKeys: []string{"campaign_id", "action_type", "platform"},
		},
		{
			name:     "action resolved",
			event:    ActionResolved("a1", "c1", "boost", "approved", "meta"),
			wantType: EventActionResolved,
			wantKeys: []string{"action_id", "campaign_id", "action_type", "status", "platform"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.event.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", tt.event.Type, tt.wantType)
			}
			for _, key := range tt.wantKeys {
				if _, ok := tt.event.Payload[key]; !ok {
					t.Errorf("payload missing key %q", key)
				}
			}
			if len(tt.event.Payload) != len(tt.wantKeys) {
				t.Errorf("payload has %d keys, want %d", len(tt.event.Payload), len(tt.wantKeys))
			}
		})
	}
}
