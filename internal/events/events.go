package events

import "context"

// Event types published on the optimizer stream and fanned out to dashboard
// websocket clients.
const (
	EventRunCompleted   = "optimizer_run_completed"
	EventActionQueued   = "optimizer_action_queued"
	EventActionExecuted = "optimizer_action_executed"
	EventActionResolved = "optimizer_action_resolved"
)

// StreamOptimizer is the single pub/sub channel for optimizer events.
const StreamOptimizer = "events:optimizer"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// RunCompleted summarizes a finished optimizer pass.
func RunCompleted(platform string, evaluated, paused, boosted, pending, errs int) Event {
	return Event{
		Type: EventRunCompleted,
		Payload: map[string]any{
			"platform":         platform,
			"evaluated":        evaluated,
			"paused":           paused,
			"boosted":          boosted,
			"pending_approval": pending,
			"errors":           errs,
		},
	}
}

// ActionQueued announces a new row waiting for human approval.
func ActionQueued(actionID, campaignID, actionType, platform string) Event {
	return Event{
		Type: EventActionQueued,
		Payload: map[string]any{
			"action_id":   actionID,
			"campaign_id": campaignID,
			"action_type": actionType,
			"platform":    platform,
		},
	}
}

// ActionExecuted announces a mutation applied directly against a platform.
func ActionExecuted(campaignID, actionType, platform string) Event {
	return Event{
		Type: EventActionExecuted,
		Payload: map[string]any{
			"campaign_id": campaignID,
			"action_type": actionType,
			"platform":    platform,
		},
	}
}

// ActionResolved announces an approval or rejection of a queued action.
func ActionResolved(actionID, campaignID, actionType, status, platform string) Event {
	return Event{
		Type: EventActionResolved,
		Payload: map[string]any{
			"action_id":   actionID,
			"campaign_id": campaignID,
			"action_type": actionType,
			"status":      status,
			"platform":    platform,
		},
	}
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
