package models

import (
	"time"

	"github.com/google/uuid"
)

// Pending action statuses
const (
	PendingStatusPending  = "pending"
	PendingStatusApproved = "approved"
	PendingStatusRejected = "rejected"
)

// Pending action types
const (
	ActionTypePause        = "pause"
	ActionTypeBoost        = "boost"
	ActionTypeAdjustBudget = "adjust_budget"
)

// Valid state transitions: from -> []to. Both resolutions are terminal; a
// resolved row is never re-opened.
var ValidPendingTransitions = map[string][]string{
	PendingStatusPending:  {PendingStatusApproved, PendingStatusRejected},
	PendingStatusApproved: {},
	PendingStatusRejected: {},
}

func IsValidPendingTransition(from, to string) bool {
	allowed, ok := ValidPendingTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ProposedChanges captures the mutation a pending action would perform.
// Exactly one of the two shapes is populated: Status for a pause, the budget
// pair for a boost.
type ProposedChanges struct {
	Status    string  `json:"status,omitempty"`
	OldBudget float64 `json:"old_budget,omitempty"`
	NewBudget float64 `json:"new_budget,omitempty"`
}

type PendingAction struct {
	ID              uuid.UUID          `json:"id"`
	CampaignID      string             `json:"campaign_id"`
	CampaignName    string             `json:"campaign_name"`
	ActionType      string             `json:"action_type"` // pause / boost / adjust_budget
	Reasoning       string             `json:"reasoning"`
	Metrics         NormalizedCampaign `json:"metrics"` // snapshot at decision time
	ProposedChanges ProposedChanges    `json:"proposed_changes"`
	Platform        string             `json:"platform"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	ResolvedAt      *time.Time         `json:"resolved_at,omitempty"`
}
