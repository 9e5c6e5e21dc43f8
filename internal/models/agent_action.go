package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit action types
const (
	AuditOptimizerPause = "optimizer_pause"
	AuditOptimizerBoost = "optimizer_boost"
	AuditOptimizerKeep  = "optimizer_keep"
	AuditOptimizerSkip  = "optimizer_skip"
	AuditApprovePause   = "approve_pause"
	AuditApproveBoost   = "approve_boost"
	AuditRejectPause    = "reject_pause"
	AuditRejectBoost    = "reject_boost"
)

// AgentAction is one append-only audit row. Never mutated after insert, never
// read back by the rule evaluator.
type AgentAction struct {
	ID           uuid.UUID `json:"id"`
	ActionType   string    `json:"action_type"`
	Source       string    `json:"source"` // ads_optimizer / ads_actions / worker
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	Platform     string    `json:"platform"`
	Details      any       `json:"details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
