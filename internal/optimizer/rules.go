package optimizer

import (
	"fmt"

	"github.com/abrahub/backend/internal/models"
)

// Decision actions
const (
	ActionPause = "pause"
	ActionBoost = "boost"
	ActionKeep  = "keep"
	ActionSkip  = "skip"
)

// Decision is the output of one rule evaluation. Ephemeral: only its
// consequences (audit rows, pending actions, mutations) are persisted.
type Decision struct {
	CampaignID   string                    `json:"campaign_id"`
	CampaignName string                    `json:"campaign_name"`
	Action       string                    `json:"action"`
	Reason       string                    `json:"reason"`
	Metrics      models.NormalizedCampaign `json:"metrics"`
}

// rule pairs a predicate with a decision. Rules are evaluated strictly in
// order, first match wins; they are not independent of each other.
type rule struct {
	name   string
	match  func(c models.NormalizedCampaign, cfg models.OptimizationConfig) bool
	decide func(c models.NormalizedCampaign, cfg models.OptimizationConfig) (action, reason string)
}

var rules = []rule{
	{
		name: "insufficient_data",
		match: func(c models.NormalizedCampaign, cfg models.OptimizationConfig) bool {
			return c.Spend < cfg.MinSpendToEvaluate || c.Impressions < cfg.MinImpressionsToEvaluate
		},
		decide: func(c models.NormalizedCampaign, cfg models.OptimizationConfig) (string, string) {
			return ActionSkip, fmt.Sprintf("insufficient data (spend %.2f, impressions %d)", c.Spend, c.Impressions)
		},
	},
	{
		name: "runaway_cpa",
		match: func(c models.NormalizedCampaign, cfg models.OptimizationConfig) bool {
			limit := cfg.TargetCPA * cfg.MaxCPAMultiplier
			return c.CostPerResult > 0 && c.CostPerResult > limit
		},
		decide: func(c models.NormalizedCampaign, cfg models.OptimizationConfig) (string, string) {
			limit := cfg.TargetCPA * cfg.MaxCPAMultiplier
			return ActionPause, fmt.Sprintf("CPA %.2f exceeds limit %.2f (target %.2f x %.1f)",
				c.CostPerResult, limit, cfg.TargetCPA, cfg.MaxCPAMultiplier)
		},
	},
	{
		name: "no_conversions",
		match: func(c models.NormalizedCampaign, cfg models.OptimizationConfig) bool {
			return c.Conversions == 0 && c.Spend > cfg.TargetCPA*3
		},
		decide: func(c models.NormalizedCampaign, cfg models.OptimizationConfig) (string, string) {
			return ActionPause, fmt.Sprintf("spent %.2f with no conversions (limit %.2f)", c.Spend, cfg.TargetCPA*3)
		},
	},
	{
		name: "high_performer",
		match: func(c models.NormalizedCampaign, cfg models.OptimizationConfig) bool {
			return c.CostPerResult > 0 && c.CostPerResult < cfg.TargetCPA*0.7 && c.Conversions >= 3
		},
		decide: func(c models.NormalizedCampaign, cfg models.OptimizationConfig) (string, string) {
			return ActionBoost, fmt.Sprintf("CPA %.2f below 70%% of target (%.2f) with %d conversions",
				c.CostPerResult, cfg.TargetCPA*0.7, c.Conversions)
		},
	},
}

// Evaluate classifies one normalized campaign against the config snapshot.
// Pure and deterministic: same inputs always produce the same decision.
func Evaluate(c models.NormalizedCampaign, cfg models.OptimizationConfig) Decision {
	d := Decision{
		CampaignID:   c.CampaignID,
		CampaignName: c.Name,
		Metrics:      c,
	}

	for _, r := range rules {
		if r.match(c, cfg) {
			d.Action, d.Reason = r.decide(c, cfg)
			return d
		}
	}

	d.Action = ActionKeep
	if c.CostPerResult > 0 {
		d.Reason = fmt.Sprintf("CPA %.2f within acceptable range", c.CostPerResult)
	} else {
		d.Reason = "CPA N/A, within acceptable range"
	}
	return d
}
