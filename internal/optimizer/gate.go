package optimizer

import (
	"fmt"
	"math"

	"github.com/abrahub/backend/internal/models"
)

// Gate outcomes
const (
	OutcomeLogOnly   = "log_only"  // keep/skip: audit entry only
	OutcomeDisabled  = "disabled"  // matching auto_* flag is off
	OutcomeQueue     = "queue"     // approval mode: insert a pending action
	OutcomeExecute   = "execute"   // call the platform directly
	OutcomeDowngrade = "downgrade" // boost downgraded to keep, no mutation
)

// Plan is what the approval gate resolved a decision into. OldBudget/NewBudget
// are populated only for boost plans that queue or execute.
type Plan struct {
	Outcome   string
	Reason    string // set when the outcome deviates from the decision (disabled/downgrade)
	OldBudget float64
	NewBudget float64
}

// ComputeBoostBudget applies the configured increase and clamps at the daily
// maximum. The result never exceeds maxBudget.
func ComputeBoostBudget(current, increasePct, maxBudget float64) float64 {
	return math.Min(current*(1+increasePct/100), maxBudget)
}

// PlanAction decides how a single decision is materialized: executed, queued
// for approval, or dropped. Pure; current budget is read from the decision's
// metrics snapshot.
func PlanAction(d Decision, cfg models.OptimizationConfig) Plan {
	switch d.Action {
	case ActionPause:
		if !cfg.AutoPauseEnabled {
			return Plan{Outcome: OutcomeDisabled, Reason: "auto_action_disabled"}
		}
		if cfg.ApprovalModeEnabled {
			return Plan{Outcome: OutcomeQueue}
		}
		return Plan{Outcome: OutcomeExecute}

	case ActionBoost:
		if !cfg.AutoBoostEnabled {
			return Plan{Outcome: OutcomeDisabled, Reason: "auto_action_disabled"}
		}

		current := d.Metrics.DailyBudget
		if current <= 0 {
			return Plan{Outcome: OutcomeDowngrade, Reason: "current daily budget unknown"}
		}
		if current >= cfg.MaxDailyBudget {
			return Plan{Outcome: OutcomeDowngrade, Reason: fmt.Sprintf("daily budget %.2f already at maximum %.2f", current, cfg.MaxDailyBudget)}
		}

		next := ComputeBoostBudget(current, cfg.BudgetIncreasePct, cfg.MaxDailyBudget)
		if next <= current {
			return Plan{Outcome: OutcomeDowngrade, Reason: fmt.Sprintf("computed budget %.2f not above current %.2f", next, current)}
		}

		plan := Plan{OldBudget: current, NewBudget: next}
		if cfg.ApprovalModeEnabled {
			plan.Outcome = OutcomeQueue
		} else {
			plan.Outcome = OutcomeExecute
		}
		return plan

	default:
		// keep and skip never reach the executor or the pending queue
		return Plan{Outcome: OutcomeLogOnly}
	}
}
