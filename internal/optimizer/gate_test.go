package optimizer

import (
	"testing"

	"github.com/abrahub/backend/internal/models"
)

func TestComputeBoostBudget(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		pct      float64
		max      float64
		expected float64
	}{
		{"plain increase", 100, 20, 500, 120},
		{"clamped at max", 100, 20, 110, 110},
		{"already near max", 490, 20, 500, 500},
		{"max equals computed", 100, 10, 110, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBoostBudget(tt.current, tt.pct, tt.max)
			if got != tt.expected {
				t.Errorf("ComputeBoostBudget(%v, %v, %v) = %v, want %v", tt.current, tt.pct, tt.max, got, tt.expected)
			}
			if got > tt.max {
				t.Errorf("computed budget %v exceeds maximum %v", got, tt.max)
			}
		})
	}
}

func boostDecision(budget float64) Decision {
	return Decision{
		CampaignID:   "c1",
		CampaignName: "c1",
		Action:       ActionBoost,
		Metrics:      models.NormalizedCampaign{CampaignID: "c1", DailyBudget: budget, Platform: models.PlatformMeta},
	}
}

func TestPlanAction(t *testing.T) {
	base := testConfig()

	t.Run("keep and skip only log", func(t *testing.T) {
		for _, action := range []string{ActionKeep, ActionSkip} {
			plan := PlanAction(Decision{Action: action}, base)
			if plan.Outcome != OutcomeLogOnly {
				t.Errorf("action %q: outcome = %q, want %q", action, plan.Outcome, OutcomeLogOnly)
			}
		}
	})

	t.Run("pause executes when flag on and no approval mode", func(t *testing.T) {
		cfg := base
		cfg.ApprovalModeEnabled = false
		plan := PlanAction(Decision{Action: ActionPause}, cfg)
		if plan.Outcome != OutcomeExecute {
			t.Errorf("outcome = %q, want %q", plan.Outcome, OutcomeExecute)
		}
	})

	t.Run("pause queues in approval mode", func(t *testing.T) {
		cfg := base
		cfg.ApprovalModeEnabled = true
		plan := PlanAction(Decision{Action: ActionPause}, cfg)
		if plan.Outcome != OutcomeQueue {
			t.Errorf("outcome = %q, want %q", plan.Outcome, OutcomeQueue)
		}
	})

	t.Run("pause with auto pause disabled", func(t *testing.T) {
		cfg := base
		cfg.AutoPauseEnabled = false
		cfg.ApprovalModeEnabled = true
		plan := PlanAction(Decision{Action: ActionPause}, cfg)
		if plan.Outcome != OutcomeDisabled {
			t.Errorf("outcome = %q, want %q", plan.Outcome, OutcomeDisabled)
		}
	})

	t.Run("boost with auto boost disabled", func(t *testing.T) {
		cfg := base
		cfg.AutoBoostEnabled = false
		plan := PlanAction(boostDecision(100), cfg)
		if plan.Outcome != OutcomeDisabled {
			t.Errorf("outcome = %q, want %q", plan.Outcome, OutcomeDisabled)
		}
	})

	t.Run("boost with unknown budget downgrades", func(t *testing.T) {
		plan := PlanAction(boostDecision(0), base)
		if plan.Outcome != OutcomeDowngrade {
			t.Errorf("outcome = %q, want %q", plan.Outcome, OutcomeDowngrade)
		}
	})

	t.Run("boost at max budget downgrades", func(t *testing.T) {
		cfg := base
		cfg.MaxDailyBudget = 100
		plan := PlanAction(boostDecision(100), cfg)
		if plan.Outcome != OutcomeDowngrade {
			t.Errorf("outcome = %q, want %q", plan.Outcome, OutcomeDowngrade)
		}
	})

	t.Run("boost clamps to max budget", func(t *testing.T) {
		cfg := base
		cfg.ApprovalModeEnabled = false
		cfg.BudgetIncreasePct = 20
		cfg.MaxDailyBudget = 110
		plan := PlanAction(boostDecision(100), cfg)
		if plan.Outcome != OutcomeExecute {
			t.Fatalf("outcome = %q, want %q", plan.Outcome, OutcomeExecute)
		}
		if plan.NewBudget != 110 {
			t.Errorf("NewBudget = %v, want 110", plan.NewBudget)
		}
		if plan.OldBudget != 100 {
			t.Errorf("OldBudget = %v, want 100", plan.OldBudget)
		}
	})

	t.Run("boost queues in approval mode with budgets", func(t *testing.T) {
		cfg := base
		cfg.ApprovalModeEnabled = true
		plan := PlanAction(boostDecision(100), cfg)
		if plan.Outcome != OutcomeQueue {
			t.Fatalf("outcome = %q, want %q", plan.Outcome, OutcomeQueue)
		}
		if plan.NewBudget != 120 {
			t.Errorf("NewBudget = %v, want 120", plan.NewBudget)
		}
	})
}
