package models

import "time"

// OptimizationConfig is the singleton thresholds record. Read fresh at the
// start of each optimizer run, mutated only through the config endpoint.
type OptimizationConfig struct {
	TargetCPA                float64   `json:"target_cpa"`
	MaxCPAMultiplier         float64   `json:"max_cpa_multiplier"`
	MinSpendToEvaluate       float64   `json:"min_spend_to_evaluate"`
	MinImpressionsToEvaluate int64     `json:"min_impressions_to_evaluate"`
	BudgetIncreasePct        float64   `json:"budget_increase_pct"`
	MaxDailyBudget           float64   `json:"max_daily_budget"`
	OptimizerEnabled         bool      `json:"optimizer_enabled"`
	AutoPauseEnabled         bool      `json:"auto_pause_enabled"`
	AutoBoostEnabled         bool      `json:"auto_boost_enabled"`
	ApprovalModeEnabled      bool      `json:"approval_mode_enabled"`
	UpdatedAt                time.Time `json:"updated_at"`
}
