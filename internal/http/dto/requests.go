package dto

type RunOptimizerRequest struct {
	Platform string `json:"platform,omitempty"` // meta / google, empty evaluates both
}

type UpdateConfigRequest struct {
	TargetCPA                float64 `json:"target_cpa"`
	MaxCPAMultiplier         float64 `json:"max_cpa_multiplier"`
	MinSpendToEvaluate       float64 `json:"min_spend_to_evaluate"`
	MinImpressionsToEvaluate int64   `json:"min_impressions_to_evaluate"`
	BudgetIncreasePct        float64 `json:"budget_increase_pct"`
	MaxDailyBudget           float64 `json:"max_daily_budget"`
	OptimizerEnabled         bool    `json:"optimizer_enabled"`
	AutoPauseEnabled         bool    `json:"auto_pause_enabled"`
	AutoBoostEnabled         bool    `json:"auto_boost_enabled"`
	ApprovalModeEnabled      bool    `json:"approval_mode_enabled"`
}
