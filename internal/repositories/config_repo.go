package repositories

import (
	"context"
	"errors"

	"github.com/abrahub/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrConfigNotFound = errors.New("optimization config not found")

// ConfigRepo manages the singleton optimization_config row.
type ConfigRepo struct {
	pool *pgxpool.Pool
}

func NewConfigRepo(pool *pgxpool.Pool) *ConfigRepo {
	return &ConfigRepo{pool: pool}
}

func (r *ConfigRepo) Get(ctx context.Context) (*models.OptimizationConfig, error) {
	var c models.OptimizationConfig
	err := r.pool.QueryRow(ctx, `
		SELECT target_cpa, max_cpa_multiplier, min_spend_to_evaluate, min_impressions_to_evaluate,
		       budget_increase_pct, max_daily_budget, optimizer_enabled, auto_pause_enabled,
		       auto_boost_enabled, approval_mode_enabled, updated_at
		FROM optimization_config
		LIMIT 1
	`).Scan(&c.TargetCPA, &c.MaxCPAMultiplier, &c.MinSpendToEvaluate, &c.MinImpressionsToEvaluate,
		&c.BudgetIncreasePct, &c.MaxDailyBudget, &c.OptimizerEnabled, &c.AutoPauseEnabled,
		&c.AutoBoostEnabled, &c.ApprovalModeEnabled, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConfigRepo) Update(ctx context.Context, c *models.OptimizationConfig) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE optimization_config SET
			target_cpa = $1, max_cpa_multiplier = $2, min_spend_to_evaluate = $3,
			min_impressions_to_evaluate = $4, budget_increase_pct = $5, max_daily_budget = $6,
			optimizer_enabled = $7, auto_pause_enabled = $8, auto_boost_enabled = $9,
			approval_mode_enabled = $10, updated_at = now()
		RETURNING updated_at
	`, c.TargetCPA, c.MaxCPAMultiplier, c.MinSpendToEvaluate, c.MinImpressionsToEvaluate,
		c.BudgetIncreasePct, c.MaxDailyBudget, c.OptimizerEnabled, c.AutoPauseEnabled,
		c.AutoBoostEnabled, c.ApprovalModeEnabled,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrConfigNotFound
	}
	return err
}
