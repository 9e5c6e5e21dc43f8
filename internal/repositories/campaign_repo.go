package repositories

import (
	"context"
	"fmt"

	"github.com/abrahub/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CampaignRepo reads the per-platform campaign cache tables and reconciles
// them after executed mutations. Wholesale writes come from the sync jobs,
// outside this service.
type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) ListMeta(ctx context.Context) ([]models.MetaCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT campaign_id, name, status, spend, cost_per_result, ctr,
		       impressions, clicks, conversions, daily_budget, synced_at
		FROM meta_campaigns
		ORDER BY spend DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.MetaCampaign
	for rows.Next() {
		var c models.MetaCampaign
		if err := rows.Scan(&c.CampaignID, &c.Name, &c.Status, &c.Spend, &c.CostPerResult,
			&c.CTR, &c.Impressions, &c.Clicks, &c.Conversions, &c.DailyBudget, &c.SyncedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepo) ListGoogle(ctx context.Context) ([]models.GoogleCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT campaign_id, name, status, cost, cost_per_conversion, ctr,
		       impressions, clicks, conversions, daily_budget, synced_at
		FROM google_campaigns
		ORDER BY cost DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.GoogleCampaign
	for rows.Next() {
		var c models.GoogleCampaign
		if err := rows.Scan(&c.CampaignID, &c.Name, &c.Status, &c.Cost, &c.CostPerConversion,
			&c.CTR, &c.Impressions, &c.Clicks, &c.Conversions, &c.DailyBudget, &c.SyncedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// UpdateStatus reconciles the cached lifecycle status after a successful
// platform mutation. Partial field update, never a full overwrite.
func (r *CampaignRepo) UpdateStatus(ctx context.Context, platform, campaignID, status string) error {
	table, err := cacheTable(platform)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET status = $1 WHERE campaign_id = $2`, table),
		status, campaignID)
	return err
}

// UpdateDailyBudget reconciles the cached daily budget after a boost.
func (r *CampaignRepo) UpdateDailyBudget(ctx context.Context, platform, campaignID string, budget float64) error {
	table, err := cacheTable(platform)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET daily_budget = $1 WHERE campaign_id = $2`, table),
		budget, campaignID)
	return err
}

func cacheTable(platform string) (string, error) {
	switch platform {
	case models.PlatformMeta:
		return "meta_campaigns", nil
	case models.PlatformGoogle:
		return "google_campaigns", nil
	default:
		return "", fmt.Errorf("unknown platform %q", platform)
	}
}
