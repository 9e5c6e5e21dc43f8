package repositories

import (
	"context"

	"github.com/abrahub/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepo appends to the agent_actions trail. Insert-only: rows are never
// updated or deleted, and the evaluator never reads them back.
type AuditRepo struct {
	pool *pgxpool.Pool
}

func NewAuditRepo(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

func (r *AuditRepo) Log(ctx context.Context, entry models.AgentAction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO agent_actions (action_type, source, campaign_id, campaign_name, platform, details)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ActionType, entry.Source, entry.CampaignID, entry.CampaignName, entry.Platform, entry.Details)
	return err
}

func (r *AuditRepo) List(ctx context.Context, limit, offset int) ([]models.AgentAction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, action_type, source, campaign_id, campaign_name, platform, details, created_at
		FROM agent_actions
		ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AgentAction
	for rows.Next() {
		var e models.AgentAction
		if err := rows.Scan(&e.ID, &e.ActionType, &e.Source, &e.CampaignID,
			&e.CampaignName, &e.Platform, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
