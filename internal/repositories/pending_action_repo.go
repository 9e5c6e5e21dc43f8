package repositories

import (
	"context"
	"errors"

	"github.com/abrahub/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPendingNotFound = errors.New("pending action not found or already resolved")

type PendingActionRepo struct {
	pool *pgxpool.Pool
}

func NewPendingActionRepo(pool *pgxpool.Pool) *PendingActionRepo {
	return &PendingActionRepo{pool: pool}
}

func (r *PendingActionRepo) Create(ctx context.Context, a *models.PendingAction) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO pending_actions
			(campaign_id, campaign_name, action_type, reasoning, metrics, proposed_changes, platform, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, a.CampaignID, a.CampaignName, a.ActionType, a.Reasoning, a.Metrics,
		a.ProposedChanges, a.Platform, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
}

func (r *PendingActionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PendingAction, error) {
	var a models.PendingAction
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, campaign_name, action_type, reasoning, metrics,
		       proposed_changes, platform, status, created_at, resolved_at
		FROM pending_actions WHERE id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.CampaignName, &a.ActionType, &a.Reasoning,
		&a.Metrics, &a.ProposedChanges, &a.Platform, &a.Status, &a.CreatedAt, &a.ResolvedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPendingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PendingActionRepo) ListPending(ctx context.Context) ([]models.PendingAction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, campaign_name, action_type, reasoning, metrics,
		       proposed_changes, platform, status, created_at, resolved_at
		FROM pending_actions WHERE status = $1
		ORDER BY created_at DESC
	`, models.PendingStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []models.PendingAction
	for rows.Next() {
		var a models.PendingAction
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.CampaignName, &a.ActionType, &a.Reasoning,
			&a.Metrics, &a.ProposedChanges, &a.Platform, &a.Status, &a.CreatedAt, &a.ResolvedAt); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// Resolve flips a still-pending row to its terminal status. The conditional
// WHERE doubles as the version check: a concurrent resolution loses and gets
// ErrPendingNotFound.
func (r *PendingActionRepo) Resolve(ctx context.Context, id uuid.UUID, status string) error {
	if !models.IsValidPendingTransition(models.PendingStatusPending, status) {
		return errors.New("invalid pending action resolution: " + status)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE pending_actions SET status = $1, resolved_at = now()
		WHERE id = $2 AND status = $3
	`, status, id, models.PendingStatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPendingNotFound
	}
	return nil
}
