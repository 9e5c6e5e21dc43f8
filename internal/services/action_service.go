package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/abrahub/backend/internal/events"
	"github.com/abrahub/backend/internal/models"
	"github.com/abrahub/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("invalid optimization config")

// ActionService owns the pending-action lifecycle (the human side of
// approval mode) and the optimization config surface.
type ActionService struct {
	pendingRepo *repositories.PendingActionRepo
	auditRepo   *repositories.AuditRepo
	configRepo  *repositories.ConfigRepo
	executor    *ActionExecutor
	publisher   events.Publisher
	log         *zap.Logger
}

func NewActionService(
	pendingRepo *repositories.PendingActionRepo,
	auditRepo *repositories.AuditRepo,
	configRepo *repositories.ConfigRepo,
	executor *ActionExecutor,
	publisher events.Publisher,
	log *zap.Logger,
) *ActionService {
	return &ActionService{
		pendingRepo: pendingRepo,
		auditRepo:   auditRepo,
		configRepo:  configRepo,
		executor:    executor,
		publisher:   publisher,
		log:         log,
	}
}

func (s *ActionService) ListPending(ctx context.Context) ([]models.PendingAction, error) {
	return s.pendingRepo.ListPending(ctx)
}

// Approve executes the queued mutation and marks the row approved. The row
// must still be pending; a lost race or a second approval surfaces as
// ErrPendingNotFound.
func (s *ActionService) Approve(ctx context.Context, id uuid.UUID) (*models.PendingAction, error) {
	action, err := s.pendingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if action.Status != models.PendingStatusPending {
		return nil, repositories.ErrPendingNotFound
	}

	switch action.ActionType {
	case models.ActionTypePause:
		err = s.executor.Pause(ctx, action.Platform, action.CampaignID)
	case models.ActionTypeBoost, models.ActionTypeAdjustBudget:
		if action.ProposedChanges.NewBudget <= 0 {
			return nil, fmt.Errorf("pending action %s has no proposed budget", id)
		}
		err = s.executor.Boost(ctx, action.Platform, action.CampaignID, action.ProposedChanges.NewBudget)
	default:
		return nil, fmt.Errorf("unknown action type %q", action.ActionType)
	}
	if err != nil {
		return nil, err
	}

	if err := s.pendingRepo.Resolve(ctx, id, models.PendingStatusApproved); err != nil {
		// mutation already executed; a concurrent resolution won the row
		s.log.Warn("pending action resolved concurrently after execution",
			zap.String("action_id", id.String()), zap.Error(err))
		return nil, err
	}
	action.Status = models.PendingStatusApproved

	s.auditResolution(ctx, action, "approve")
	s.publishResolution(ctx, action)
	return action, nil
}

// Reject is a pure status flip, no platform call.
func (s *ActionService) Reject(ctx context.Context, id uuid.UUID) (*models.PendingAction, error) {
	action, err := s.pendingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.pendingRepo.Resolve(ctx, id, models.PendingStatusRejected); err != nil {
		return nil, err
	}
	action.Status = models.PendingStatusRejected

	s.auditResolution(ctx, action, "reject")
	s.publishResolution(ctx, action)
	return action, nil
}

// resolutionAuditType maps a human resolution onto the shared audit
// vocabulary; adjust_budget rows audit as boosts.
func resolutionAuditType(verb, actionType string) string {
	pause := actionType == models.ActionTypePause
	if verb == "approve" {
		if pause {
			return models.AuditApprovePause
		}
		return models.AuditApproveBoost
	}
	if pause {
		return models.AuditRejectPause
	}
	return models.AuditRejectBoost
}

func (s *ActionService) auditResolution(ctx context.Context, action *models.PendingAction, verb string) {
	err := s.auditRepo.Log(ctx, models.AgentAction{
		ActionType:   resolutionAuditType(verb, action.ActionType),
		Source:       "ads_actions",
		CampaignID:   action.CampaignID,
		CampaignName: action.CampaignName,
		Platform:     action.Platform,
		Details: map[string]any{
			"action_id":        action.ID.String(),
			"reasoning":        action.Reasoning,
			"proposed_changes": action.ProposedChanges,
		},
	})
	if err != nil {
		s.log.Warn("audit insert failed", zap.String("action_id", action.ID.String()), zap.Error(err))
	}
}

func (s *ActionService) publishResolution(ctx context.Context, action *models.PendingAction) {
	_ = s.publisher.Publish(ctx, events.StreamOptimizer,
		events.ActionResolved(action.ID.String(), action.CampaignID,
			action.ActionType, action.Status, action.Platform))
}

func (s *ActionService) GetConfig(ctx context.Context) (*models.OptimizationConfig, error) {
	return s.configRepo.Get(ctx)
}

func (s *ActionService) UpdateConfig(ctx context.Context, c *models.OptimizationConfig) error {
	if c.TargetCPA <= 0 {
		return fmt.Errorf("%w: target_cpa must be positive", ErrInvalidConfig)
	}
	if c.MaxCPAMultiplier < 1 {
		return fmt.Errorf("%w: max_cpa_multiplier must be at least 1", ErrInvalidConfig)
	}
	if c.MinSpendToEvaluate < 0 || c.MinImpressionsToEvaluate < 0 {
		return fmt.Errorf("%w: evaluation minimums cannot be negative", ErrInvalidConfig)
	}
	if c.BudgetIncreasePct <= 0 {
		return fmt.Errorf("%w: budget_increase_pct must be positive", ErrInvalidConfig)
	}
	if c.MaxDailyBudget <= 0 {
		return fmt.Errorf("%w: max_daily_budget must be positive", ErrInvalidConfig)
	}
	return s.configRepo.Update(ctx, c)
}

func (s *ActionService) History(ctx context.Context, limit, offset int) ([]models.AgentAction, error) {
	return s.auditRepo.List(ctx, limit, offset)
}
