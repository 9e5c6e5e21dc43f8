package services

import (
	"context"
	"fmt"

	"github.com/abrahub/backend/internal/adplatform"
	"github.com/abrahub/backend/internal/repositories"
	"go.uber.org/zap"
)

// ActionExecutor performs the platform mutation and reconciles the local
// cache row afterwards. Shared by the optimizer run loop and the approval
// path so both go through identical mutation logic.
type ActionExecutor struct {
	platforms    map[string]adplatform.Client
	campaignRepo *repositories.CampaignRepo
	log          *zap.Logger
}

func NewActionExecutor(platforms map[string]adplatform.Client, campaignRepo *repositories.CampaignRepo, log *zap.Logger) *ActionExecutor {
	return &ActionExecutor{platforms: platforms, campaignRepo: campaignRepo, log: log}
}

func (e *ActionExecutor) client(platform string) (adplatform.Client, error) {
	c, ok := e.platforms[platform]
	if !ok {
		return nil, fmt.Errorf("no client registered for platform %q", platform)
	}
	return c, nil
}

// Pause sets the campaign to PAUSED on the platform, then mirrors the status
// into the cache row.
func (e *ActionExecutor) Pause(ctx context.Context, platform, campaignID string) error {
	client, err := e.client(platform)
	if err != nil {
		return err
	}

	if err := client.PauseCampaign(ctx, campaignID); err != nil {
		return fmt.Errorf("pause campaign %s: %w", campaignID, err)
	}

	if err := e.campaignRepo.UpdateStatus(ctx, platform, campaignID, "PAUSED"); err != nil {
		// the platform mutation already landed, so only log the cache drift
		e.log.Warn("failed to reconcile campaign status",
			zap.String("platform", platform),
			zap.String("campaign_id", campaignID),
			zap.Error(err))
	}
	return nil
}

// Boost raises the campaign's daily budget on the platform, then mirrors the
// new value into the cache row.
func (e *ActionExecutor) Boost(ctx context.Context, platform, campaignID string, newBudget float64) error {
	client, err := e.client(platform)
	if err != nil {
		return err
	}

	if err := client.SetDailyBudget(ctx, campaignID, newBudget); err != nil {
		return fmt.Errorf("set daily budget for campaign %s: %w", campaignID, err)
	}

	if err := e.campaignRepo.UpdateDailyBudget(ctx, platform, campaignID, newBudget); err != nil {
		e.log.Warn("failed to reconcile campaign budget",
			zap.String("platform", platform),
			zap.String("campaign_id", campaignID),
			zap.Error(err))
	}
	return nil
}
