package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abrahub/backend/internal/config"
	"github.com/abrahub/backend/internal/events"
	"github.com/abrahub/backend/internal/models"
	"github.com/abrahub/backend/internal/optimizer"
	"github.com/abrahub/backend/internal/repositories"
	"go.uber.org/zap"
)

var (
	ErrOptimizerDisabled = errors.New("optimizer is disabled")
	ErrInvalidPlatform   = errors.New("invalid platform")
)

// PlatformAll evaluates both campaign caches in one run.
const PlatformAll = "all"

// DecisionSummary is the per-campaign line item returned to the dashboard.
type DecisionSummary struct {
	Campaign string `json:"campaign"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

// RunResult aggregates one optimizer run. Per-campaign execution failures
// land in Errors without failing the run.
type RunResult struct {
	Success         bool              `json:"success"`
	Platform        string            `json:"platform"`
	Evaluated       int               `json:"evaluated"`
	Paused          int               `json:"paused"`
	Boosted         int               `json:"boosted"`
	Kept            int               `json:"kept"`
	Skipped         int               `json:"skipped"`
	PendingApproval int               `json:"pending_approval"`
	ApprovalMode    bool              `json:"approval_mode"`
	ElapsedMs       int64             `json:"elapsed_ms"`
	Errors          []string          `json:"errors,omitempty"`
	Decisions       []DecisionSummary `json:"decisions"`
}

type OptimizerService struct {
	campaignRepo *repositories.CampaignRepo
	configRepo   *repositories.ConfigRepo
	pendingRepo  *repositories.PendingActionRepo
	auditRepo    *repositories.AuditRepo
	executor     *ActionExecutor
	publisher    events.Publisher
	cfg          *config.Config
	log          *zap.Logger
}

func NewOptimizerService(
	campaignRepo *repositories.CampaignRepo,
	configRepo *repositories.ConfigRepo,
	pendingRepo *repositories.PendingActionRepo,
	auditRepo *repositories.AuditRepo,
	executor *ActionExecutor,
	publisher events.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) *OptimizerService {
	return &OptimizerService{
		campaignRepo: campaignRepo,
		configRepo:   configRepo,
		pendingRepo:  pendingRepo,
		auditRepo:    auditRepo,
		executor:     executor,
		publisher:    publisher,
		cfg:          cfg,
		log:          log,
	}
}

// Run evaluates every cached campaign of the requested platform ("meta",
// "google" or "all") against a fresh config snapshot. Campaigns are processed
// sequentially; a failed mutation is recorded and the loop moves on.
func (s *OptimizerService) Run(ctx context.Context, platform string) (*RunResult, error) {
	start := time.Now()

	if platform == "" {
		platform = PlatformAll
	}
	if platform != PlatformAll && !models.IsValidPlatform(platform) {
		return nil, fmt.Errorf("%w %q", ErrInvalidPlatform, platform)
	}

	optCfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !optCfg.OptimizerEnabled {
		return nil, ErrOptimizerDisabled
	}

	campaigns, err := s.collect(ctx, platform)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Success:      true,
		Platform:     platform,
		ApprovalMode: optCfg.ApprovalModeEnabled,
		Decisions:    []DecisionSummary{},
	}

	for _, c := range campaigns {
		d := optimizer.Evaluate(c, *optCfg)
		result.Evaluated++
		result.Decisions = append(result.Decisions, DecisionSummary{
			Campaign: d.CampaignName,
			Action:   d.Action,
			Reason:   d.Reason,
		})
		s.applyDecision(ctx, d, optCfg, result)
	}

	result.ElapsedMs = time.Since(start).Milliseconds()

	_ = s.publisher.Publish(ctx, events.StreamOptimizer,
		events.RunCompleted(result.Platform, result.Evaluated, result.Paused,
			result.Boosted, result.PendingApproval, len(result.Errors)))

	s.log.Info("optimizer run finished",
		zap.String("platform", platform),
		zap.Int("evaluated", result.Evaluated),
		zap.Int("paused", result.Paused),
		zap.Int("boosted", result.Boosted),
		zap.Int("pending", result.PendingApproval),
		zap.Int("errors", len(result.Errors)),
		zap.Int64("elapsed_ms", result.ElapsedMs))

	return result, nil
}

func (s *OptimizerService) collect(ctx context.Context, platform string) ([]models.NormalizedCampaign, error) {
	var normalized []models.NormalizedCampaign

	if platform == PlatformAll || platform == models.PlatformMeta {
		metaRows, err := s.campaignRepo.ListMeta(ctx)
		if err != nil {
			return nil, fmt.Errorf("list meta campaigns: %w", err)
		}
		for _, c := range metaRows {
			normalized = append(normalized, optimizer.NormalizeMeta(c))
		}
	}

	if platform == PlatformAll || platform == models.PlatformGoogle {
		googleRows, err := s.campaignRepo.ListGoogle(ctx)
		if err != nil {
			return nil, fmt.Errorf("list google campaigns: %w", err)
		}
		for _, c := range googleRows {
			normalized = append(normalized, optimizer.NormalizeGoogle(c))
		}
	}

	return normalized, nil
}

// applyDecision materializes one decision according to the approval gate:
// audit only, queue for approval, or execute against the platform.
func (s *OptimizerService) applyDecision(ctx context.Context, d optimizer.Decision, optCfg *models.OptimizationConfig, result *RunResult) {
	plan := optimizer.PlanAction(d, *optCfg)

	switch plan.Outcome {
	case optimizer.OutcomeLogOnly:
		if d.Action == optimizer.ActionSkip {
			result.Skipped++
		} else {
			result.Kept++
		}
		s.audit(ctx, d, map[string]any{"reason": d.Reason})

	case optimizer.OutcomeDisabled:
		// flag is off: counted in the decision's category, nothing executed
		if d.Action == optimizer.ActionPause {
			result.Paused++
		} else {
			result.Boosted++
		}
		s.audit(ctx, d, map[string]any{"reason": d.Reason, "auto_action_disabled": true})

	case optimizer.OutcomeDowngrade:
		result.Kept++
		downgraded := d
		downgraded.Action = optimizer.ActionKeep
		s.audit(ctx, downgraded, map[string]any{
			"reason":          plan.Reason,
			"downgraded_from": d.Action,
		})

	case optimizer.OutcomeQueue:
		s.queue(ctx, d, plan, result)

	case optimizer.OutcomeExecute:
		s.execute(ctx, d, plan, result)
	}
}

func (s *OptimizerService) queue(ctx context.Context, d optimizer.Decision, plan optimizer.Plan, result *RunResult) {
	action := &models.PendingAction{
		CampaignID:   d.CampaignID,
		CampaignName: d.CampaignName,
		ActionType:   d.Action,
		Reasoning:    d.Reason,
		Metrics:      d.Metrics,
		Platform:     d.Metrics.Platform,
		Status:       models.PendingStatusPending,
	}
	switch d.Action {
	case optimizer.ActionPause:
		action.ProposedChanges = models.ProposedChanges{Status: "PAUSED"}
	case optimizer.ActionBoost:
		action.ProposedChanges = models.ProposedChanges{OldBudget: plan.OldBudget, NewBudget: plan.NewBudget}
	}

	if err := s.pendingRepo.Create(ctx, action); err != nil {
		// most likely a still-open pending row for the same campaign+action
		result.Errors = append(result.Errors, fmt.Sprintf("%s: queue %s failed: %v", d.CampaignName, d.Action, err))
		s.log.Warn("failed to queue pending action",
			zap.String("campaign_id", d.CampaignID),
			zap.String("action", d.Action),
			zap.Error(err))
		return
	}

	result.PendingApproval++
	s.audit(ctx, d, map[string]any{
		"reason":           d.Reason,
		"pending_approval": true,
		"action_id":        action.ID.String(),
	})

	_ = s.publisher.Publish(ctx, events.StreamOptimizer,
		events.ActionQueued(action.ID.String(), d.CampaignID, d.Action, action.Platform))
}

func (s *OptimizerService) execute(ctx context.Context, d optimizer.Decision, plan optimizer.Plan, result *RunResult) {
	var err error
	switch d.Action {
	case optimizer.ActionPause:
		err = s.executor.Pause(ctx, d.Metrics.Platform, d.CampaignID)
	case optimizer.ActionBoost:
		err = s.executor.Boost(ctx, d.Metrics.Platform, d.CampaignID, plan.NewBudget)
	}

	// fixed delay between platform calls to stay inside third-party quotas
	if s.cfg.PlatformCallDelay > 0 {
		time.Sleep(s.cfg.PlatformCallDelay)
	}

	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", d.CampaignName, err))
		s.audit(ctx, d, map[string]any{"reason": d.Reason, "error": err.Error()})
		s.log.Error("platform mutation failed",
			zap.String("campaign_id", d.CampaignID),
			zap.String("action", d.Action),
			zap.Error(err))
		return
	}

	details := map[string]any{"reason": d.Reason, "executed": true}
	if d.Action == optimizer.ActionPause {
		result.Paused++
	} else {
		result.Boosted++
		details["old_budget"] = plan.OldBudget
		details["new_budget"] = plan.NewBudget
	}
	s.audit(ctx, d, details)

	_ = s.publisher.Publish(ctx, events.StreamOptimizer,
		events.ActionExecuted(d.CampaignID, d.Action, d.Metrics.Platform))
}

// decisionAuditTypes keeps the audit vocabulary anchored to the shared
// constants instead of ad-hoc string building.
var decisionAuditTypes = map[string]string{
	optimizer.ActionPause: models.AuditOptimizerPause,
	optimizer.ActionBoost: models.AuditOptimizerBoost,
	optimizer.ActionKeep:  models.AuditOptimizerKeep,
	optimizer.ActionSkip:  models.AuditOptimizerSkip,
}

func (s *OptimizerService) audit(ctx context.Context, d optimizer.Decision, details map[string]any) {
	err := s.auditRepo.Log(ctx, models.AgentAction{
		ActionType:   decisionAuditTypes[d.Action],
		Source:       "ads_optimizer",
		CampaignID:   d.CampaignID,
		CampaignName: d.CampaignName,
		Platform:     d.Metrics.Platform,
		Details:      details,
	})
	if err != nil {
		s.log.Warn("audit insert failed", zap.String("campaign_id", d.CampaignID), zap.Error(err))
	}
}
