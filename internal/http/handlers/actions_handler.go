package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/abrahub/backend/internal/http/dto"
	"github.com/abrahub/backend/internal/models"
	"github.com/abrahub/backend/internal/repositories"
	"github.com/abrahub/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActionsHandler struct {
	actionService *services.ActionService
	log           *zap.Logger
}

func NewActionsHandler(actionService *services.ActionService, log *zap.Logger) *ActionsHandler {
	return &ActionsHandler{actionService: actionService, log: log}
}

func (h *ActionsHandler) ListPendingActions(c *fiber.Ctx) error {
	actions, err := h.actionService.ListPending(c.Context())
	if err != nil {
		h.log.Error("list pending actions failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	if actions == nil {
		actions = []models.PendingAction{}
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: actions})
}

func (h *ActionsHandler) ApproveAction(c *fiber.Ctx) error {
	return h.resolve(c, h.actionService.Approve)
}

func (h *ActionsHandler) RejectAction(c *fiber.Ctx) error {
	return h.resolve(c, h.actionService.Reject)
}

func (h *ActionsHandler) resolve(c *fiber.Ctx, fn func(context.Context, uuid.UUID) (*models.PendingAction, error)) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid action id"})
	}

	action, err := fn(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrPendingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		h.log.Error("resolve pending action failed", zap.String("action_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.ResolveActionResponse{
		Success:      true,
		ActionID:     action.ID.String(),
		ActionType:   action.ActionType,
		CampaignID:   action.CampaignID,
		CampaignName: action.CampaignName,
		Status:       action.Status,
	})
}

func (h *ActionsHandler) GetConfig(c *fiber.Ctx) error {
	cfg, err := h.actionService.GetConfig(c.Context())
	if err != nil {
		if errors.Is(err, repositories.ErrConfigNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		h.log.Error("get config failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: cfg})
}

func (h *ActionsHandler) UpdateConfig(c *fiber.Ctx) error {
	var req dto.UpdateConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	cfg := &models.OptimizationConfig{
		TargetCPA:                req.TargetCPA,
		MaxCPAMultiplier:         req.MaxCPAMultiplier,
		MinSpendToEvaluate:       req.MinSpendToEvaluate,
		MinImpressionsToEvaluate: req.MinImpressionsToEvaluate,
		BudgetIncreasePct:        req.BudgetIncreasePct,
		MaxDailyBudget:           req.MaxDailyBudget,
		OptimizerEnabled:         req.OptimizerEnabled,
		AutoPauseEnabled:         req.AutoPauseEnabled,
		AutoBoostEnabled:         req.AutoBoostEnabled,
		ApprovalModeEnabled:      req.ApprovalModeEnabled,
	}

	if err := h.actionService.UpdateConfig(c.Context(), cfg); err != nil {
		if errors.Is(err, services.ErrInvalidConfig) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		if errors.Is(err, repositories.ErrConfigNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		h.log.Error("update config failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: cfg})
}

func (h *ActionsHandler) History(c *fiber.Ctx) error {
	limit, offset := 50, 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	entries, err := h.actionService.History(c.Context(), limit, offset)
	if err != nil {
		h.log.Error("list action history failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	if entries == nil {
		entries = []models.AgentAction{}
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}
