package handlers

import (
	"errors"

	"github.com/abrahub/backend/internal/http/dto"
	"github.com/abrahub/backend/internal/repositories"
	"github.com/abrahub/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type OptimizerHandler struct {
	optimizerService *services.OptimizerService
	log              *zap.Logger
}

func NewOptimizerHandler(optimizerService *services.OptimizerService, log *zap.Logger) *OptimizerHandler {
	return &OptimizerHandler{optimizerService: optimizerService, log: log}
}

// RunOptimizer evaluates the cached campaigns and executes or queues the
// resulting actions. Per-campaign failures surface in the errors array of an
// otherwise successful response.
func (h *OptimizerHandler) RunOptimizer(c *fiber.Ctx) error {
	var req dto.RunOptimizerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
		}
	}

	result, err := h.optimizerService.Run(c.Context(), req.Platform)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPlatform):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrOptimizerDisabled):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, repositories.ErrConfigNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		default:
			h.log.Error("optimizer run failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
	}

	return c.JSON(result)
}
