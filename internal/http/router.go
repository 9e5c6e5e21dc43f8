package http

import (
	"time"

	"github.com/abrahub/backend/internal/config"
	"github.com/abrahub/backend/internal/http/handlers"
	"github.com/abrahub/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	optimizerHandler *handlers.OptimizerHandler,
	actionsHandler *handlers.ActionsHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rdb, 100, time.Minute))

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Optimizer
	protected.Post("/ads-optimizer", optimizerHandler.RunOptimizer)

	// Pending actions + config
	protected.Get("/ads-actions/pending-actions", actionsHandler.ListPendingActions)
	protected.Post("/ads-actions/approve-action/:id", actionsHandler.ApproveAction)
	protected.Post("/ads-actions/reject-action/:id", actionsHandler.RejectAction)
	protected.Get("/ads-actions/config", actionsHandler.GetConfig)
	protected.Post("/ads-actions/config", actionsHandler.UpdateConfig)
	protected.Get("/ads-actions/history", actionsHandler.History)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
