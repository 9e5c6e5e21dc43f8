package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abrahub/backend/internal/adplatform"
	"github.com/abrahub/backend/internal/config"
	"github.com/abrahub/backend/internal/db"
	"github.com/abrahub/backend/internal/events"
	apphttp "github.com/abrahub/backend/internal/http"
	"github.com/abrahub/backend/internal/http/handlers"
	"github.com/abrahub/backend/internal/models"
	"github.com/abrahub/backend/internal/repositories"
	"github.com/abrahub/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	campaignRepo := repositories.NewCampaignRepo(pool)
	configRepo := repositories.NewConfigRepo(pool)
	pendingRepo := repositories.NewPendingActionRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Platform clients
	platforms := map[string]adplatform.Client{
		models.PlatformMeta:   adplatform.NewMetaClient(cfg.MetaBaseURL, cfg.MetaAPIVersion, cfg.MetaAccessToken, log),
		models.PlatformGoogle: adplatform.NewGoogleClient(cfg.GoogleBaseURL, cfg.GoogleAPIVersion, cfg.GoogleDeveloperToken, cfg.GoogleAccessToken, cfg.GoogleCustomerID, log),
	}

	// Services
	executor := services.NewActionExecutor(platforms, campaignRepo, log)
	optimizerService := services.NewOptimizerService(campaignRepo, configRepo, pendingRepo, auditRepo, executor, publisher, cfg, log)
	actionService := services.NewActionService(pendingRepo, auditRepo, configRepo, executor, publisher, log)

	// Handlers
	optimizerHandler := handlers.NewOptimizerHandler(optimizerService, log)
	actionsHandler := handlers.NewActionsHandler(actionService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, optimizerHandler, actionsHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
